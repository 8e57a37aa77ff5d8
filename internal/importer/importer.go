// Package importer parses target spreadsheets (CSV and Excel) into normalised rows.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	MaxRows        = 10000
	MaxUploadBytes = 10 * 1024 * 1024
)

// Input limit errors; all are client errors
var (
	ErrFileTooLarge     = apperrors.NewBadRequestError("File too large")
	ErrTooManyRows      = apperrors.NewBadRequestError(fmt.Sprintf("Too many rows (>%d)", MaxRows))
	ErrUnsupportedType  = apperrors.NewBadRequestError("Unsupported file type")
	ErrNoImportProvided = apperrors.NewBadRequestError("Provide either 'file' or 'targets'.")
)

var allowedColumns = map[string]bool{
	"email":      true,
	"first_name": true,
	"last_name":  true,
	"department": true,
	"job_title":  true,
	"phone":      true,
	"risk_level": true,
	"is_active":  true,
}

// Row is one normalised target record
type Row struct {
	Email      string           `json:"email"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Department string           `json:"department"`
	JobTitle   string           `json:"job_title"`
	Phone      string           `json:"phone"`
	RiskLevel  models.RiskLevel `json:"risk_level"`
	IsActive   bool             `json:"is_active"`

	// Line is the 1-based position in the upload, set by Dedupe
	Line int `json:"-"`
}

// Normalize keeps the allow-listed columns, trims values, lower-cases the email
// and coerces risk_level and is_active
func Normalize(raw map[string]string) Row {
	row := Row{RiskLevel: models.RiskLevelMedium, IsActive: true}
	for key, value := range raw {
		key = strings.ToLower(strings.TrimSpace(key))
		if !allowedColumns[key] {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "email":
			row.Email = strings.ToLower(value)
		case "first_name":
			row.FirstName = value
		case "last_name":
			row.LastName = value
		case "department":
			row.Department = value
		case "job_title":
			row.JobTitle = value
		case "phone":
			row.Phone = value
		case "risk_level":
			row.RiskLevel = NormalizeRiskLevel(value)
		case "is_active":
			row.IsActive = ParseBool(value, true)
		}
	}
	return row
}

// NormalizeRiskLevel lower-cases a risk level, falling back to medium for unknown values
func NormalizeRiskLevel(value string) models.RiskLevel {
	level := models.RiskLevel(strings.ToLower(strings.TrimSpace(value)))
	if !level.IsValid() {
		return models.RiskLevelMedium
	}
	return level
}

// ParseBool understands 1/true/yes/y and 0/false/no/n; anything else yields def
func ParseBool(value string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	default:
		return def
	}
}

// Parse reads a CSV or Excel upload, chosen by file extension
func Parse(fileName string, r io.Reader) ([]Row, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != ".csv" && ext != ".xls" && ext != ".xlsx" {
		return nil, ErrUnsupportedType
	}

	content, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(content) > MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	if ext == ".csv" {
		return ParseCSV(bytes.NewReader(content))
	}
	return ParseExcel(bytes.NewReader(content))
}

// ParseCSV reads a header row followed by records
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Failed to parse file: %v", err))
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("Failed to parse file: %v", err))
		}
		if len(rows) >= MaxRows {
			return nil, ErrTooManyRows
		}
		rows = append(rows, Normalize(zip(header, record)))
	}
	return rows, nil
}

// ParseExcel reads the first sheet of a workbook; the first row is the header
func ParseExcel(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Failed to parse file: %v", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	iter, err := f.Rows(sheets[0])
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Failed to parse file: %v", err))
	}
	defer iter.Close()

	var header []string
	var rows []Row
	for iter.Next() {
		cols, err := iter.Columns()
		if err != nil {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("Failed to parse file: %v", err))
		}
		if header == nil {
			header = cols
			continue
		}
		if isBlank(cols) {
			continue
		}
		if len(rows) >= MaxRows {
			return nil, ErrTooManyRows
		}
		rows = append(rows, Normalize(zip(header, cols)))
	}
	return rows, nil
}

func zip(header, record []string) map[string]string {
	out := make(map[string]string, len(header))
	for i, key := range header {
		if i < len(record) {
			out[key] = record[i]
		}
	}
	return out
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Result collects the outcome of de-duplicating a batch of rows
type Result struct {
	Rows   []Row
	Errors []string
}

// Dedupe drops rows without an email and repeated emails within the batch, then
// rows whose email already exists; row numbers in messages are 1-based
func Dedupe(rows []Row, existing map[string]bool) Result {
	var res Result
	seen := make(map[string]bool, len(rows))
	var cleaned []Row
	for i, row := range rows {
		email := strings.ToLower(strings.TrimSpace(row.Email))
		if email == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: email is required", i+1))
			continue
		}
		if seen[email] {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: duplicate email in file (%s)", i+1, email))
			continue
		}
		seen[email] = true
		row.Email = email
		row.Line = i + 1
		if row.RiskLevel == "" {
			row.RiskLevel = models.RiskLevelMedium
		}
		cleaned = append(cleaned, row)
	}

	for _, row := range cleaned {
		if existing[row.Email] {
			res.Errors = append(res.Errors, fmt.Sprintf("Email already exists: %s", row.Email))
			continue
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}
