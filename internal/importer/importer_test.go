package importer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNormalize(t *testing.T) {
	row := Normalize(map[string]string{
		" Email ":    "  John.Doe@Example.COM ",
		"first_name": " John ",
		"last_name":  "Doe",
		"department": " Finance",
		"risk_level": "HIGH",
		"is_active":  "no",
		"salary":     "100000",
	})

	assert.Equal(t, "john.doe@example.com", row.Email)
	assert.Equal(t, "John", row.FirstName)
	assert.Equal(t, "Finance", row.Department)
	assert.Equal(t, models.RiskLevelHigh, row.RiskLevel)
	assert.False(t, row.IsActive)
}

func TestNormalizeDefaults(t *testing.T) {
	row := Normalize(map[string]string{"email": "a@example.com", "risk_level": "extreme", "is_active": "maybe"})
	assert.Equal(t, models.RiskLevelMedium, row.RiskLevel)
	assert.True(t, row.IsActive)

	row = Normalize(map[string]string{"email": "a@example.com"})
	assert.Equal(t, models.RiskLevelMedium, row.RiskLevel)
	assert.True(t, row.IsActive)
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "y"} {
		assert.True(t, ParseBool(v, false), v)
	}
	for _, v := range []string{"0", "False", "no", "N"} {
		assert.False(t, ParseBool(v, true), v)
	}
	assert.True(t, ParseBool("", true))
}

func TestParseCSV(t *testing.T) {
	input := "\ufeffemail,first_name,last_name,risk_level\n" +
		"alice@example.com,Alice,Smith,low\n" +
		"BOB@example.com,Bob,Jones\n"

	rows, err := Parse("targets.csv", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "alice@example.com", rows[0].Email)
	assert.Equal(t, models.RiskLevelLow, rows[0].RiskLevel)
	assert.Equal(t, "bob@example.com", rows[1].Email)
	assert.Equal(t, models.RiskLevelMedium, rows[1].RiskLevel)
}

func TestParseExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"email", "first_name", "department", "is_active"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"carol@example.com", "Carol", "IT", "0"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"dave@example.com", "Dave", "HR", "yes"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := Parse("targets.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "carol@example.com", rows[0].Email)
	assert.False(t, rows[0].IsActive)
	assert.Equal(t, "HR", rows[1].Department)
	assert.True(t, rows[1].IsActive)
}

func TestParseLimits(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Parse("targets.txt", strings.NewReader("email\n"))
		assert.Equal(t, ErrUnsupportedType, err)
		assert.True(t, apperrors.IsBadRequest(err))
	})

	t.Run("file too large", func(t *testing.T) {
		big := bytes.Repeat([]byte("a"), MaxUploadBytes+10)
		_, err := Parse("targets.csv", bytes.NewReader(big))
		assert.Equal(t, ErrFileTooLarge, err)
	})

	t.Run("too many rows", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("email\n")
		for i := 0; i <= MaxRows; i++ {
			fmt.Fprintf(&sb, "user%d@example.com\n", i)
		}
		_, err := Parse("targets.csv", strings.NewReader(sb.String()))
		assert.Equal(t, ErrTooManyRows, err)
	})

	t.Run("legacy xls is rejected as unparseable", func(t *testing.T) {
		_, err := Parse("targets.xls", strings.NewReader("not a workbook"))
		require.Error(t, err)
		assert.True(t, apperrors.IsBadRequest(err))
	})
}

func TestDedupe(t *testing.T) {
	rows := []Row{
		{Email: "a@example.com"},
		{Email: ""},
		{Email: "A@example.com"},
		{Email: "b@example.com"},
		{Email: "existing@example.com"},
	}

	res := Dedupe(rows, map[string]bool{"existing@example.com": true})

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "a@example.com", res.Rows[0].Email)
	assert.Equal(t, 1, res.Rows[0].Line)
	assert.Equal(t, "b@example.com", res.Rows[1].Email)
	assert.Equal(t, 4, res.Rows[1].Line)
	assert.Equal(t, models.RiskLevelMedium, res.Rows[1].RiskLevel)

	assert.Equal(t, []string{
		"Row 2: email is required",
		"Row 3: duplicate email in file (a@example.com)",
		"Email already exists: existing@example.com",
	}, res.Errors)
}
