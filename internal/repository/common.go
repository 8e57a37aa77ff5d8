package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page carries pagination and the free-text search term shared by every list query
type Page struct {
	Limit  int
	Offset int
	Search string
}

// applySearch adds a case-insensitive OR match of term across columns
func applySearch(db *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return db
	}
	pattern := "%" + strings.ToLower(term) + "%"
	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		clauses[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// paginate counts the filtered query and then fetches one page of it into dest
func paginate(query *gorm.DB, page Page, order string, dest interface{}) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}
	q := query
	if order != "" {
		q = q.Order(order)
	}
	if page.Limit > 0 {
		q = q.Limit(page.Limit)
	}
	if page.Offset > 0 {
		q = q.Offset(page.Offset)
	}
	if err := q.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// countRow is the scan target of GROUP BY count queries
type countRow struct {
	Label string
	Count int64
}

func toCountMap(rows []countRow) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Label] = r.Count
	}
	return out
}

// existingIDs returns the subset of ids that live in table under orgID
func existingIDs(db *gorm.DB, table string, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uuid.UUID
	err := db.Table(table).
		Where("organization_id = ? AND id IN ?", orgID, ids).
		Pluck("id", &found).Error
	return found, err
}
