package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 100

	timeFormat = "2006-01-02T15:04:05Z07:00"
)

// Actor is the authenticated user a service call is made on behalf of
type Actor struct {
	UserID         uuid.UUID
	Role           models.UserRole
	OrganizationID *uuid.UUID
}

// IsAdmin reports whether the actor is a platform admin
func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

// IsManager reports whether the actor may manage organization resources
func (a Actor) IsManager() bool {
	return a.Role.IsManager()
}

// TenantID returns the organization tenant-owned resources are scoped to.
// Admins act in their own organization too.
func (a Actor) TenantID() (uuid.UUID, error) {
	if a.OrganizationID == nil {
		return uuid.Nil, apperrors.ErrNotOrganizationMember
	}
	return *a.OrganizationID, nil
}

// ManagedTenantID is TenantID for operations reserved to managers
func (a Actor) ManagedTenantID() (uuid.UUID, error) {
	if !a.IsManager() {
		return uuid.Nil, apperrors.ErrManagerRequired
	}
	return a.TenantID()
}

// ListParams are the pagination and search parameters shared by list endpoints
type ListParams struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// Normalize applies the defaults and caps page_size
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	p.Search = strings.TrimSpace(p.Search)
	return p
}

func (p ListParams) repoPage() repository.Page {
	p = p.Normalize()
	return repository.Page{
		Limit:  p.PageSize,
		Offset: (p.Page - 1) * p.PageSize,
		Search: p.Search,
	}
}

// lookupError maps a missing row to notFound and wraps anything else
func lookupError(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func formatTime(t time.Time) string {
	return t.Format(timeFormat)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeFormat)
	return &s
}

// missingIDs returns the requested ids that are not in found, in request order
func missingIDs(requested, found []uuid.UUID) []uuid.UUID {
	have := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		have[id] = true
	}
	var missing []uuid.UUID
	for _, id := range requested {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func idList(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "'" + id.String() + "'"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func boolValue(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// describeValidation flattens validator errors into "field: problem" pairs
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		field := snakeCase(fe.Field())
		switch fe.Tag() {
		case "required":
			parts[i] = field + ": This field is required."
		case "email":
			parts[i] = field + ": Enter a valid email address."
		case "max":
			parts[i] = fmt.Sprintf("%s: Ensure this field has no more than %s characters.", field, fe.Param())
		default:
			parts[i] = fmt.Sprintf("%s: failed %s validation", field, fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
