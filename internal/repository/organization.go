package repository

import (
	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationFilter narrows organization listings
type OrganizationFilter struct {
	Page
	// IDs restricts the listing; nil means every organization
	IDs              []uuid.UUID
	Industry         models.Industry
	Size             models.OrganizationSize
	SubscriptionTier models.PlanType
	IsActive         *bool
}

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByDomain retrieves an organization by domain
func (r *OrganizationRepository) GetByDomain(domain string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "domain = ?", domain).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// List retrieves organizations matching the filter, ordered by name
func (r *OrganizationRepository) List(filter OrganizationFilter) ([]models.Organization, int64, error) {
	query := r.db.Model(&models.Organization{})
	if filter.IDs != nil {
		query = query.Where("id IN ?", filter.IDs)
	}
	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}
	if filter.Size != "" {
		query = query.Where("size = ?", filter.Size)
	}
	if filter.SubscriptionTier != "" {
		query = query.Where("subscription_tier = ?", filter.SubscriptionTier)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	query = applySearch(query, filter.Search, "name", "domain")

	var orgs []models.Organization
	total, err := paginate(query, filter.Page, "name ASC", &orgs)
	if err != nil {
		return nil, 0, err
	}
	return orgs, total, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete deletes an organization
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}

// CountUsers returns the number of users per organization for the given ids
func (r *OrganizationRepository) CountUsers(ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		OrganizationID uuid.UUID
		Count          int64
	}
	err := r.db.Model(&models.User{}).
		Select("organization_id, COUNT(*) AS count").
		Where("organization_id IN ?", ids).
		Group("organization_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.OrganizationID] = row.Count
	}
	return out, nil
}
