package repository

import (
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFilter narrows user listings
type UserFilter struct {
	Page
	// OrganizationID scopes the listing; nil lists every user
	OrganizationID *uuid.UUID
	Role           models.UserRole
	IsActive       *bool
	IsVerified     *bool
}

// UserStatistics aggregates user counts for one organization or the whole platform
type UserStatistics struct {
	TotalUsers          int64
	ActiveUsers         int64
	VerifiedUsers       int64
	UsersByRole         map[string]int64
	RecentRegistrations int64
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user together with its profile
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithOrganization inserts the organization and then the user in a single transaction
func (r *UserRepository) CreateWithOrganization(org *models.Organization, user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		user.OrganizationID = &org.ID
		return tx.Create(user).Error
	})
}

// GetByID retrieves a user by ID with profile and organization
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Preload("Organization").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Preload("Organization").
		First(&user, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users matching the filter, ordered by username
func (r *UserRepository) List(filter UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{}).Preload("Profile").Preload("Organization")
	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}
	query = applySearch(query, filter.Search, "username", "email", "first_name", "last_name")

	var users []models.User
	total, err := paginate(query, filter.Page, "username ASC", &users)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update saves the user and its profile
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile", "Organization").Save(user).Error; err != nil {
			return err
		}
		if user.Profile != nil {
			user.Profile.UserID = user.ID
			return tx.Save(user.Profile).Error
		}
		return nil
	})
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(id uuid.UUID, hash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

// UpdateLastLogin stamps the last successful login
func (r *UserRepository) UpdateLastLogin(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", at).Error
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

// GetManagers returns the active admin and customer users of an organization
func (r *UserRepository) GetManagers(orgID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("organization_id = ? AND role IN ? AND is_active = ?",
		orgID, []models.UserRole{models.UserRoleAdmin, models.UserRoleCustomer}, true).
		Order("username ASC").
		Find(&users).Error
	return users, err
}

// GetByIDsInOrganization returns the users among ids that belong to orgID
func (r *UserRepository) GetByIDsInOrganization(orgID uuid.UUID, ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := r.db.Where("organization_id = ? AND id IN ?", orgID, ids).Find(&users).Error
	return users, err
}

// Statistics aggregates user counts; orgID nil covers every user
func (r *UserRepository) Statistics(orgID *uuid.UUID, since time.Time) (*UserStatistics, error) {
	scoped := func() *gorm.DB {
		q := r.db.Model(&models.User{})
		if orgID != nil {
			q = q.Where("organization_id = ?", *orgID)
		}
		return q
	}

	stats := &UserStatistics{UsersByRole: map[string]int64{}}
	if err := scoped().Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("is_active = ?", true).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("is_verified = ?", true).Count(&stats.VerifiedUsers).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("created_at >= ?", since).Count(&stats.RecentRegistrations).Error; err != nil {
		return nil, err
	}

	var rows []countRow
	if err := scoped().Select("role AS label, COUNT(*) AS count").Group("role").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, role := range []models.UserRole{models.UserRoleAdmin, models.UserRoleCustomer, models.UserRoleTarget} {
		stats.UsersByRole[string(role)] = 0
	}
	for k, v := range toCountMap(rows) {
		stats.UsersByRole[k] = v
	}
	return stats, nil
}

// RevokedTokenRepository persists the refresh-token blacklist
type RevokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository creates a new revoked token repository
func NewRevokedTokenRepository(db *gorm.DB) *RevokedTokenRepository {
	return &RevokedTokenRepository{db: db}
}

// Revoke records jti as revoked until expiresAt
func (r *RevokedTokenRepository) Revoke(jti string, expiresAt time.Time) error {
	var existing int64
	if err := r.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	return r.db.Create(&models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

// IsRevoked reports whether jti is on the blacklist
func (r *RevokedTokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}

// DeleteExpired removes entries whose tokens have expired anyway
func (r *RevokedTokenRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", now).Delete(&models.RevokedToken{})
	return res.RowsAffected, res.Error
}
