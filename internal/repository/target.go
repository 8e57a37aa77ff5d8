package repository

import (
	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TargetFilter narrows target listings
type TargetFilter struct {
	Page
	OrganizationID uuid.UUID
	RiskLevel      models.RiskLevel
	IsActive       *bool
	Department     string
	TagID          *uuid.UUID
}

// TargetStatistics aggregates the targets of one organization
type TargetStatistics struct {
	TotalTargets  int64
	ActiveTargets int64
	ByRiskLevel   map[string]int64
	ByDepartment  []DepartmentCount
	TotalGroups   int64
	TotalTags     int64
}

// DepartmentCount is a department and how many targets it holds
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// TargetRepository handles database operations for targets
type TargetRepository struct {
	db *gorm.DB
}

// NewTargetRepository creates a new target repository
func NewTargetRepository(db *gorm.DB) *TargetRepository {
	return &TargetRepository{db: db}
}

// Create inserts a target with its tag assignments
func (r *TargetRepository) Create(target *models.Target) error {
	return r.db.Create(target).Error
}

// CreateBatch inserts all targets in one transaction; any failure rolls back every row
func (r *TargetRepository) CreateBatch(targets []*models.Target) error {
	if len(targets) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Tags.*").CreateInBatches(targets, 200).Error
	})
}

// GetByID retrieves a target of the organization with its tags
func (r *TargetRepository) GetByID(orgID, id uuid.UUID) (*models.Target, error) {
	var target models.Target
	err := r.db.Preload("Tags").
		First(&target, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// GetByEmail retrieves a target of the organization by email
func (r *TargetRepository) GetByEmail(orgID uuid.UUID, email string) (*models.Target, error) {
	var target models.Target
	err := r.db.First(&target, "organization_id = ? AND LOWER(email) = LOWER(?)", orgID, email).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// List retrieves targets matching the filter, ordered by last and first name
func (r *TargetRepository) List(filter TargetFilter) ([]models.Target, int64, error) {
	query := r.db.Model(&models.Target{}).Preload("Tags").
		Where("targets.organization_id = ?", filter.OrganizationID)
	if filter.RiskLevel != "" {
		query = query.Where("targets.risk_level = ?", filter.RiskLevel)
	}
	if filter.IsActive != nil {
		query = query.Where("targets.is_active = ?", *filter.IsActive)
	}
	if filter.Department != "" {
		query = query.Where("LOWER(targets.department) = LOWER(?)", filter.Department)
	}
	if filter.TagID != nil {
		query = query.Where("targets.id IN (?)",
			r.db.Table("target_tag_assignments").Select("target_id").Where("target_tag_id = ?", *filter.TagID))
	}
	query = applySearch(query, filter.Search,
		"targets.first_name", "targets.last_name", "targets.email", "targets.department", "targets.job_title")

	var targets []models.Target
	total, err := paginate(query, filter.Page, "targets.last_name ASC, targets.first_name ASC", &targets)
	if err != nil {
		return nil, 0, err
	}
	return targets, total, nil
}

// Update saves the target; when tags is non-nil the tag assignments are replaced
func (r *TargetRepository) Update(target *models.Target, tags []models.TargetTag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(target).Error; err != nil {
			return err
		}
		if tags == nil {
			return nil
		}
		if err := tx.Model(target).Association("Tags").Replace(tags); err != nil {
			return err
		}
		target.Tags = tags
		return nil
	})
}

// Delete deletes a target of the organization
func (r *TargetRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.Target{}, "organization_id = ? AND id = ?", orgID, id).Error
}

// ExistingEmails returns which of emails already exist in the organization
func (r *TargetRepository) ExistingEmails(orgID uuid.UUID, emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	var found []string
	err := r.db.Model(&models.Target{}).
		Where("organization_id = ? AND email IN ?", orgID, emails).
		Pluck("email", &found).Error
	return found, err
}

// ExistingIDs returns which of ids are targets of the organization
func (r *TargetRepository) ExistingIDs(orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	return existingIDs(r.db, "targets", orgID, ids)
}

// GetByIDs returns the targets among ids that belong to the organization
func (r *TargetRepository) GetByIDs(orgID uuid.UUID, ids []uuid.UUID) ([]models.Target, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var targets []models.Target
	err := r.db.Where("organization_id = ? AND id IN ?", orgID, ids).Find(&targets).Error
	return targets, err
}

// Count returns the number of targets in the organization
func (r *TargetRepository) Count(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Target{}).Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// Statistics aggregates target counts for the organization
func (r *TargetRepository) Statistics(orgID uuid.UUID) (*TargetStatistics, error) {
	scoped := func() *gorm.DB {
		return r.db.Model(&models.Target{}).Where("organization_id = ?", orgID)
	}
	stats := &TargetStatistics{ByRiskLevel: map[string]int64{}}

	if err := scoped().Count(&stats.TotalTargets).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("is_active = ?", true).Count(&stats.ActiveTargets).Error; err != nil {
		return nil, err
	}

	var risk []countRow
	if err := scoped().Select("risk_level AS label, COUNT(*) AS count").Group("risk_level").Scan(&risk).Error; err != nil {
		return nil, err
	}
	for _, level := range models.AllRiskLevels {
		stats.ByRiskLevel[string(level)] = 0
	}
	for k, v := range toCountMap(risk) {
		stats.ByRiskLevel[k] = v
	}

	if err := scoped().
		Select("department, COUNT(*) AS count").
		Where("department <> ''").
		Group("department").
		Order("count DESC, department ASC").
		Limit(10).
		Scan(&stats.ByDepartment).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.TargetGroup{}).Where("organization_id = ?", orgID).Count(&stats.TotalGroups).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.TargetTag{}).Where("organization_id = ?", orgID).Count(&stats.TotalTags).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// TargetGroupRepository handles database operations for target groups
type TargetGroupRepository struct {
	db *gorm.DB
}

// NewTargetGroupRepository creates a new target group repository
func NewTargetGroupRepository(db *gorm.DB) *TargetGroupRepository {
	return &TargetGroupRepository{db: db}
}

// Create inserts a group with its members
func (r *TargetGroupRepository) Create(group *models.TargetGroup) error {
	return r.db.Omit("Targets.*").Create(group).Error
}

// GetByID retrieves a group of the organization with its targets
func (r *TargetGroupRepository) GetByID(orgID, id uuid.UUID) (*models.TargetGroup, error) {
	var group models.TargetGroup
	err := r.db.Preload("Targets", func(db *gorm.DB) *gorm.DB {
		return db.Order("last_name ASC, first_name ASC")
	}).First(&group, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByName retrieves a group of the organization by name
func (r *TargetGroupRepository) GetByName(orgID uuid.UUID, name string) (*models.TargetGroup, error) {
	var group models.TargetGroup
	err := r.db.First(&group, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// List retrieves the groups of the organization, ordered by name
func (r *TargetGroupRepository) List(orgID uuid.UUID, page Page) ([]models.TargetGroup, int64, error) {
	query := r.db.Model(&models.TargetGroup{}).Where("organization_id = ?", orgID)
	query = applySearch(query, page.Search, "name", "description")

	var groups []models.TargetGroup
	total, err := paginate(query, page, "name ASC", &groups)
	if err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

// Update saves the group; when targets is non-nil membership is replaced
func (r *TargetGroupRepository) Update(group *models.TargetGroup, targets []models.Target) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Targets").Save(group).Error; err != nil {
			return err
		}
		if targets == nil {
			return nil
		}
		if err := tx.Model(group).Association("Targets").Replace(targets); err != nil {
			return err
		}
		group.Targets = targets
		return nil
	})
}

// Delete deletes a group of the organization
func (r *TargetGroupRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.TargetGroup{}, "organization_id = ? AND id = ?", orgID, id).Error
}

// ExistingIDs returns which of ids are groups of the organization
func (r *TargetGroupRepository) ExistingIDs(orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	return existingIDs(r.db, "target_groups", orgID, ids)
}

// GetByIDs returns the groups among ids that belong to the organization
func (r *TargetGroupRepository) GetByIDs(orgID uuid.UUID, ids []uuid.UUID) ([]models.TargetGroup, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var groups []models.TargetGroup
	err := r.db.Where("organization_id = ? AND id IN ?", orgID, ids).Find(&groups).Error
	return groups, err
}

// CountTargets returns the member count of each group
func (r *TargetGroupRepository) CountTargets(groupIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return countJoin(r.db, "target_group_members", "target_group_id", groupIDs)
}

// TargetTagRepository handles database operations for target tags
type TargetTagRepository struct {
	db *gorm.DB
}

// NewTargetTagRepository creates a new target tag repository
func NewTargetTagRepository(db *gorm.DB) *TargetTagRepository {
	return &TargetTagRepository{db: db}
}

// Create inserts a tag
func (r *TargetTagRepository) Create(tag *models.TargetTag) error {
	return r.db.Create(tag).Error
}

// GetByID retrieves a tag of the organization
func (r *TargetTagRepository) GetByID(orgID, id uuid.UUID) (*models.TargetTag, error) {
	var tag models.TargetTag
	err := r.db.First(&tag, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByName retrieves a tag of the organization by name
func (r *TargetTagRepository) GetByName(orgID uuid.UUID, name string) (*models.TargetTag, error) {
	var tag models.TargetTag
	err := r.db.First(&tag, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDs returns the tags among ids that belong to the organization
func (r *TargetTagRepository) GetByIDs(orgID uuid.UUID, ids []uuid.UUID) ([]models.TargetTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.TargetTag
	err := r.db.Where("organization_id = ? AND id IN ?", orgID, ids).Find(&tags).Error
	return tags, err
}

// List retrieves the tags of the organization, ordered by name
func (r *TargetTagRepository) List(orgID uuid.UUID, page Page) ([]models.TargetTag, int64, error) {
	query := r.db.Model(&models.TargetTag{}).Where("organization_id = ?", orgID)
	query = applySearch(query, page.Search, "name")

	var tags []models.TargetTag
	total, err := paginate(query, page, "name ASC", &tags)
	if err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

// Update saves a tag
func (r *TargetTagRepository) Update(tag *models.TargetTag) error {
	return r.db.Save(tag).Error
}

// Delete deletes a tag of the organization
func (r *TargetTagRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.TargetTag{}, "organization_id = ? AND id = ?", orgID, id).Error
}

// CountTargets returns how many targets carry each tag
func (r *TargetTagRepository) CountTargets(tagIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return countJoin(r.db, "target_tag_assignments", "target_tag_id", tagIDs)
}

// TargetImportRepository handles database operations for import audit records
type TargetImportRepository struct {
	db *gorm.DB
}

// NewTargetImportRepository creates a new target import repository
func NewTargetImportRepository(db *gorm.DB) *TargetImportRepository {
	return &TargetImportRepository{db: db}
}

// Create inserts an import record
func (r *TargetImportRepository) Create(record *models.TargetImport) error {
	return r.db.Create(record).Error
}

// List retrieves the imports of the organization, newest first
func (r *TargetImportRepository) List(orgID uuid.UUID, page Page) ([]models.TargetImport, int64, error) {
	query := r.db.Model(&models.TargetImport{}).Where("organization_id = ?", orgID)
	query = applySearch(query, page.Search, "file_name")

	var records []models.TargetImport
	total, err := paginate(query, page, "created_at DESC", &records)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// countJoin counts join-table rows grouped by column for the given owner ids
func countJoin(db *gorm.DB, table, column string, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		OwnerID uuid.UUID
		Count   int64
	}
	err := db.Table(table).
		Select(column+" AS owner_id, COUNT(*) AS count").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.OwnerID] = row.Count
	}
	return out, nil
}
