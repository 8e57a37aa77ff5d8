package repository

import (
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportAverages are the mean rates across an organization's campaign reports
type ReportAverages struct {
	AvgOpenRate           float64
	AvgClickRate          float64
	AvgSusceptibilityRate float64
	Reports               int64
}

// DepartmentRisk is a department's mean risk score across campaigns
type DepartmentRisk struct {
	Department   string  `json:"department"`
	AvgRiskScore float64 `json:"avg_risk_score"`
}

// CampaignReportRepository handles database operations for campaign reports
type CampaignReportRepository struct {
	db *gorm.DB
}

// NewCampaignReportRepository creates a new campaign report repository
func NewCampaignReportRepository(db *gorm.DB) *CampaignReportRepository {
	return &CampaignReportRepository{db: db}
}

// Upsert writes the report of a campaign, replacing any previous one
func (r *CampaignReportRepository) Upsert(report *models.CampaignReport) error {
	var existing models.CampaignReport
	err := r.db.Where("campaign_id = ?", report.CampaignID).Limit(1).Find(&existing).Error
	if err != nil {
		return err
	}
	if existing.ID != uuid.Nil {
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
	}
	return r.db.Omit("Campaign").Save(report).Error
}

// GetByCampaign retrieves the report of one of the organization's campaigns
func (r *CampaignReportRepository) GetByCampaign(orgID, campaignID uuid.UUID) (*models.CampaignReport, error) {
	var report models.CampaignReport
	err := r.db.Preload("Campaign").
		Joins("JOIN campaigns ON campaigns.id = campaign_reports.campaign_id").
		Where("campaigns.organization_id = ? AND campaign_reports.campaign_id = ?", orgID, campaignID).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List retrieves the organization's reports, newest first
func (r *CampaignReportRepository) List(orgID uuid.UUID, page Page) ([]models.CampaignReport, int64, error) {
	query := r.db.Model(&models.CampaignReport{}).Preload("Campaign").
		Joins("JOIN campaigns ON campaigns.id = campaign_reports.campaign_id").
		Where("campaigns.organization_id = ?", orgID)
	query = applySearch(query, page.Search, "campaigns.name")

	var reports []models.CampaignReport
	total, err := paginate(query, page, "campaign_reports.generated_at DESC", &reports)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// Averages returns the mean rates over the organization's reports
func (r *CampaignReportRepository) Averages(orgID uuid.UUID) (*ReportAverages, error) {
	var avg ReportAverages
	err := r.db.Model(&models.CampaignReport{}).
		Select(`COALESCE(AVG(campaign_reports.open_rate), 0) AS avg_open_rate,
			COALESCE(AVG(campaign_reports.click_rate), 0) AS avg_click_rate,
			COALESCE(AVG(campaign_reports.susceptibility_rate), 0) AS avg_susceptibility_rate,
			COUNT(*) AS reports`).
		Joins("JOIN campaigns ON campaigns.id = campaign_reports.campaign_id").
		Where("campaigns.organization_id = ?", orgID).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	avg.AvgOpenRate = models.Round2(avg.AvgOpenRate)
	avg.AvgClickRate = models.Round2(avg.AvgClickRate)
	avg.AvgSusceptibilityRate = models.Round2(avg.AvgSusceptibilityRate)
	return &avg, nil
}

// DepartmentReportRepository handles database operations for department reports
type DepartmentReportRepository struct {
	db *gorm.DB
}

// NewDepartmentReportRepository creates a new department report repository
func NewDepartmentReportRepository(db *gorm.DB) *DepartmentReportRepository {
	return &DepartmentReportRepository{db: db}
}

// ReplaceForCampaign swaps the department rows of a campaign for reports
func (r *DepartmentReportRepository) ReplaceForCampaign(campaignID uuid.UUID, reports []models.DepartmentReport) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", campaignID).Delete(&models.DepartmentReport{}).Error; err != nil {
			return err
		}
		if len(reports) == 0 {
			return nil
		}
		return tx.Omit("Campaign").Create(&reports).Error
	})
}

// List retrieves the organization's department reports, optionally for one campaign
func (r *DepartmentReportRepository) List(orgID uuid.UUID, campaignID *uuid.UUID, page Page) ([]models.DepartmentReport, int64, error) {
	query := r.db.Model(&models.DepartmentReport{}).
		Joins("JOIN campaigns ON campaigns.id = department_reports.campaign_id").
		Where("campaigns.organization_id = ?", orgID)
	if campaignID != nil {
		query = query.Where("department_reports.campaign_id = ?", *campaignID)
	}
	query = applySearch(query, page.Search, "department_reports.department")

	var reports []models.DepartmentReport
	total, err := paginate(query, page, "department_reports.risk_score DESC, department_reports.department ASC", &reports)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// GetForCampaignDepartment retrieves one department row of a campaign
func (r *DepartmentReportRepository) GetForCampaignDepartment(campaignID uuid.UUID, department string) (*models.DepartmentReport, error) {
	var report models.DepartmentReport
	err := r.db.First(&report, "campaign_id = ? AND department = ?", campaignID, department).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// TopRiskDepartments returns departments ordered by mean risk score
func (r *DepartmentReportRepository) TopRiskDepartments(orgID uuid.UUID, limit int) ([]DepartmentRisk, error) {
	var rows []DepartmentRisk
	err := r.db.Model(&models.DepartmentReport{}).
		Select("department_reports.department AS department, AVG(department_reports.risk_score) AS avg_risk_score").
		Joins("JOIN campaigns ON campaigns.id = department_reports.campaign_id").
		Where("campaigns.organization_id = ?", orgID).
		Group("department_reports.department").
		Order("avg_risk_score DESC, department ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AvgRiskScore = models.Round2(rows[i].AvgRiskScore)
	}
	return rows, nil
}

// ScheduledReportRepository handles database operations for scheduled reports
type ScheduledReportRepository struct {
	db *gorm.DB
}

// NewScheduledReportRepository creates a new scheduled report repository
func NewScheduledReportRepository(db *gorm.DB) *ScheduledReportRepository {
	return &ScheduledReportRepository{db: db}
}

// Create inserts a scheduled report with its campaigns
func (r *ScheduledReportRepository) Create(report *models.ScheduledReport) error {
	return r.db.Omit("IncludeCampaigns.*").Create(report).Error
}

// GetByID retrieves a scheduled report of the organization
func (r *ScheduledReportRepository) GetByID(orgID, id uuid.UUID) (*models.ScheduledReport, error) {
	var report models.ScheduledReport
	err := r.db.Preload("IncludeCampaigns").
		First(&report, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List retrieves the organization's scheduled reports by next run
func (r *ScheduledReportRepository) List(orgID uuid.UUID, page Page) ([]models.ScheduledReport, int64, error) {
	query := r.db.Model(&models.ScheduledReport{}).Preload("IncludeCampaigns").
		Where("organization_id = ?", orgID)
	query = applySearch(query, page.Search, "name")

	var reports []models.ScheduledReport
	total, err := paginate(query, page, "next_run ASC", &reports)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// ListDue returns active scheduled reports whose next run has passed
func (r *ScheduledReportRepository) ListDue(now time.Time) ([]models.ScheduledReport, error) {
	var reports []models.ScheduledReport
	err := r.db.Preload("IncludeCampaigns").
		Where("is_active = ? AND next_run <= ?", true, now).
		Order("next_run ASC").
		Find(&reports).Error
	return reports, err
}

// Update saves a scheduled report; when campaigns is non-nil the included campaigns are replaced
func (r *ScheduledReportRepository) Update(report *models.ScheduledReport, campaigns []models.Campaign) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("IncludeCampaigns").Save(report).Error; err != nil {
			return err
		}
		if campaigns == nil {
			return nil
		}
		if err := tx.Model(report).Association("IncludeCampaigns").Replace(campaigns); err != nil {
			return err
		}
		report.IncludeCampaigns = campaigns
		return nil
	})
}

// MarkRun records a run and schedules the next one
func (r *ScheduledReportRepository) MarkRun(id uuid.UUID, ranAt, nextRun time.Time) error {
	return r.db.Model(&models.ScheduledReport{}).Where("id = ?", id).
		Updates(map[string]interface{}{"last_run": ranAt, "next_run": nextRun}).Error
}

// Delete deletes a scheduled report of the organization
func (r *ScheduledReportRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.ScheduledReport{}, "organization_id = ? AND id = ?", orgID, id).Error
}
