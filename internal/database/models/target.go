package models

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Target is an employee who receives simulated phishing emails
type Target struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_targets_org_email,priority:1"`
	Organization   *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Email          string        `json:"email" gorm:"not null;size:255;uniqueIndex:idx_targets_org_email,priority:2"`
	FirstName      string        `json:"first_name" gorm:"not null;size:100"`
	LastName       string        `json:"last_name" gorm:"not null;size:100"`
	Department     string        `json:"department" gorm:"size:100;index"`
	JobTitle       string        `json:"job_title" gorm:"size:100"`
	Phone          string        `json:"phone" gorm:"size:17"`
	RiskLevel      RiskLevel     `json:"risk_level" gorm:"type:varchar(20);not null"`
	IsActive       bool          `json:"is_active" gorm:"not null"`

	Tags []TargetTag `json:"tags,omitempty" gorm:"many2many:target_tag_assignments;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Target
func (Target) TableName() string {
	return "targets"
}

// BeforeSave normalises the email so the (organization, email) index is case-insensitive
func (t *Target) BeforeSave(tx *gorm.DB) error {
	t.Email = strings.ToLower(strings.TrimSpace(t.Email))
	return nil
}

// FullName joins first and last name
func (t *Target) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

// TargetGroup is a named set of targets used to address campaigns
type TargetGroup struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_target_groups_org_name,priority:1"`
	Organization   *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name           string        `json:"name" gorm:"not null;size:100;uniqueIndex:idx_target_groups_org_name,priority:2"`
	Description    string        `json:"description" gorm:"type:text"`
	CreatedByID    *uuid.UUID    `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedBy      *User         `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`

	Targets []Target `json:"targets,omitempty" gorm:"many2many:target_group_members;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TargetGroup
func (TargetGroup) TableName() string {
	return "target_groups"
}

// TargetTag labels targets for filtering
type TargetTag struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_target_tags_org_name,priority:1"`
	Organization   *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name           string        `json:"name" gorm:"not null;size:50;uniqueIndex:idx_target_tags_org_name,priority:2"`
	Color          string        `json:"color" gorm:"not null;size:7"`
}

// TableName returns the table name for TargetTag
func (TargetTag) TableName() string {
	return "target_tags"
}

// TargetImport is the audit record of one bulk import
type TargetImport struct {
	BaseModel
	OrganizationID    uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;index"`
	Organization      *Organization      `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	FileName          string             `json:"file_name" gorm:"size:255"`
	TotalRecords      int                `json:"total_records"`
	SuccessfulImports int                `json:"successful_imports"`
	FailedImports     int                `json:"failed_imports"`
	Status            TargetImportStatus `json:"status" gorm:"type:varchar(20);not null"`
	ErrorLog          string             `json:"error_log" gorm:"type:text"`
	ImportedByID      *uuid.UUID         `json:"imported_by,omitempty" gorm:"type:uuid"`
	ImportedBy        *User              `json:"-" gorm:"foreignKey:ImportedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for TargetImport
func (TargetImport) TableName() string {
	return "target_imports"
}

// SuccessRate is the share of rows imported, as a percentage rounded to two places
func (t *TargetImport) SuccessRate() float64 {
	return Percentage(t.SuccessfulImports, t.TotalRecords)
}

// Percentage returns part/whole*100 rounded to two places, or 0 when whole is 0
func Percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return Round2(float64(part) / float64(whole) * 100)
}

// Round2 rounds to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
