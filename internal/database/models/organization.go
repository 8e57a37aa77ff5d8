package models

// Organization is the tenant root; every tenant-owned row hangs off it
type Organization struct {
	BaseModel
	Name             string           `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Domain           string           `json:"domain" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	Industry         Industry         `json:"industry" gorm:"type:varchar(50);not null"`
	Size             OrganizationSize `json:"size" gorm:"type:varchar(20);not null"`
	SubscriptionTier PlanType         `json:"subscription_tier" gorm:"type:varchar(20);not null"`
	IsActive         bool             `json:"is_active" gorm:"not null"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
