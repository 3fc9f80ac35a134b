package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BrandApplication is one brand partnership lead. Rows are created by a
// successful submission and never updated or deleted by the pipeline.
type BrandApplication struct {
	gorm.Model
	Reference string   `json:"reference" gorm:"type:uuid;uniqueIndex"`
	BrandName string   `json:"brand_name"`
	Industry  Industry `json:"industry" gorm:"type:industry"`
	// Free-text industry, only meaningful when Industry is OTHER.
	OtherIndustry string      `json:"other_industry"`
	CompanySize   CompanySize `json:"company_size" gorm:"type:company_size"`
	Website       string      `json:"website"`
	Description   string      `json:"description"`

	ContactChannel   ContactChannel `json:"contact_channel" gorm:"type:contact_channel"`
	Email            string         `json:"email"`
	PhoneCountryCode string         `json:"phone_country_code"`
	PhoneNumber      string         `json:"phone_number"`
	ContactName      string         `json:"contact_name"`
	ContactTitle     string         `json:"contact_title"`

	// Submitted payload as received, kept for audit.
	RawPayload datatypes.JSON `json:"-"`
}

// CreatorApplication is one creator lead.
type CreatorApplication struct {
	gorm.Model
	Reference     string   `json:"reference" gorm:"type:uuid;uniqueIndex"`
	Platform      Platform `json:"platform" gorm:"type:social_platform"`
	OtherPlatform string   `json:"other_platform"`
	SocialMediaID string   `json:"social_media_id"`

	ContactChannel   ContactChannel `json:"contact_channel" gorm:"type:contact_channel"`
	Email            string         `json:"email"`
	PhoneCountryCode string         `json:"phone_country_code"`
	PhoneNumber      string         `json:"phone_number"`

	RawPayload datatypes.JSON `json:"-"`
}

// ContactSubmission is one row from the unified contact form, which covers
// both lead kinds behind a serviceType discriminator. Platform stays nil for
// brand inquiries.
type ContactSubmission struct {
	gorm.Model
	Reference        string      `json:"reference" gorm:"type:uuid;uniqueIndex"`
	ServiceType      ServiceType `json:"service_type" gorm:"type:service_type"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Company          string      `json:"company"`
	Phone            string      `json:"phone"`
	PhoneCountryCode string      `json:"phone_country_code"`
	Message          string      `json:"message"`

	BrandName string `json:"brand_name"`

	Platform      *Platform `json:"platform,omitempty" gorm:"type:social_platform"`
	OtherPlatform string    `json:"other_platform"`
	SocialMediaID string    `json:"social_media_id"`

	RawPayload datatypes.JSON `json:"-"`
}
