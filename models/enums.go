package models

import "strings"

// Canonical enum tokens as stored in postgres. Form payloads carry the
// lower-case UI tokens; Normalize* converts them. Unrecognized tokens fall
// back to a defined default instead of failing the submission, so enum drift
// between deployed frontends and the database stays forward compatible.

type Industry string

const (
	IndustryFashion       Industry = "FASHION"
	IndustryBeauty        Industry = "BEAUTY"
	IndustryTechnology    Industry = "TECHNOLOGY"
	IndustryFood          Industry = "FOOD"
	IndustryFitness       Industry = "FITNESS"
	IndustryEducation     Industry = "EDUCATION"
	IndustryEntertainment Industry = "ENTERTAINMENT"
	IndustryFinance       Industry = "FINANCE"
	IndustryHealthcare    Industry = "HEALTHCARE"
	IndustryAutomotive    Industry = "AUTOMOTIVE"
	IndustryTravel        Industry = "TRAVEL"
	IndustrySports        Industry = "SPORTS"
	IndustryOther         Industry = "OTHER"
)

type CompanySize string

const (
	CompanySizeStartup    CompanySize = "STARTUP"
	CompanySizeSmall      CompanySize = "SMALL"
	CompanySizeMedium     CompanySize = "MEDIUM"
	CompanySizeLarge      CompanySize = "LARGE"
	CompanySizeEnterprise CompanySize = "ENTERPRISE"
)

type Platform string

const (
	PlatformTikTok    Platform = "TIKTOK"
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformYouTube   Platform = "YOUTUBE"
	PlatformTwitter   Platform = "TWITTER"
	PlatformOther     Platform = "OTHER"
)

type ContactChannel string

const (
	ContactChannelEmail ContactChannel = "EMAIL"
	ContactChannelPhone ContactChannel = "PHONE"
)

type ServiceType string

const (
	ServiceTypeBrand   ServiceType = "BRAND"
	ServiceTypeCreator ServiceType = "CREATOR"
)

// NormalizeIndustry maps a form industry token to its canonical value.
// Lower-casing first keeps the mapping idempotent: an already-canonical
// token normalizes to itself.
func NormalizeIndustry(industry string) Industry {
	switch strings.ToLower(industry) {
	case "fashion":
		return IndustryFashion
	case "beauty":
		return IndustryBeauty
	case "technology":
		return IndustryTechnology
	case "food":
		return IndustryFood
	case "fitness":
		return IndustryFitness
	case "education":
		return IndustryEducation
	case "entertainment":
		return IndustryEntertainment
	case "finance":
		return IndustryFinance
	case "healthcare":
		return IndustryHealthcare
	case "automotive":
		return IndustryAutomotive
	case "travel":
		return IndustryTravel
	case "sports":
		return IndustrySports
	case "other":
		return IndustryOther
	default:
		return IndustryOther
	}
}

// NormalizeCompanySize maps a form company size token to its canonical
// value. Unrecognized tokens default to MEDIUM.
func NormalizeCompanySize(size string) CompanySize {
	switch strings.ToLower(size) {
	case "startup":
		return CompanySizeStartup
	case "small":
		return CompanySizeSmall
	case "medium":
		return CompanySizeMedium
	case "large":
		return CompanySizeLarge
	case "enterprise":
		return CompanySizeEnterprise
	default:
		return CompanySizeMedium
	}
}

// NormalizePlatform maps a form social platform token to its canonical value.
func NormalizePlatform(platform string) Platform {
	switch strings.ToLower(platform) {
	case "tiktok":
		return PlatformTikTok
	case "instagram":
		return PlatformInstagram
	case "youtube":
		return PlatformYouTube
	case "twitter":
		return PlatformTwitter
	case "other":
		return PlatformOther
	default:
		return PlatformOther
	}
}

// NormalizeContactChannel maps a form contact type token to its canonical
// value. The shared schema validates contactType as a strict enum, so the
// EMAIL default only matters if the normalizer is fed data that skipped
// validation.
func NormalizeContactChannel(contactType string) ContactChannel {
	switch strings.ToLower(contactType) {
	case "email":
		return ContactChannelEmail
	case "phone":
		return ContactChannelPhone
	default:
		return ContactChannelEmail
	}
}

// NormalizeServiceType maps the contact form discriminator. Anything that is
// not a brand inquiry is treated as a creator inquiry.
func NormalizeServiceType(serviceType string) ServiceType {
	if strings.ToLower(serviceType) == "brand" {
		return ServiceTypeBrand
	}
	return ServiceTypeCreator
}
