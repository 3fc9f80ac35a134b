package dto

// Input DTOs are the tagged variants of the three submission payloads. JSON
// keys match the form field names the site has always posted; validation is
// done against the shared field schema, not binding tags, so both sides of
// the wire agree on one definition.

type BrandApplicationInput struct {
	BrandName        string `json:"brandName"`
	Industry         string `json:"industry"`
	OtherIndustry    string `json:"otherIndustry"`
	CompanySize      string `json:"companySize"`
	Website          string `json:"website"`
	Description      string `json:"description"`
	ContactType      string `json:"contactType"`
	Email            string `json:"email"`
	PhoneCountryCode string `json:"phoneCountryCode"`
	PhoneNumber      string `json:"phoneNumber"`
	ContactName      string `json:"contactName"`
	ContactTitle     string `json:"contactTitle"`
}

// Payload flattens the input for schema validation.
func (in BrandApplicationInput) Payload() map[string]interface{} {
	return map[string]interface{}{
		"brandName":        in.BrandName,
		"industry":         in.Industry,
		"otherIndustry":    in.OtherIndustry,
		"companySize":      in.CompanySize,
		"website":          in.Website,
		"description":      in.Description,
		"contactType":      in.ContactType,
		"email":            in.Email,
		"phoneCountryCode": in.PhoneCountryCode,
		"phoneNumber":      in.PhoneNumber,
		"contactName":      in.ContactName,
		"contactTitle":     in.ContactTitle,
	}
}

type CreatorApplicationInput struct {
	ContactType      string `json:"contactType"`
	Email            string `json:"email"`
	PhoneCountryCode string `json:"phoneCountryCode"`
	PhoneNumber      string `json:"phoneNumber"`
	SocialMediaID    string `json:"socialMediaId"`
	Platform         string `json:"platform"`
	OtherPlatform    string `json:"otherPlatform"`
}

func (in CreatorApplicationInput) Payload() map[string]interface{} {
	return map[string]interface{}{
		"contactType":      in.ContactType,
		"email":            in.Email,
		"phoneCountryCode": in.PhoneCountryCode,
		"phoneNumber":      in.PhoneNumber,
		"socialMediaId":    in.SocialMediaID,
		"platform":         in.Platform,
		"otherPlatform":    in.OtherPlatform,
	}
}

type ContactFormInput struct {
	ServiceType      string `json:"serviceType"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Company          string `json:"company"`
	Phone            string `json:"phone"`
	PhoneCountryCode string `json:"phoneCountryCode"`
	Message          string `json:"message"`
	BrandName        string `json:"brandName"`
	Platform         string `json:"platform"`
	OtherPlatform    string `json:"otherPlatform"`
	SocialMediaID    string `json:"socialMediaId"`
	ContactType      string `json:"contactType"`
}

func (in ContactFormInput) Payload() map[string]interface{} {
	return map[string]interface{}{
		"serviceType":      in.ServiceType,
		"name":             in.Name,
		"email":            in.Email,
		"company":          in.Company,
		"phone":            in.Phone,
		"phoneCountryCode": in.PhoneCountryCode,
		"message":          in.Message,
		"brandName":        in.BrandName,
		"platform":         in.Platform,
		"otherPlatform":    in.OtherPlatform,
		"socialMediaId":    in.SocialMediaID,
		"contactType":      in.ContactType,
	}
}
