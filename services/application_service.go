package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tomatoplanet/leads-go/dto"
	"github.com/tomatoplanet/leads-go/fieldschema"
	"github.com/tomatoplanet/leads-go/i18n"
	"github.com/tomatoplanet/leads-go/models"
	"github.com/tomatoplanet/leads-go/repositories"
	"github.com/tomatoplanet/leads-go/utils"
)

// ErrInvalidFields marks a payload that failed schema validation. Handlers
// collapse it to the opaque "Invalid fields." response; which field failed
// stays server side.
var ErrInvalidFields = errors.New("invalid fields")

type ApplicationService struct {
	repo     repositories.ApplicationRepo
	notifier Notifier
	feed     *Feed
}

func NewApplicationService(repos *repositories.Repos, notifier Notifier, feed *Feed) *ApplicationService {
	return &ApplicationService{repo: repos.Application, notifier: notifier, feed: feed}
}

// SubmitBrand validates, normalizes and persists one brand application.
// It returns the localized success message.
func (s *ApplicationService) SubmitBrand(locale string, input dto.BrandApplicationInput) (string, error) {
	if err := s.validate(fieldschema.KindBrand, input.Payload()); err != nil {
		return "", err
	}

	// otherIndustry only carries meaning alongside an "other" selection.
	otherIndustry := input.OtherIndustry
	industry := models.NormalizeIndustry(input.Industry)
	if industry != models.IndustryOther {
		otherIndustry = ""
	}

	raw, _ := json.Marshal(input)
	app := &models.BrandApplication{
		Reference:        uuid.NewString(),
		BrandName:        input.BrandName,
		Industry:         industry,
		OtherIndustry:    otherIndustry,
		CompanySize:      models.NormalizeCompanySize(input.CompanySize),
		Website:          input.Website,
		Description:      input.Description,
		ContactChannel:   models.NormalizeContactChannel(input.ContactType),
		Email:            input.Email,
		PhoneCountryCode: input.PhoneCountryCode,
		PhoneNumber:      input.PhoneNumber,
		ContactName:      input.ContactName,
		ContactTitle:     input.ContactTitle,
		RawPayload:       raw,
	}

	if err := s.repo.CreateBrand(app); err != nil {
		utils.Log.Error("failed to store brand application", zap.Error(err))
		return "", fmt.Errorf("create brand application: %w", err)
	}

	s.afterCreate("brand", app.Reference, "notify_brand_subject",
		fmt.Sprintf("Brand: %s\nIndustry: %s\nContact: %s (%s)\nReference: %s",
			app.BrandName, app.Industry, app.ContactName, app.ContactChannel, app.Reference))

	return i18n.Message(locale, "brand_submitted"), nil
}

// SubmitCreator validates, normalizes and persists one creator application.
func (s *ApplicationService) SubmitCreator(locale string, input dto.CreatorApplicationInput) (string, error) {
	if err := s.validate(fieldschema.KindCreator, input.Payload()); err != nil {
		return "", err
	}

	otherPlatform := input.OtherPlatform
	platform := models.NormalizePlatform(input.Platform)
	if platform != models.PlatformOther {
		otherPlatform = ""
	}

	raw, _ := json.Marshal(input)
	app := &models.CreatorApplication{
		Reference:        uuid.NewString(),
		Platform:         platform,
		OtherPlatform:    otherPlatform,
		SocialMediaID:    input.SocialMediaID,
		ContactChannel:   models.NormalizeContactChannel(input.ContactType),
		Email:            input.Email,
		PhoneCountryCode: input.PhoneCountryCode,
		PhoneNumber:      input.PhoneNumber,
		RawPayload:       raw,
	}

	if err := s.repo.CreateCreator(app); err != nil {
		utils.Log.Error("failed to store creator application", zap.Error(err))
		return "", fmt.Errorf("create creator application: %w", err)
	}

	s.afterCreate("creator", app.Reference, "notify_creator_subject",
		fmt.Sprintf("Creator: %s on %s\nReference: %s",
			app.SocialMediaID, app.Platform, app.Reference))

	return i18n.Message(locale, "creator_submitted"), nil
}

// SubmitContact handles the unified contact form, which covers both lead
// kinds behind the serviceType discriminator.
func (s *ApplicationService) SubmitContact(locale string, input dto.ContactFormInput) (string, error) {
	if err := s.validate(fieldschema.KindContact, input.Payload()); err != nil {
		return "", err
	}

	serviceType := models.NormalizeServiceType(input.ServiceType)

	var platform *models.Platform
	otherPlatform := input.OtherPlatform
	if input.Platform != "" {
		p := models.NormalizePlatform(input.Platform)
		platform = &p
		if p != models.PlatformOther {
			otherPlatform = ""
		}
	} else {
		otherPlatform = ""
	}

	raw, _ := json.Marshal(input)
	sub := &models.ContactSubmission{
		Reference:        uuid.NewString(),
		ServiceType:      serviceType,
		Name:             input.Name,
		Email:            input.Email,
		Company:          input.Company,
		Phone:            input.Phone,
		PhoneCountryCode: input.PhoneCountryCode,
		Message:          input.Message,
		BrandName:        input.BrandName,
		Platform:         platform,
		OtherPlatform:    otherPlatform,
		SocialMediaID:    input.SocialMediaID,
		RawPayload:       raw,
	}

	if err := s.repo.CreateContact(sub); err != nil {
		utils.Log.Error("failed to store contact submission", zap.Error(err))
		return "", fmt.Errorf("create contact submission: %w", err)
	}

	s.afterCreate("contact", sub.Reference, "notify_contact_subject",
		fmt.Sprintf("From: %s <%s>\nService: %s\nReference: %s",
			sub.Name, sub.Email, sub.ServiceType, sub.Reference))

	messageKey := "creator_submitted"
	if serviceType == models.ServiceTypeBrand {
		messageKey = "brand_submitted"
	}
	return i18n.Message(locale, messageKey), nil
}

func (s *ApplicationService) validate(kind fieldschema.Kind, payload map[string]interface{}) error {
	fieldErrs, err := fieldschema.Validate(kind, payload)
	if err != nil {
		return fmt.Errorf("validate %s payload: %w", kind, err)
	}
	if len(fieldErrs) > 0 {
		utils.Log.Info("rejected submission",
			zap.String("kind", string(kind)),
			zap.Int("field_errors", len(fieldErrs)))
		return ErrInvalidFields
	}
	return nil
}

func (s *ApplicationService) afterCreate(kind, reference, subjectKey, body string) {
	if s.feed != nil {
		s.feed.Publish(ApplicationEvent{
			Kind:       kind,
			Reference:  reference,
			ReceivedAt: time.Now(),
		})
	}
	if s.notifier == nil {
		return
	}
	subject := i18n.Message(i18n.DefaultLocale, subjectKey)
	go func() {
		if err := s.notifier.Notify(subject, body); err != nil {
			utils.Log.Warn("notification email failed",
				zap.String("kind", kind),
				zap.Error(err))
		}
	}()
}
