package services_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/tomatoplanet/leads-go/dto"
	"github.com/tomatoplanet/leads-go/models"
	"github.com/tomatoplanet/leads-go/repositories"
	"github.com/tomatoplanet/leads-go/repositories/mock_repositories"
	"github.com/tomatoplanet/leads-go/services"
)

func setupApplicationMocks(t *testing.T) (*services.ApplicationService, *mock_repositories.MockApplicationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApp := mock_repositories.NewMockApplicationRepo(ctrl)
	repos := &repositories.Repos{Application: mockApp}

	svc := services.NewApplicationService(repos, services.NoopNotifier{}, services.NewFeed())
	return svc, mockApp
}

func validBrandInput() dto.BrandApplicationInput {
	return dto.BrandApplicationInput{
		BrandName:    "Glow Cosmetics",
		Industry:     "beauty",
		CompanySize:  "small",
		Description:  "A cosmetics line for sensitive skin.",
		ContactType:  "email",
		Email:        "hello@glow.example",
		ContactName:  "Dana",
		ContactTitle: "Founder",
	}
}

func validCreatorInput() dto.CreatorApplicationInput {
	return dto.CreatorApplicationInput{
		ContactType:   "email",
		Email:         "creator@example.com",
		SocialMediaID: "@dana",
		Platform:      "tiktok",
	}
}

func TestSubmitBrand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockApp := setupApplicationMocks(t)

		var stored *models.BrandApplication
		mockApp.EXPECT().CreateBrand(gomock.Any()).DoAndReturn(func(app *models.BrandApplication) error {
			stored = app
			return nil
		})

		msg, err := svc.SubmitBrand("en", validBrandInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg != "Brand application submitted successfully!" {
			t.Errorf("message = %q", msg)
		}
		if stored.Industry != models.IndustryBeauty {
			t.Errorf("industry = %s", stored.Industry)
		}
		if stored.CompanySize != models.CompanySizeSmall {
			t.Errorf("company size = %s", stored.CompanySize)
		}
		if stored.ContactChannel != models.ContactChannelEmail {
			t.Errorf("contact channel = %s", stored.ContactChannel)
		}
		if stored.Reference == "" {
			t.Error("reference not assigned")
		}
		if len(stored.RawPayload) == 0 {
			t.Error("raw payload not captured")
		}
	})

	t.Run("invalid fields never reach the repo", func(t *testing.T) {
		svc, _ := setupApplicationMocks(t)

		input := validBrandInput()
		input.BrandName = ""

		_, err := svc.SubmitBrand("en", input)
		if !errors.Is(err, services.ErrInvalidFields) {
			t.Fatalf("expected ErrInvalidFields, got %v", err)
		}
	})

	t.Run("unrecognized industry collapses to OTHER", func(t *testing.T) {
		svc, mockApp := setupApplicationMocks(t)

		var stored *models.BrandApplication
		mockApp.EXPECT().CreateBrand(gomock.Any()).DoAndReturn(func(app *models.BrandApplication) error {
			stored = app
			return nil
		})

		input := validBrandInput()
		input.Industry = "agriculture"
		input.OtherIndustry = "farm tech"

		if _, err := svc.SubmitBrand("en", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Industry != models.IndustryOther {
			t.Errorf("industry = %s, want OTHER", stored.Industry)
		}
		// OTHER keeps the free text
		if stored.OtherIndustry != "farm tech" {
			t.Errorf("otherIndustry = %q", stored.OtherIndustry)
		}
	})

	t.Run("otherIndustry dropped for a recognized industry", func(t *testing.T) {
		svc, mockApp := setupApplicationMocks(t)

		var stored *models.BrandApplication
		mockApp.EXPECT().CreateBrand(gomock.Any()).DoAndReturn(func(app *models.BrandApplication) error {
			stored = app
			return nil
		})

		input := validBrandInput()
		input.OtherIndustry = "stale value"

		if _, err := svc.SubmitBrand("en", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.OtherIndustry != "" {
			t.Errorf("otherIndustry = %q, want empty", stored.OtherIndustry)
		}
	})

	t.Run("repo failure surfaces as a wrapped error", func(t *testing.T) {
		svc, mockApp := setupApplicationMocks(t)

		mockApp.EXPECT().CreateBrand(gomock.Any()).Return(errors.New("db down"))

		_, err := svc.SubmitBrand("en", validBrandInput())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if errors.Is(err, services.ErrInvalidFields) {
			t.Fatal("storage failure must not look like a validation failure")
		}
	})

	t.Run("localized success message", func(t *testing.T) {
		svc, mockApp := setupApplicationMocks(t)
		mockApp.EXPECT().CreateBrand(gomock.Any()).Return(nil)

		msg, err := svc.SubmitBrand("zh", validBrandInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg == "Brand application submitted successfully!" {
			t.Errorf("expected zh message, got the en one")
		}
	})
}

func TestSubmitCreator(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockApp := setupApplicationMocks(t)

		var stored *models.CreatorApplication
		mockApp.EXPECT().CreateCreator(gomock.Any()).DoAndReturn(func(app *models.CreatorApplication) error {
			stored = app
			return nil
		})

		msg, err := svc.SubmitCreator("en", validCreatorInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg != "Creator application submitted successfully!" {
			t.Errorf("message = %q", msg)
		}
		if stored.Platform != models.PlatformTikTok {
			t.Errorf("platform = %s", stored.Platform)
		}
		if stored.ContactChannel != models.ContactChannelEmail {
			t.Errorf("contact channel = %s", stored.ContactChannel)
		}
	})

	t.Run("missing socialMediaId rejected", func(t *testing.T) {
		svc, _ := setupApplicationMocks(t)

		input := validCreatorInput()
		input.SocialMediaID = ""

		_, err := svc.SubmitCreator("en", input)
		if !errors.Is(err, services.ErrInvalidFields) {
			t.Fatalf("expected ErrInvalidFields, got %v", err)
		}
	})

	t.Run("other platform keeps free text", func(t *testing.T) {
		svc, mockApp := setupApplicationMocks(t)

		var stored *models.CreatorApplication
		mockApp.EXPECT().CreateCreator(gomock.Any()).DoAndReturn(func(app *models.CreatorApplication) error {
			stored = app
			return nil
		})

		input := validCreatorInput()
		input.Platform = "other"
		input.OtherPlatform = "Twitch"

		if _, err := svc.SubmitCreator("en", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Platform != models.PlatformOther {
			t.Errorf("platform = %s", stored.Platform)
		}
		if stored.OtherPlatform != "Twitch" {
			t.Errorf("otherPlatform = %q", stored.OtherPlatform)
		}
	})
}

func TestSubmitContact(t *testing.T) {
	t.Run("brand inquiry", func(t *testing.T) {
		svc, mockApp := setupApplicationMocks(t)

		var stored *models.ContactSubmission
		mockApp.EXPECT().CreateContact(gomock.Any()).DoAndReturn(func(sub *models.ContactSubmission) error {
			stored = sub
			return nil
		})

		input := dto.ContactFormInput{
			ServiceType: "brand",
			Name:        "Dana",
			Email:       "dana@example.com",
			Company:     "Glow",
			Message:     "We'd like to run a campaign.",
		}
		msg, err := svc.SubmitContact("en", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg != "Brand application submitted successfully!" {
			t.Errorf("message = %q", msg)
		}
		if stored.ServiceType != models.ServiceTypeBrand {
			t.Errorf("service type = %s", stored.ServiceType)
		}
		// no platform submitted means the column stays NULL
		if stored.Platform != nil {
			t.Errorf("platform = %v, want nil", *stored.Platform)
		}
	})

	t.Run("creator inquiry with platform", func(t *testing.T) {
		svc, mockApp := setupApplicationMocks(t)

		var stored *models.ContactSubmission
		mockApp.EXPECT().CreateContact(gomock.Any()).DoAndReturn(func(sub *models.ContactSubmission) error {
			stored = sub
			return nil
		})

		input := dto.ContactFormInput{
			ServiceType:   "creator",
			Name:          "Dana",
			Email:         "dana@example.com",
			Platform:      "instagram",
			SocialMediaID: "@dana",
		}
		msg, err := svc.SubmitContact("en", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg != "Creator application submitted successfully!" {
			t.Errorf("message = %q", msg)
		}
		if stored.Platform == nil || *stored.Platform != models.PlatformInstagram {
			t.Errorf("platform = %v", stored.Platform)
		}
	})

	t.Run("missing email rejected", func(t *testing.T) {
		svc, _ := setupApplicationMocks(t)

		input := dto.ContactFormInput{ServiceType: "brand", Name: "Dana"}
		_, err := svc.SubmitContact("en", input)
		if !errors.Is(err, services.ErrInvalidFields) {
			t.Fatalf("expected ErrInvalidFields, got %v", err)
		}
	})
}
