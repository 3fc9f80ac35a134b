package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomatoplanet/leads-go/models"
	"github.com/tomatoplanet/leads-go/repositories"
	"github.com/tomatoplanet/leads-go/repositories/mock_repositories"
	"github.com/tomatoplanet/leads-go/services"
)

func setupAdminMocks(t *testing.T) (*services.AdminService,
	*mock_repositories.MockAdminUserRepo,
	*mock_repositories.MockApplicationRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUsers := mock_repositories.NewMockAdminUserRepo(ctrl)
	mockApps := mock_repositories.NewMockApplicationRepo(ctrl)

	repos := &repositories.Repos{
		Application: mockApps,
		AdminUser:   mockUsers,
	}
	return services.NewAdminService(repos), mockUsers, mockApps
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	account := models.AdminUser{Username: "admin", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		svc, mockUsers, _ := setupAdminMocks(t)
		mockUsers.EXPECT().FindByUsername("admin").Return(account, nil)

		user, err := svc.Authenticate("admin", "hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "admin" {
			t.Errorf("username = %q", user.Username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockUsers, _ := setupAdminMocks(t)
		mockUsers.EXPECT().FindByUsername("admin").Return(account, nil)

		_, err := svc.Authenticate("admin", "wrong")
		if !errors.Is(err, services.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, mockUsers, _ := setupAdminMocks(t)
		mockUsers.EXPECT().FindByUsername("ghost").Return(models.AdminUser{}, errors.New("not found"))

		_, err := svc.Authenticate("ghost", "hunter2")
		if !errors.Is(err, services.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestListApplications(t *testing.T) {
	svc, _, mockApps := setupAdminMocks(t)

	mockApps.EXPECT().ListBrand().Return([]models.BrandApplication{{BrandName: "Glow"}}, nil)
	brands, err := svc.ListBrandApplications()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(brands) != 1 || brands[0].BrandName != "Glow" {
		t.Errorf("brands = %v", brands)
	}

	mockApps.EXPECT().ListCreator().Return([]models.CreatorApplication{{SocialMediaID: "@dana"}}, nil)
	creators, err := svc.ListCreatorApplications()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(creators) != 1 {
		t.Errorf("creators = %v", creators)
	}

	mockApps.EXPECT().ListContact().Return(nil, errors.New("db down"))
	if _, err := svc.ListContactSubmissions(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestStats(t *testing.T) {
	svc, _, mockApps := setupAdminMocks(t)

	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	since := now.Add(-24 * time.Hour)

	mockApps.EXPECT().CountBrand(time.Time{}).Return(int64(10), nil)
	mockApps.EXPECT().CountCreator(time.Time{}).Return(int64(20), nil)
	mockApps.EXPECT().CountContact(time.Time{}).Return(int64(30), nil)
	mockApps.EXPECT().CountBrand(since).Return(int64(1), nil)
	mockApps.EXPECT().CountCreator(since).Return(int64(2), nil)
	mockApps.EXPECT().CountContact(since).Return(int64(3), nil)

	stats, err := svc.Stats(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.BrandTotal != 10 || stats.CreatorTotal != 20 || stats.ContactTotal != 30 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.BrandLast24h != 1 || stats.CreatorLast24h != 2 || stats.ContactLast24h != 3 {
		t.Errorf("24h window = %+v", stats)
	}
}
