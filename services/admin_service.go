package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomatoplanet/leads-go/models"
	"github.com/tomatoplanet/leads-go/repositories"
	"github.com/tomatoplanet/leads-go/response"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminService backs the read-only review surface. It never writes
// application rows; the pipeline is the only writer.
type AdminService struct {
	users repositories.AdminUserRepo
	apps  repositories.ApplicationRepo
}

func NewAdminService(repos *repositories.Repos) *AdminService {
	return &AdminService{users: repos.AdminUser, apps: repos.Application}
}

// Authenticate verifies a username/password pair and returns the account.
func (s *AdminService) Authenticate(username, password string) (models.AdminUser, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return models.AdminUser{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.AdminUser{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AdminService) ListBrandApplications() ([]models.BrandApplication, error) {
	return s.apps.ListBrand()
}

func (s *AdminService) ListCreatorApplications() ([]models.CreatorApplication, error) {
	return s.apps.ListCreator()
}

func (s *AdminService) ListContactSubmissions() ([]models.ContactSubmission, error) {
	return s.apps.ListContact()
}

// Stats reports totals plus the trailing 24h window ending at now.
func (s *AdminService) Stats(now time.Time) (response.StatsResponse, error) {
	var stats response.StatsResponse
	var err error

	if stats.BrandTotal, err = s.apps.CountBrand(time.Time{}); err != nil {
		return stats, err
	}
	if stats.CreatorTotal, err = s.apps.CountCreator(time.Time{}); err != nil {
		return stats, err
	}
	if stats.ContactTotal, err = s.apps.CountContact(time.Time{}); err != nil {
		return stats, err
	}

	since := now.Add(-24 * time.Hour)
	if stats.BrandLast24h, err = s.apps.CountBrand(since); err != nil {
		return stats, err
	}
	if stats.CreatorLast24h, err = s.apps.CountCreator(since); err != nil {
		return stats, err
	}
	if stats.ContactLast24h, err = s.apps.CountContact(since); err != nil {
		return stats, err
	}
	return stats, nil
}
