package repositories

import (
	"time"

	"github.com/tomatoplanet/leads-go/db"
	"github.com/tomatoplanet/leads-go/models"
)

// ApplicationRepo is the persistence sink for the submission pipeline:
// create-only for the pipeline itself, plus the read methods the admin
// surface and the digest job use.
type ApplicationRepo interface {
	CreateBrand(app *models.BrandApplication) error
	CreateCreator(app *models.CreatorApplication) error
	CreateContact(sub *models.ContactSubmission) error

	ListBrand() ([]models.BrandApplication, error)
	ListCreator() ([]models.CreatorApplication, error)
	ListContact() ([]models.ContactSubmission, error)

	// Count* return all rows for a zero since, rows created after it
	// otherwise.
	CountBrand(since time.Time) (int64, error)
	CountCreator(since time.Time) (int64, error)
	CountContact(since time.Time) (int64, error)
}

type DBApplicationRepo struct{}

func (r *DBApplicationRepo) CreateBrand(app *models.BrandApplication) error {
	return db.DB.Create(app).Error
}

func (r *DBApplicationRepo) CreateCreator(app *models.CreatorApplication) error {
	return db.DB.Create(app).Error
}

func (r *DBApplicationRepo) CreateContact(sub *models.ContactSubmission) error {
	return db.DB.Create(sub).Error
}

func (r *DBApplicationRepo) ListBrand() ([]models.BrandApplication, error) {
	var apps []models.BrandApplication
	err := db.DB.Order("created_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) ListCreator() ([]models.CreatorApplication, error) {
	var apps []models.CreatorApplication
	err := db.DB.Order("created_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) ListContact() ([]models.ContactSubmission, error) {
	var subs []models.ContactSubmission
	err := db.DB.Order("created_at desc").Find(&subs).Error
	return subs, err
}

func (r *DBApplicationRepo) CountBrand(since time.Time) (int64, error) {
	return countSince(&models.BrandApplication{}, since)
}

func (r *DBApplicationRepo) CountCreator(since time.Time) (int64, error) {
	return countSince(&models.CreatorApplication{}, since)
}

func (r *DBApplicationRepo) CountContact(since time.Time) (int64, error) {
	return countSince(&models.ContactSubmission{}, since)
}

func countSince(model interface{}, since time.Time) (int64, error) {
	var count int64
	query := db.DB.Model(model)
	if !since.IsZero() {
		query = query.Where("created_at > ?", since)
	}
	err := query.Count(&count).Error
	return count, err
}
