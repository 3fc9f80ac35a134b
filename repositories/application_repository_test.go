package repositories_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tomatoplanet/leads-go/db"
	"github.com/tomatoplanet/leads-go/models"
	"github.com/tomatoplanet/leads-go/repositories"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	db.InitWithGormDB(gormDB)
	return mock
}

func TestCreateBrand(t *testing.T) {
	mock := setupMockDB(t)
	repo := &repositories.DBApplicationRepo{}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "brand_applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	app := &models.BrandApplication{
		Reference:      "3f8a1c2e-0000-4000-8000-000000000001",
		BrandName:      "Glow",
		Industry:       models.IndustryBeauty,
		CompanySize:    models.CompanySizeSmall,
		ContactChannel: models.ContactChannelEmail,
		Email:          "hello@glow.example",
	}
	if err := repo.CreateBrand(app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.ID != 1 {
		t.Errorf("id = %d", app.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateCreator(t *testing.T) {
	mock := setupMockDB(t)
	repo := &repositories.DBApplicationRepo{}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "creator_applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	app := &models.CreatorApplication{
		Reference:      "3f8a1c2e-0000-4000-8000-000000000002",
		Platform:       models.PlatformTikTok,
		SocialMediaID:  "@dana",
		ContactChannel: models.ContactChannelEmail,
	}
	if err := repo.CreateCreator(app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateContact(t *testing.T) {
	mock := setupMockDB(t)
	repo := &repositories.DBApplicationRepo{}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contact_submissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	sub := &models.ContactSubmission{
		Reference:   "3f8a1c2e-0000-4000-8000-000000000003",
		ServiceType: models.ServiceTypeBrand,
		Name:        "Dana",
		Email:       "dana@example.com",
	}
	if err := repo.CreateContact(sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListBrandOrdersNewestFirst(t *testing.T) {
	mock := setupMockDB(t)
	repo := &repositories.DBApplicationRepo{}

	mock.ExpectQuery(`SELECT \* FROM "brand_applications".*ORDER BY created_at desc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "brand_name"}).
			AddRow(2, "Newest").
			AddRow(1, "Oldest"))

	apps, err := repo.ListBrand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 2 || apps[0].BrandName != "Newest" {
		t.Errorf("apps = %v", apps)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCountSince(t *testing.T) {
	mock := setupMockDB(t)
	repo := &repositories.DBApplicationRepo{}

	t.Run("zero time counts everything", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "creator_applications"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		count, err := repo.CountCreator(time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 42 {
			t.Errorf("count = %d", count)
		}
	})

	t.Run("windowed count filters on created_at", func(t *testing.T) {
		since := time.Now().Add(-24 * time.Hour)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "creator_applications".*created_at`).
			WithArgs(since).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		count, err := repo.CountCreator(since)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 5 {
			t.Errorf("count = %d", count)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
