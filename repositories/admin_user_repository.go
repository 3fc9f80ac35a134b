package repositories

import (
	"github.com/tomatoplanet/leads-go/db"
	"github.com/tomatoplanet/leads-go/models"
)

type AdminUserRepo interface {
	FindByUsername(username string) (models.AdminUser, error)
}

type DBAdminUserRepo struct{}

func (r *DBAdminUserRepo) FindByUsername(username string) (models.AdminUser, error) {
	var user models.AdminUser
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}
