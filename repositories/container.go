package repositories

type Repos struct {
	Application ApplicationRepo
	AdminUser   AdminUserRepo
}

func New() *Repos {
	return &Repos{
		Application: &DBApplicationRepo{},
		AdminUser:   &DBAdminUserRepo{},
	}
}
