package services

import "github.com/tomatoplanet/leads-go/repositories"

type Services struct {
	Application *ApplicationService
	Admin       *AdminService
	Digest      *DigestService
	Feed        *Feed
}

func New(repos *repositories.Repos, notifier Notifier) *Services {
	feed := NewFeed()
	return &Services{
		Application: NewApplicationService(repos, notifier, feed),
		Admin:       NewAdminService(repos),
		Digest:      NewDigestService(repos, notifier),
		Feed:        feed,
	}
}
