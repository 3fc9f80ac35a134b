package handlers

import "github.com/tomatoplanet/leads-go/services"

type Handlers struct {
	Application *ApplicationHandler
	Schema      *SchemaHandler
	Admin       *AdminHandler
	Feed        *FeedHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Application: NewApplicationHandler(svc.Application),
		Schema:      NewSchemaHandler(),
		Admin:       NewAdminHandler(svc.Admin),
		Feed:        NewFeedHandler(svc.Feed),
	}
}
