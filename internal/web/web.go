package web

import (
	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/rogold/internal/config"
	"github.com/sidereusnuntius/rogold/internal/db"
	"github.com/sidereusnuntius/rogold/internal/service"
)

const (
	LoginRoute  = "/login"
	SignUpRoute = "/signup"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	games          db.DB
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, games db.DB, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		games:          games,
		SessionManager: manager,
	}
}
