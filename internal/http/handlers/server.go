package handlers

import (
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/alerts"
	"github.com/rogerio-castellano/inventario-api/internal/auth"
	"github.com/rogerio-castellano/inventario-api/internal/http/ban"
	"github.com/rogerio-castellano/inventario-api/internal/repo"
	"github.com/rogerio-castellano/inventario-api/internal/settings"
)

// Deps are the stores and services the handlers run on. Bans may be nil, in
// which case failed logins are never throttled.
type Deps struct {
	Products repo.ProductRepository
	Contacts repo.ContactRepository
	Settings *settings.Service
	Alerts   *alerts.Service
	Auth     *auth.AuthService
	Bans     ban.Store
	Now      func() time.Time
}

type Handler struct {
	products repo.ProductRepository
	contacts repo.ContactRepository
	settings *settings.Service
	alerts   *alerts.Service
	auth     *auth.AuthService
	bans     ban.Store
	now      func() time.Time
}

func New(d Deps) *Handler {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		products: d.Products,
		contacts: d.Contacts,
		settings: d.Settings,
		alerts:   d.Alerts,
		auth:     d.Auth,
		bans:     d.Bans,
		now:      func() time.Time { return now().UTC() },
	}
}
