package router

import (
	"resort/internal/handlers/amenity"
	"resort/internal/handlers/auth"
	"resort/internal/handlers/cart"
	"resort/internal/handlers/health"
	"resort/internal/handlers/notification"
	"resort/internal/handlers/reservation"
	"resort/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Amenity      amenity.Handler
	Auth         auth.Handler
	Cart         cart.Handler
	Health       health.Handler
	Notification notification.Handler
	Reservation  reservation.Handler
	User         user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Amenity.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Cart.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
