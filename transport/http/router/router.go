package router

import (
	"voyago/internal/handlers/booking"
	"voyago/internal/handlers/draft"
	"voyago/internal/handlers/pricing"
	"voyago/internal/handlers/verification"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Draft        draft.Handler
	Booking      booking.Handler
	Pricing      pricing.Handler
	Verification verification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Draft.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Verification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
