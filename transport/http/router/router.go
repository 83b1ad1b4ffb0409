package router

import (
	"railbook/internal/handlers/assessment"
	"railbook/internal/handlers/attempt"
	"railbook/internal/handlers/booking"
	"railbook/internal/handlers/catalog"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog    catalog.Handler
	Assessment assessment.Handler
	Attempt    attempt.Handler
	Booking    booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Assessment.Router(routerGroup)
		r.DomainHandlers.Attempt.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
