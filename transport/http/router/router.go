package router

import (
	"hms/internal/handlers/audit"
	"hms/internal/handlers/auth"
	"hms/internal/handlers/availability"
	"hms/internal/handlers/booking"
	"hms/internal/handlers/folio"
	"hms/internal/handlers/guest"
	"hms/internal/handlers/payment"
	"hms/internal/handlers/report"
	"hms/internal/handlers/room"
	"hms/internal/handlers/roomtype"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Audit        audit.Handler
	Auth         auth.Handler
	Availability availability.Handler
	Booking      booking.Handler
	Folio        folio.Handler
	Guest        guest.Handler
	Payment      payment.Handler
	Report       report.Handler
	Room         room.Handler
	RoomType     roomtype.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Folio.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
