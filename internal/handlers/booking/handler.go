package booking

import (
	"net/http"
	"railbook/infras/otel"
	"railbook/internal/domains/booking/service"
	"railbook/shared/constant"
	gDto "railbook/shared/dto"
	"railbook/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/bookings", handler.GetBookings)
	router.Get("/bookings/mine", handler.GetMyBookings)
	router.Get("/bookings/{pnr}", handler.GetBooking)
	router.Post("/bookings/{pnr}/cancel", handler.CancelBooking)
}

// GetBookings lists the ledger in insertion order.
// @Summary List all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.ListAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyBookings lists the caller's bookings, newest first.
// @Summary My bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	bookings, err := handler.service.ListMine(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBooking looks a booking up by PNR.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param pnr path string true "PNR"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{pnr} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	pnr := strings.ToUpper(chi.URLParam(r, constant.RequestParamPNR))

	booking, err := handler.service.Get(ctx, pnr)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a confirmed booking and returns its seats to the coach.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param pnr path string true "PNR"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{pnr}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	pnr := strings.ToUpper(chi.URLParam(r, constant.RequestParamPNR))

	booking, err := handler.service.Cancel(ctx, pnr)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + pnr + " cancelled by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}
