package attempt

import (
	"net/http"
	"railbook/infras/otel"
	"railbook/internal/domains/workflow/model/dto"
	"railbook/internal/domains/workflow/service"
	"railbook/shared/constant"
	"railbook/shared/validator"
	"railbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Workflow
	otel    otel.Otel
}

func New(service service.Workflow, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/attempts", handler.StartAttempt)
	router.Get("/attempts/{id}", handler.GetAttempt)
	router.Delete("/attempts/{id}", handler.AbandonAttempt)
	router.Put("/attempts/{id}/passengers", handler.SubmitPassengers)
	router.Get("/attempts/{id}/seats", handler.GetSeats)
	router.Post("/attempts/{id}/seats/confirm", handler.ConfirmSeats)
	router.Post("/attempts/{id}/seats/{seat}/toggle", handler.ToggleSeat)
	router.Post("/attempts/{id}/payment", handler.Pay)
}

// StartAttempt opens a booking attempt for a train class on a journey date.
// @Summary Start a booking attempt
// @Tags Attempt
// @Accept json
// @Produce json
// @Param request body dto.StartAttemptRequest true "Class selection"
// @Success 201 {object} response.Data[dto.AttemptResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/attempts [post]
// @Security BearerAuth
func (handler *Handler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartAttempt")
	defer scope.End()

	req := dto.StartAttemptRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	attempt, err := handler.service.Start(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start booking attempt")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking attempt " + attempt.ID + " started")

	response.WithJSON(w, http.StatusCreated, attempt)
}

// GetAttempt returns the caller's booking attempt.
// @Summary Get a booking attempt
// @Tags Attempt
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} response.Data[dto.AttemptResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/attempts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAttempt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	attempt, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("attempt_id", id).Msg("failed to get booking attempt")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, attempt)
}

// SubmitPassengers replaces the passenger list and moves the attempt to seat selection.
// @Summary Submit passengers
// @Tags Attempt
// @Accept json
// @Produce json
// @Param id path string true "Attempt ID"
// @Param request body dto.SubmitPassengersRequest true "Passengers"
// @Success 200 {object} response.Data[dto.AttemptResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/attempts/{id}/passengers [put]
// @Security BearerAuth
func (handler *Handler) SubmitPassengers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitPassengers")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.SubmitPassengersRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	attempt, err := handler.service.SubmitPassengers(ctx, id, req.ToModels())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("attempt_id", id).Msg("failed to submit passengers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, attempt)
}

// GetSeats returns the coach layout with the attempt's current selection.
// @Summary Seat layout
// @Tags Attempt
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} response.Data[seatDto.LayoutResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/attempts/{id}/seats [get]
// @Security BearerAuth
func (handler *Handler) GetSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeats")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	layout, err := handler.service.Seats(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("attempt_id", id).Msg("failed to get seat layout")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, layout)
}

// ToggleSeat selects or deselects one seat.
// @Summary Toggle a seat
// @Description Booked seats and selections past the passenger count are ignored.
// @Tags Attempt
// @Produce json
// @Param id path string true "Attempt ID"
// @Param seat path string true "Seat number"
// @Success 200 {object} response.Data[seatDto.LayoutResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/attempts/{id}/seats/{seat}/toggle [post]
// @Security BearerAuth
func (handler *Handler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleSeat")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	seat := chi.URLParam(r, constant.RequestParamSeatNumber)

	layout, err := handler.service.ToggleSeat(ctx, id, seat)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("attempt_id", id).Str("seat", seat).Msg("failed to toggle seat")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, layout)
}

// ConfirmSeats holds the selected seats and snapshots the fare.
// @Summary Confirm seat selection
// @Tags Attempt
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} response.Data[dto.AttemptResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/attempts/{id}/seats/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmSeats")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	attempt, err := handler.service.ConfirmSeats(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("attempt_id", id).Msg("failed to confirm seats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, attempt)
}

// Pay charges the quoted fare and commits the booking.
// @Summary Pay for an attempt
// @Tags Attempt
// @Accept json
// @Produce json
// @Param id path string true "Attempt ID"
// @Param request body dto.PayRequest true "Payment details"
// @Success 201 {object} response.Data[dto.ConfirmationResponse]
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/attempts/{id}/payment [post]
// @Security BearerAuth
func (handler *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Pay")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.PayRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	confirmation, err := handler.service.Pay(ctx, id, req.ToModel())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("attempt_id", id).Msg("failed to pay for booking attempt")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + confirmation.Booking.PNR + " confirmed")

	response.WithJSON(w, http.StatusCreated, confirmation)
}

// AbandonAttempt cancels the attempt and releases its seat holds.
// @Summary Abandon a booking attempt
// @Tags Attempt
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} response.Data[dto.AttemptResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/attempts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) AbandonAttempt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AbandonAttempt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	attempt, err := handler.service.Abandon(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("attempt_id", id).Msg("failed to abandon booking attempt")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, attempt)
}
