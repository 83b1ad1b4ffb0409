package catalog

import (
	"net/http"
	"railbook/infras/otel"
	"railbook/internal/domains/catalog/service"
	"railbook/shared/constant"
	"railbook/shared/validator"
	"railbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/stations", handler.GetStations)
	router.Get("/trains", handler.SearchTrains)
	router.Get("/trains/{id}/classes", handler.GetClasses)
}

// GetStations lists the station directory.
// @Summary List stations
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.StationsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/stations [get]
func (handler *Handler) GetStations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStations")
	defer scope.End()

	stations, err := handler.service.Stations(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stations)
}

// SearchTrains finds trains between two stations.
// @Summary Search trains
// @Description Either side accepts a station code, city or name.
// @Tags Catalog
// @Produce json
// @Param from query string true "Origin"
// @Param to query string true "Destination"
// @Success 200 {object} response.Data[dto.TrainsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trains [get]
func (handler *Handler) SearchTrains(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchTrains")
	defer scope.End()

	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)

	trains, err := handler.service.SearchTrains(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("from", from).Str("to", to).Msg("failed to search trains")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, trains)
}

// GetClasses lists the classes of a train for one journey date with availability and crowd assessment.
// @Summary Train classes
// @Tags Catalog
// @Produce json
// @Param id path string true "Train ID"
// @Param date query string true "Journey date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ClassesResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trains/{id}/classes [get]
func (handler *Handler) GetClasses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClasses")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	if err := validator.ValidateVar(date, "required,journeydate"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	classes, err := handler.service.Classes(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("train_id", id).Msg("failed to get train classes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, classes)
}
