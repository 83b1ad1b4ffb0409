package assessment

import (
	"net/http"
	"railbook/infras/otel"
	"railbook/internal/domains/crowd/model/dto"
	"railbook/internal/domains/crowd/service"
	"railbook/shared/constant"
	"railbook/shared/validator"
	"railbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Crowd
	otel    otel.Otel
}

func New(service service.Crowd, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/assessments", handler.Assess)
}

// Assess scores an ad-hoc fare class and schedule.
// @Summary Crowd assessment
// @Tags Assessment
// @Accept json
// @Produce json
// @Param request body dto.AssessRequest true "Fare class and schedule"
// @Success 200 {object} response.Data[dto.AssessmentResponse]
// @Failure 400 {object} response.Error
// @Router /v1/assessments [post]
func (handler *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Assess")
	defer scope.End()

	req := dto.AssessRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res := dto.AssessmentResponse{}
	res.FromModel(handler.service.Assess(req.FareClass(), req.DepartureTime, req.JourneyDate))

	scope.SetAttributes(map[string]any{
		"crowd.level": res.Level,
		"crowd.score": res.CrowdScore,
	})

	response.WithJSON(w, http.StatusOK, res)
}
