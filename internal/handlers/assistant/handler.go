package assistant

import (
	"net/http"

	"mykuliah/infras/otel"
	"mykuliah/internal/domains/assistant/model/dto"
	"mykuliah/internal/domains/assistant/service"
	"mykuliah/shared/constant"
	"mykuliah/shared/validator"
	"mykuliah/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Assistant
	otel    otel.Otel
}

func New(service service.Assistant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assistant", func(routerGroup chi.Router) {
		routerGroup.Post("/ask", handler.Ask)
	})
}

// Ask forwards a question to the room assistant.
// @Summary Ask the assistant
// @Description Answers questions about rooms. Upstream failures yield a fixed apology, never an error.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} response.Data[dto.AskResponse]
// @Failure 400 {object} response.Error
// @Router /v1/assistant/ask [post]
// @Security BearerAuth
func (handler *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Ask")
	defer scope.End()

	req := dto.AskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Ask(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
