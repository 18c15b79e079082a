package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"resort/infras/otel"
	"resort/internal/domains/notification/center"
	"resort/shared"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/transport/http/response"
)

type Handler struct {
	center center.Center
	otel   otel.Otel
}

func New(center center.Center, otel otel.Otel) Handler {
	return Handler{
		center: center,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Delete("/{id}", handler.DismissNotification)
		routerGroup.Delete("/", handler.DismissAll)
	})
}

// GetNotifications lists the caller's visible notifications.
// @Summary Get notifications
// @Description Retrieve the caller's visible notifications, newest first.
// @Tags Notification
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]model.Notification] "Visible notifications"
// @Failure 401 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	userID, ok := r.Context().Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	response.WithJSON(w, http.StatusOK, handler.center.List(userID))
}

// DismissNotification dismisses a single notification.
// @Summary Dismiss a notification
// @Description Dismiss one of the caller's notifications by its ID. Dismissing an unknown ID is a no-op.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path integer true "Notification ID"
// @Success 200 {object} response.Message "Notification dismissed"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/notifications/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DismissNotification")
	defer scope.End()

	userID, ok := r.Context().Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse notification ID")

		response.WithError(w, failure.BadRequestFromString("invalid notification ID"))

		return
	}

	handler.center.Dismiss(userID, int64(id))

	response.WithMessage(w, http.StatusOK, "Notification dismissed")
}

// DismissAll dismisses all of the caller's notifications.
// @Summary Dismiss all notifications
// @Description Dismiss every visible notification for the caller.
// @Tags Notification
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Notifications dismissed"
// @Failure 401 {object} response.Error
// @Router /v1/notifications [delete]
// @Security BearerAuth
func (handler *Handler) DismissAll(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DismissAll")
	defer scope.End()

	userID, ok := r.Context().Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	handler.center.DismissAll(userID)

	response.WithMessage(w, http.StatusOK, "Notifications dismissed")
}
