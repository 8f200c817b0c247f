package v1

import (
	"net/http"

	"go-acoustics-backend/internal/delivery/http/response"
	"go-acoustics-backend/pkg/notify"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	store *notify.Store
}

// NewNotificationHandler registers the operator notification routes.
func NewNotificationHandler(group *gin.RouterGroup, store *notify.Store) {
	handler := &NotificationHandler{
		store: store,
	}

	group.GET("/admin/notifications", handler.ListNotifications)
}

// ListNotifications godoc
// @Summary      List Operator Notifications
// @Description  Returns the recent operator-facing events (skipped or failed contact side effects), newest last.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]notify.Event}
// @Router       /admin/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	response.Success(c, http.StatusOK, "Notifications retrieved", h.store.Snapshot())
}
