package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/service"
)

type SessionHandler struct {
	svc *service.SessionService
}

func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) User(c *gin.Context) {
	p, err := h.svc.Profile(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *SessionHandler) Notifications(c *gin.Context) {
	n, err := h.svc.Notifications(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *SessionHandler) Banner(c *gin.Context) {
	b, err := h.svc.Banner(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}
