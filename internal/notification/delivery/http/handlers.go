package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
	"ciblsport-api/pkg/scope"
)

// List returns the notification feed, newest first, with the unread count.
// @Summary List notifications
// @Tags Notification
// @Produce json
// @Security BearerAuth
// @Param type query string false "Notification type"
// @Param unreadOnly query bool false "Unread only"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} listNotificationResp
// @Router /notifications [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q listNotificationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.List.ShouldBindQuery: %v", err)
		response.Error(c, pkgErrors.NewValidationError("query", "Invalid query parameters"), nil)
		return
	}

	out, err := h.uc.List(ctx, scope.GetScopeFromContext(ctx), q.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListNotificationResp(out))
}

// MarkAsRead marks one notification as read. Marking twice is a no-op.
// @Summary Mark notification read
// @Tags Notification
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} response.ErrResp
// @Router /notifications/{id}/read [POST]
func (h *Handler) MarkAsRead(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.MarkAsRead(ctx, scope.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// MarkAllAsRead marks the whole feed as read.
// @Summary Mark all notifications read
// @Tags Notification
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Router /notifications/read-all [POST]
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.MarkAllAsRead(ctx, scope.GetScopeFromContext(ctx)); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// Remove deletes one notification from the feed.
// @Summary Remove notification
// @Tags Notification
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} response.ErrResp
// @Router /notifications/{id} [DELETE]
func (h *Handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Remove(ctx, scope.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// ClearAll empties the notification feed.
// @Summary Clear notifications
// @Tags Notification
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Router /notifications [DELETE]
func (h *Handler) ClearAll(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearAll(ctx, scope.GetScopeFromContext(ctx)); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// GetPreferences returns the active preference set.
// @Summary Get notification preferences
// @Tags Notification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Preferences
// @Router /notifications/preferences [GET]
func (h *Handler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	prefs, err := h.uc.GetPreferences(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, prefs)
}

// UpdatePreferences merges the supplied fields into the preference set;
// fields absent from the body are left unchanged.
// @Summary Update notification preferences
// @Tags Notification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body preferencesReq true "Preferences"
// @Success 200 {object} model.Preferences
// @Failure 400 {object} response.ErrResp
// @Router /notifications/preferences [PUT]
func (h *Handler) UpdatePreferences(c *gin.Context) {
	ctx := c.Request.Context()

	var req preferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.UpdatePreferences.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError("body", "Invalid request body"), nil)
		return
	}

	prefs, err := h.uc.UpdatePreferences(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, prefs)
}
