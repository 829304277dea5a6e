package http

import (
	"github.com/gin-gonic/gin"

	"ciblsport-api/internal/event"
	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
	"ciblsport-api/pkg/scope"
)

// List returns events matching the optional filters, sorted by start time.
// @Summary List events
// @Description Returns events filtered by status, venue, type or sport, in chronological order
// @Tags Event
// @Produce json
// @Param status query string false "Event status"
// @Param venue query string false "Venue name"
// @Param type query string false "Event type"
// @Param sport query string false "Sport"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} listEventResp
// @Router /events [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q listEventQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.l.Warnf(ctx, "internal.event.delivery.http.List.ShouldBindQuery: %v", err)
		response.Error(c, pkgErrors.NewValidationError("query", "Invalid query parameters"), nil)
		return
	}

	out, err := h.uc.List(ctx, scope.GetScopeFromContext(ctx), q.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListEventResp(out))
}

// Detail returns one event by id.
// @Summary Event detail
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} response.ErrResp
// @Router /events/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	evt, err := h.uc.Detail(ctx, scope.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, evt)
}

// Create schedules a new event.
// @Summary Create event
// @Tags Event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createEventReq true "Event"
// @Success 201 {object} eventResp
// @Failure 400 {object} response.ErrResp
// @Router /events [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.event.delivery.http.Create.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError("body", "Invalid request body"), nil)
		return
	}
	if f := req.firstMissingField(); f != "" {
		response.Error(c, pkgErrors.NewRequiredFieldError(f), nil)
		return
	}

	evt, err := h.uc.Create(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.Created(c, eventResp{Event: evt})
}

// UpdateStatus moves an event to a new lifecycle status. Completing an
// event fans a completion notice out to the notification feed.
// @Summary Update event status
// @Tags Event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body updateStatusReq true "Status"
// @Success 200 {object} model.Event
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Router /events/{id}/status [PATCH]
func (h *Handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.event.delivery.http.UpdateStatus.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewRequiredFieldError("status"), nil)
		return
	}
	if req.Status == "" {
		response.Error(c, pkgErrors.NewRequiredFieldError("status"), nil)
		return
	}

	evt, err := h.uc.UpdateStatus(ctx, scope.GetScopeFromContext(ctx), event.UpdateStatusInput{
		ID:     c.Param("id"),
		Status: req.Status,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, evt)
}
