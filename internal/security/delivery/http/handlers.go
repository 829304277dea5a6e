package http

import (
	"github.com/gin-gonic/gin"

	"ciblsport-api/internal/security"
	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
	"ciblsport-api/pkg/scope"
)

// ListIncidents returns incidents matching the optional filters, newest first.
// @Summary List incidents
// @Tags Security
// @Produce json
// @Param status query string false "Incident status"
// @Param severity query string false "Severity"
// @Param type query string false "Incident type"
// @Param venue query string false "Venue"
// @Success 200 {object} incidentsResp
// @Router /incidents [GET]
func (h *Handler) ListIncidents(c *gin.Context) {
	ctx := c.Request.Context()

	var q listIncidentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.l.Warnf(ctx, "internal.security.delivery.http.ListIncidents.ShouldBindQuery: %v", err)
		response.Error(c, pkgErrors.NewValidationError("query", "Invalid query parameters"), nil)
		return
	}

	incidents, err := h.uc.ListIncidents(ctx, scope.GetScopeFromContext(ctx), q.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, incidentsResp{Incidents: incidents})
}

// DetailIncident returns one incident by id.
// @Summary Incident detail
// @Tags Security
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} model.Incident
// @Failure 404 {object} response.ErrResp
// @Router /incidents/{id} [GET]
func (h *Handler) DetailIncident(c *gin.Context) {
	ctx := c.Request.Context()

	inc, err := h.uc.DetailIncident(ctx, scope.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, inc)
}

// AddIncident reports a new incident. High and critical severities also
// raise a venue alert.
// @Summary Report incident
// @Tags Security
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body addIncidentReq true "Incident"
// @Success 201 {object} incidentResp
// @Failure 400 {object} response.ErrResp
// @Router /incidents [POST]
func (h *Handler) AddIncident(c *gin.Context) {
	ctx := c.Request.Context()

	var req addIncidentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.security.delivery.http.AddIncident.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError("body", "Invalid request body"), nil)
		return
	}
	if f := req.firstMissingField(); f != "" {
		response.Error(c, pkgErrors.NewRequiredFieldError(f), nil)
		return
	}

	inc, err := h.uc.AddIncident(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.Created(c, incidentResp{Incident: inc})
}

// UpdateIncident applies a partial update to an incident.
// @Summary Update incident
// @Tags Security
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param body body updateIncidentReq true "Fields to update"
// @Success 200 {object} model.Incident
// @Failure 404 {object} response.ErrResp
// @Router /incidents/{id} [PATCH]
func (h *Handler) UpdateIncident(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateIncidentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.security.delivery.http.UpdateIncident.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError("body", "Invalid request body"), nil)
		return
	}

	inc, err := h.uc.UpdateIncident(ctx, scope.GetScopeFromContext(ctx), req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, inc)
}

// AddIncidentUpdate appends a progress note to an incident.
// @Summary Add incident update
// @Tags Security
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param body body addIncidentUpdateReq true "Update"
// @Success 200 {object} model.Incident
// @Failure 404 {object} response.ErrResp
// @Router /incidents/{id}/updates [POST]
func (h *Handler) AddIncidentUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	var req addIncidentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.security.delivery.http.AddIncidentUpdate.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewRequiredFieldError("message"), nil)
		return
	}

	inc, err := h.uc.AddIncidentUpdate(ctx, scope.GetScopeFromContext(ctx), security.AddIncidentUpdateInput{
		IncidentID: c.Param("id"),
		Message:    req.Message,
		Author:     req.Author,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, inc)
}

// GetActiveAlerts returns all active, unexpired alerts, newest first.
// @Summary Active alerts
// @Tags Security
// @Produce json
// @Success 200 {object} alertsResp
// @Router /alerts [GET]
func (h *Handler) GetActiveAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	alerts, err := h.uc.GetActiveAlerts(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, alertsResp{Alerts: alerts})
}

// CreateAlert publishes a venue alert.
// @Summary Create alert
// @Tags Security
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createAlertReq true "Alert"
// @Success 201 {object} alertResp
// @Failure 400 {object} response.ErrResp
// @Router /alerts [POST]
func (h *Handler) CreateAlert(c *gin.Context) {
	ctx := c.Request.Context()

	var req createAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.security.delivery.http.CreateAlert.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError("body", "Invalid request body"), nil)
		return
	}

	alert, err := h.uc.CreateAlert(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.Created(c, alertResp{Alert: alert})
}

// DismissAlert deactivates an alert. Dismissal is idempotent.
// @Summary Dismiss alert
// @Tags Security
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} response.ErrResp
// @Router /alerts/{id} [DELETE]
func (h *Handler) DismissAlert(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DismissAlert(ctx, scope.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, gin.H{"success": true})
}
