package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
	"ciblsport-api/pkg/scope"
)

// GetEventResults returns the results of one event, sorted by position.
// @Summary Event results
// @Description Returns results for the given event in finishing order
// @Tags Result
// @Produce json
// @Param eventId query string true "Event ID"
// @Success 200 {object} resultsResp
// @Failure 400 {object} response.ErrResp
// @Router /results [GET]
func (h *Handler) GetEventResults(c *gin.Context) {
	ctx := c.Request.Context()

	eventID := c.Query("eventId")
	if eventID == "" {
		response.Error(c, pkgErrors.NewRequiredFieldError("eventId"), nil)
		return
	}

	results, err := h.uc.GetEventResults(ctx, scope.GetScopeFromContext(ctx), eventID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, resultsResp{Results: results})
}

// GetAthleteResults returns every recorded result for one athlete.
// @Summary Athlete results
// @Tags Result
// @Produce json
// @Param athleteId path string true "Athlete ID"
// @Success 200 {object} resultsResp
// @Router /results/athlete/{athleteId} [GET]
func (h *Handler) GetAthleteResults(c *gin.Context) {
	ctx := c.Request.Context()

	results, err := h.uc.GetAthleteResults(ctx, scope.GetScopeFromContext(ctx), c.Param("athleteId"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, resultsResp{Results: results})
}

// AddResult records a finisher's result. Position zero is accepted, it
// marks entries that never finished (DNS/DNF style placeholders).
// @Summary Record result
// @Tags Result
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body addResultReq true "Result"
// @Success 201 {object} resultResp
// @Failure 400 {object} response.ErrResp
// @Router /results [POST]
func (h *Handler) AddResult(c *gin.Context) {
	ctx := c.Request.Context()

	var req addResultReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.result.delivery.http.AddResult.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError("body", "Invalid request body"), nil)
		return
	}
	if req.EventID == "" {
		response.Error(c, pkgErrors.NewRequiredFieldError("eventId"), nil)
		return
	}
	if req.AthleteName == "" {
		response.Error(c, pkgErrors.NewRequiredFieldError("athleteName"), nil)
		return
	}

	res, err := h.uc.AddResult(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.Created(c, resultResp{Result: res})
}

// UpdateResult applies a partial update to a recorded result.
// @Summary Update result
// @Tags Result
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Result ID"
// @Param body body updateResultReq true "Fields to update"
// @Success 200 {object} model.Result
// @Failure 404 {object} response.ErrResp
// @Router /results/{id} [PATCH]
func (h *Handler) UpdateResult(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateResultReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.result.delivery.http.UpdateResult.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError("body", "Invalid request body"), nil)
		return
	}

	res, err := h.uc.UpdateResult(ctx, scope.GetScopeFromContext(ctx), req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, res)
}

// DeleteResult removes a recorded result.
// @Summary Delete result
// @Tags Result
// @Security BearerAuth
// @Param id path string true "Result ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} response.ErrResp
// @Router /results/{id} [DELETE]
func (h *Handler) DeleteResult(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteResult(ctx, scope.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, gin.H{"success": true})
}
