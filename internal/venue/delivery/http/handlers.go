package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"ciblsport-api/internal/model"
	"ciblsport-api/pkg/response"
	"ciblsport-api/pkg/scope"
)

type venuesResp struct {
	Venues []model.Venue `json:"venues"`
}

type mapURLResp struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// List returns every venue.
// @Summary List venues
// @Tags Venue
// @Produce json
// @Success 200 {object} venuesResp
// @Router /venues [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	venues, err := h.uc.List(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, venuesResp{Venues: venues})
}

// Detail returns one venue by id.
// @Summary Venue detail
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} model.Venue
// @Failure 404 {object} response.ErrResp
// @Router /venues/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	v, err := h.uc.Detail(ctx, scope.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, v)
}

// MapURL returns a short-lived download link for the venue map.
// @Summary Venue map URL
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} mapURLResp
// @Failure 404 {object} response.ErrResp
// @Router /venues/{id}/map [GET]
func (h *Handler) MapURL(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.MapURL(ctx, scope.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, mapURLResp{URL: out.URL, ExpiresAt: out.ExpiresAt})
}
