package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thermostat_dashboard/internal/service"
)

// AdjustRequest moves the target temperature by delta degrees.
type AdjustRequest struct {
	Delta int `json:"delta" binding:"required,min=-30,max=30" example:"1"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// currentDashboard answers 409 when nobody is logged in.
func (h *Handler) currentDashboard(c *gin.Context) (service.DashboardView, bool) {
	d, err := h.services.Dashboards.Current()
	if err != nil {
		h.respondError(c, "dashboard_missing", err)
		return nil, false
	}
	return d, true
}

// @Summary      Get displayed state
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DisplayedSystemState
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/dashboard/state [get]
// @Security     BearerAuth
func (h *Handler) getDashboardState(c *gin.Context) {
	d, ok := h.currentDashboard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, d.State())
}

// @Summary      Adjust target temperature
// @Description  Applied optimistically and sent to the backend after a quiet period. The result is clamped to the allowed range.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      AdjustRequest  true  "Delta"
// @Success      200   {object}  models.DisplayedSystemState
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/dashboard/adjust [post]
// @Security     BearerAuth
func (h *Handler) adjustTarget(c *gin.Context) {
	var req AdjustRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	d, ok := h.currentDashboard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, d.Adjust(req.Delta))
}

// @Summary      Apply a profile
// @Tags         dashboard
// @Produce      json
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  models.DisplayedSystemState
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/dashboard/profiles/{id}/apply [post]
// @Security     BearerAuth
func (h *Handler) applyProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, ok := h.currentDashboard(c)
	if !ok {
		return
	}
	st, err := d.ApplyProfile(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "dashboard_apply_profile_failed", err, "profile_id", id)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Refresh now
// @Description  Runs one refresh cycle, including due schedules, without waiting for the next tick.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DisplayedSystemState
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/dashboard/refresh [post]
// @Security     BearerAuth
func (h *Handler) refreshDashboard(c *gin.Context) {
	d, ok := h.currentDashboard(c)
	if !ok {
		return
	}
	if err := d.Refresh(c.Request.Context()); err != nil {
		h.respondError(c, "dashboard_refresh_failed", err, "role", d.Role())
		return
	}
	c.JSON(http.StatusOK, d.State())
}
