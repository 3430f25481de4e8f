package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thermostat_dashboard/internal/service"
)

// @Summary      List diagnostic logs
// @Tags         diagnostics
// @Produce      json
// @Success      200  {array}   models.DiagnosticLog
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/diagnostics [get]
// @Security     BearerAuth
func (h *Handler) listDiagnostics(c *gin.Context) {
	logs, err := h.services.Diagnostics.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "diagnostics_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// @Summary      Record a diagnostic
// @Tags         diagnostics
// @Accept       json
// @Produce      json
// @Param        body  body      service.DiagnosticInput  true  "Level (INFO, WARN, ERROR) and message"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/diagnostics [post]
// @Security     BearerAuth
func (h *Handler) createDiagnostic(c *gin.Context) {
	var in service.DiagnosticInput
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	id, err := h.services.Diagnostics.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, "diagnostic_create_failed", err, "level", in.Level)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
