package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thermostat_dashboard/internal/service"
)

// @Summary      List guests
// @Tags         access
// @Produce      json
// @Success      200  {array}   models.Guest
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/guests [get]
// @Security     BearerAuth
func (h *Handler) listGuests(c *gin.Context) {
	guests, err := h.services.Access.ListGuests(c.Request.Context())
	if err != nil {
		h.respondError(c, "guests_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// @Summary      Create guest
// @Tags         access
// @Accept       json
// @Produce      json
// @Param        body  body      service.GuestInput  true  "Guest"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/guests [post]
// @Security     BearerAuth
func (h *Handler) createGuest(c *gin.Context) {
	var in service.GuestInput
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	id, err := h.services.Access.CreateGuest(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, "guest_create_failed", err, "username", in.Username)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Delete guest
// @Tags         access
// @Param        id   path      int  true  "Guest ID"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/guests/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Access.DeleteGuest(c.Request.Context(), id); err != nil {
		h.respondError(c, "guest_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}

// @Summary      List technicians
// @Tags         access
// @Produce      json
// @Success      200  {array}   models.Technician
// @Router       /api/v1/technicians [get]
// @Security     BearerAuth
func (h *Handler) listTechnicians(c *gin.Context) {
	techs, err := h.services.Access.ListTechnicians(c.Request.Context())
	if err != nil {
		h.respondError(c, "technicians_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, techs)
}

// @Summary      List technician access windows
// @Tags         access
// @Produce      json
// @Success      200  {array}   models.TechnicianAccess
// @Router       /api/v1/technician-access [get]
// @Security     BearerAuth
func (h *Handler) listAccess(c *gin.Context) {
	grants, err := h.services.Access.ListAccess(c.Request.Context())
	if err != nil {
		h.respondError(c, "technician_access_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, grants)
}

// @Summary      Grant technician access
// @Tags         access
// @Accept       json
// @Produce      json
// @Param        body  body      service.AccessGrantInput  true  "Access window"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/technician-access [post]
// @Security     BearerAuth
func (h *Handler) grantAccess(c *gin.Context) {
	var in service.AccessGrantInput
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	id, err := h.services.Access.GrantAccess(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, "technician_access_grant_failed", err, "technician", in.TechnicianUsername)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Revoke technician access
// @Tags         access
// @Param        id   path      int  true  "Access ID"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/technician-access/{id} [delete]
// @Security     BearerAuth
func (h *Handler) revokeAccess(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Access.RevokeAccess(c.Request.Context(), id); err != nil {
		h.respondError(c, "technician_access_revoke_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}
