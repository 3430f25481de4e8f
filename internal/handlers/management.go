package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thermostat_dashboard/internal/service"
)

// @Summary      List schedules
// @Tags         schedules
// @Produce      json
// @Success      200  {array}   models.ScheduleRow
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/schedules [get]
// @Security     BearerAuth
func (h *Handler) listSchedules(c *gin.Context) {
	rows, err := h.services.Schedules.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "schedules_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary      Create schedule
// @Description  start_time is a daily "HH:MM[:SS]" or a full date-time; target_temp must be within the allowed range.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body      service.ScheduleInput  true  "Schedule"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/v1/schedules [post]
// @Security     BearerAuth
func (h *Handler) createSchedule(c *gin.Context) {
	var in service.ScheduleInput
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	id, err := h.services.Schedules.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, "schedule_create_failed", err, "name", in.Name)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Replace schedule
// @Description  The backend has no update call: the schedule is deleted and re-created under a new id.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Schedule ID"
// @Param        body  body      service.ScheduleInput  true  "Schedule"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/schedules/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateSchedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in service.ScheduleInput
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	newID, err := h.services.Schedules.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, "schedule_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": newID})
}

// @Summary      Delete schedule
// @Tags         schedules
// @Produce      json
// @Param        id   path      int  true  "Schedule ID"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/schedules/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteSchedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Schedules.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "schedule_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}

// @Summary      List profiles
// @Tags         profiles
// @Produce      json
// @Success      200  {array}   models.Profile
// @Router       /api/v1/profiles [get]
// @Security     BearerAuth
func (h *Handler) listProfiles(c *gin.Context) {
	profiles, err := h.services.Profiles.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "profiles_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// @Summary      Create profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      service.ProfileInput  true  "Profile"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/profiles [post]
// @Security     BearerAuth
func (h *Handler) createProfile(c *gin.Context) {
	var in service.ProfileInput
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	id, err := h.services.Profiles.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, "profile_create_failed", err, "name", in.Name)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Replace profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Profile ID"
// @Param        body  body      service.ProfileInput  true  "Profile"
// @Success      200   {object}  map[string]int
// @Router       /api/v1/profiles/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in service.ProfileInput
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	newID, err := h.services.Profiles.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, "profile_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": newID})
}

// @Summary      Delete profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/profiles/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Profiles.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "profile_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}
