package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thermostat_dashboard/internal/client"
	"thermostat_dashboard/internal/service"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusCreated   = "created"
	statusDeleted   = "deleted"
	statusLoggedOut = "logged_out"

	errInvalidBodyPref = "invalid body: "
	errInvalidID       = "invalid id"
)

// statusFor maps service and client errors onto an HTTP status and a
// message safe to show the caller.
func statusFor(err error) (int, string) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidTimeRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, client.ErrNoSession), errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrSessionExpired):
		return http.StatusUnauthorized, "no active session"
	case errors.Is(err, service.ErrForbiddenRole):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrProfileNotFound):
		return http.StatusNotFound, "profile not found"
	case errors.Is(err, service.ErrNoDashboard):
		return http.StatusConflict, "no dashboard is running; log in first"
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		return apiErr.Status, apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return http.StatusServiceUnavailable, "backend unavailable"
	default:
		return http.StatusBadGateway, "backend request failed"
	}
}

// respondError logs err under logKey and answers with the mapped status.
// Caller mistakes are logged at info, everything else at error.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code, msg := statusFor(err)
	fields := append([]interface{}{"err", err, "status", code}, kv...)
	if code >= http.StatusInternalServerError {
		h.log.Errorw(logKey, fields...)
	} else {
		h.log.Infow(logKey, fields...)
	}
	c.JSON(code, gin.H{"error": msg})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// pathID reads a positive integer :id parameter, answering 400 otherwise.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}
