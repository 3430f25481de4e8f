package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/service"
)

// LoginRequest documents the login payload. Guests send pin, everyone else password.
type LoginRequest struct {
	Username  string `json:"username" example:"alice"`
	Password  string `json:"password,omitempty" example:"s3cret"`
	PIN       string `json:"pin,omitempty" example:"1234"`
	Homeowner string `json:"homeowner,omitempty" example:"alice"`
}

// @Summary      Log in
// @Description  Signs into the backend with the flow of the given role, stores the session and starts its dashboard. Sets the apiToken and userRole cookies.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        role  path      string        true  "Role"  Enums(homeowner,guest,technician)
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  service.LoginResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login/{role} [post]
func (h *Handler) login(c *gin.Context) {
	role := models.Role(c.Param("role"))
	if !role.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown role " + string(role)})
		return
	}
	var in service.Credentials
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}

	res, err := h.services.Auth.Login(c.Request.Context(), role, in)
	if err != nil {
		h.respondError(c, "auth_login_failed", err, "role", role, "username", in.Username)
		return
	}

	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, res.Token, maxAge, "/", "", false, true)
	c.SetCookie(roleCookie, string(res.Role), maxAge, "/", "", false, false)
	c.JSON(http.StatusOK, res)
}

// @Summary      Sign up
// @Description  Creates a homeowner account on the backend. Does not log in.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Username and password"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var in service.Credentials
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	if err := h.services.Auth.SignUp(c.Request.Context(), in); err != nil {
		h.respondError(c, "auth_sign_up_failed", err, "username", in.Username)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": statusCreated})
}

// @Summary      Log out
// @Description  Stops the dashboard, forgets the backend session and clears the cookies.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *Handler) logout(c *gin.Context) {
	if err := h.services.Auth.Logout(c.Request.Context()); err != nil {
		h.log.Errorw("auth_logout_failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.SetCookie(tokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(roleCookie, "", -1, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"status": statusLoggedOut})
}
