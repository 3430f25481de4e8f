package handlers

import (
	"thermostat_dashboard/internal/logger"
	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login/:role", h.login)
		auth.POST("/sign-up", h.signUp)
		auth.POST("/logout", h.authMiddleware, h.logout)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.authMiddleware)
	{
		h.registerDashboardRoutes(api)
		h.registerScheduleRoutes(api)
		h.registerProfileRoutes(api)
		h.registerAccessRoutes(api)
		h.registerDiagnosticsRoutes(api)
		api.GET("/activity", h.getActivity)
		// browsers cannot set headers on an upgrade, the apiToken cookie covers that
		api.GET("/ws", h.wsConnect)
	}
}

func (h *Handler) registerDashboardRoutes(api *gin.RouterGroup) {
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/state", h.getDashboardState)
		// Body example: {"delta":1}
		dashboard.POST("/adjust", h.adjustTarget)
		dashboard.POST("/profiles/:id/apply", h.applyProfile)
		dashboard.POST("/refresh", h.refreshDashboard)
	}
}

func (h *Handler) registerScheduleRoutes(api *gin.RouterGroup) {
	schedules := api.Group("/schedules")
	{
		schedules.GET("", h.listSchedules)
		editors := schedules.Group("", requireRole(models.RoleHomeowner, models.RoleTechnician))
		editors.POST("", h.createSchedule)
		editors.PUT("/:id", h.updateSchedule)
		editors.DELETE("/:id", h.deleteSchedule)
	}
}

func (h *Handler) registerProfileRoutes(api *gin.RouterGroup) {
	profiles := api.Group("/profiles")
	{
		profiles.GET("", h.listProfiles)
		editors := profiles.Group("", requireRole(models.RoleHomeowner, models.RoleTechnician))
		editors.POST("", h.createProfile)
		editors.PUT("/:id", h.updateProfile)
		editors.DELETE("/:id", h.deleteProfile)
	}
}

func (h *Handler) registerAccessRoutes(api *gin.RouterGroup) {
	owner := api.Group("", requireRole(models.RoleHomeowner))
	{
		owner.GET("/guests", h.listGuests)
		owner.POST("/guests", h.createGuest)
		owner.DELETE("/guests/:id", h.deleteGuest)

		owner.GET("/technicians", h.listTechnicians)

		owner.GET("/technician-access", h.listAccess)
		owner.POST("/technician-access", h.grantAccess)
		owner.DELETE("/technician-access/:id", h.revokeAccess)
	}
}

func (h *Handler) registerDiagnosticsRoutes(api *gin.RouterGroup) {
	diag := api.Group("/diagnostics", requireRole(models.RoleHomeowner, models.RoleTechnician))
	{
		diag.GET("", h.listDiagnostics)
		diag.POST("", h.createDiagnostic)
	}
}
