package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/vehicle-registry/src/database"
	"github.com/khabaroff/vehicle-registry/src/middleware"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/services"
)

// Route binds a method and path to its access rule and handler chain
type Route struct {
	Method   string
	Path     string
	Access   middleware.Access
	Handlers []gin.HandlerFunc
}

// Dependencies are the services the routes are built from
type Dependencies struct {
	DB             *database.Database
	AuthService    *services.AuthService
	AdminService   *services.AdminService
	VehicleService *services.VehicleService
	LoginRateLimit middleware.RateLimitConfig
}

// Routes returns the full route table of the API
func Routes(deps Dependencies) []Route {
	healthHandler := NewHealthHandler(deps.DB)
	adminHandler := NewAdminHandler(deps.AdminService, deps.AuthService)
	vehicleHandler := NewVehicleHandler(deps.VehicleService)

	adminOnly := middleware.Roles(models.RoleAdmin)
	anyRole := middleware.Roles(models.RoleAdmin, models.RoleEditor)

	return []Route{
		{http.MethodGet, "/", middleware.Public(), chain(healthHandler.HandleHome)},
		{http.MethodGet, "/health", middleware.Public(), chain(healthHandler.HandleHealth)},
		{http.MethodGet, "/ready", middleware.Public(), chain(healthHandler.HandleReady)},
		{http.MethodGet, "/info", middleware.Public(), chain(healthHandler.HandleInfo)},

		{http.MethodPost, "/administradores/login", middleware.Public(), chain(
			middleware.NewIPRateLimitingMiddleware(deps.LoginRateLimit),
			adminHandler.HandleLogin,
		)},
		{http.MethodGet, "/administradores", adminOnly, chain(adminHandler.HandleList)},
		{http.MethodPost, "/administradores", adminOnly, chain(adminHandler.HandleCreate)},
		{http.MethodGet, "/administradores/:id", adminOnly, chain(adminHandler.HandleGet)},

		{http.MethodPost, "/veiculos", anyRole, chain(vehicleHandler.HandleCreate)},
		{http.MethodGet, "/veiculos", anyRole, chain(vehicleHandler.HandleList)},
		{http.MethodGet, "/veiculos/:id", anyRole, chain(vehicleHandler.HandleGet)},
		{http.MethodPut, "/veiculos/:id", adminOnly, chain(vehicleHandler.HandleUpdate)},
		{http.MethodDelete, "/veiculos/:id", adminOnly, chain(vehicleHandler.HandleDelete)},
	}
}

// RegisterRoutes mounts routes on router, putting the access check first in every chain
func RegisterRoutes(router gin.IRoutes, verifier middleware.TokenVerifier, routes []Route) {
	for _, r := range routes {
		handlers := append([]gin.HandlerFunc{middleware.RequireAccess(verifier, r.Access)}, r.Handlers...)
		router.Handle(r.Method, r.Path, handlers...)
	}
}

func chain(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	return handlers
}
