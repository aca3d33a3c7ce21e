package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/services"
)

// AdminHandler handles administrator endpoints
type AdminHandler struct {
	adminService *services.AdminService
	authService  *services.AuthService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService, authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		authService:  authService,
	}
}

// HandleLogin authenticates an administrator and returns a bearer token
func (ah *AdminHandler) HandleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody})
		return
	}

	admin, err := ah.adminService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		respondInternalError(c, err, "failed to authenticate")
		return
	}

	token, err := ah.authService.IssueToken(admin)
	if err != nil || token == "" {
		respondInternalError(c, err, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, models.AuthenticatedAdministrator{
		Email: admin.Email,
		Role:  admin.Role,
		Token: token,
	})
}

// HandleList returns administrators, paginated when ?pagina= is present
func (ah *AdminHandler) HandleList(c *gin.Context) {
	page, err := services.ParsePage(c.Query(pageParam))
	if err != nil {
		respondValidation(c, models.ValidationErrors{Messages: []string{err.Error()}})
		return
	}

	admins, err := ah.adminService.List(c.Request.Context(), page)
	if err != nil {
		respondInternalError(c, err, "failed to list administrators")
		return
	}

	views := make([]models.AdministratorView, 0, len(admins))
	for i := range admins {
		views = append(views, admins[i].View())
	}

	c.JSON(http.StatusOK, views)
}

// HandleCreate registers a new administrator
func (ah *AdminHandler) HandleCreate(c *gin.Context) {
	var req models.AdministratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody})
		return
	}

	if v := services.ValidateAdministrator(req); !v.Empty() {
		respondValidation(c, v)
		return
	}

	// validated above
	role, _ := models.ParseRole(req.Role)

	admin, err := ah.adminService.Create(c.Request.Context(), req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "an administrator with this email already exists"})
			return
		}
		respondInternalError(c, err, "failed to create administrator")
		return
	}

	c.Header("Location", fmt.Sprintf("/administradores/%d", admin.ID))
	c.JSON(http.StatusCreated, admin.View())
}

// HandleGet returns one administrator
func (ah *AdminHandler) HandleGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	admin, err := ah.adminService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "failed to get administrator")
		return
	}

	c.JSON(http.StatusOK, admin.View())
}
