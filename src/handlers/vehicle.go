package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/services"
)

// pageParam is the query parameter selecting a 1-indexed page
const pageParam = "pagina"

// VehicleHandler handles vehicle endpoints
type VehicleHandler struct {
	vehicleService *services.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// bindVehicle parses and validates the request body.
// It writes the 400 response itself and returns false on failure.
func bindVehicle(c *gin.Context) (models.VehicleRequest, bool) {
	var req models.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody})
		return req, false
	}

	if v := services.ValidateVehicle(req); !v.Empty() {
		respondValidation(c, v)
		return req, false
	}

	return req, true
}

// HandleCreate registers a vehicle
func (vh *VehicleHandler) HandleCreate(c *gin.Context) {
	req, ok := bindVehicle(c)
	if !ok {
		return
	}

	vehicle := &models.Vehicle{
		Name:  req.Name,
		Brand: req.Brand,
		Year:  req.Year,
	}
	if err := vh.vehicleService.Create(c.Request.Context(), vehicle); err != nil {
		respondInternalError(c, err, "failed to create vehicle")
		return
	}

	c.Header("Location", fmt.Sprintf("/veiculos/%d", vehicle.ID))
	c.JSON(http.StatusCreated, vehicle)
}

// HandleList returns vehicles, paginated when ?pagina= is present
func (vh *VehicleHandler) HandleList(c *gin.Context) {
	page, err := services.ParsePage(c.Query(pageParam))
	if err != nil {
		respondValidation(c, models.ValidationErrors{Messages: []string{err.Error()}})
		return
	}

	vehicles, err := vh.vehicleService.List(c.Request.Context(), page)
	if err != nil {
		respondInternalError(c, err, "failed to list vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// HandleGet returns one vehicle
func (vh *VehicleHandler) HandleGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := vh.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "failed to get vehicle")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// HandleUpdate replaces name, brand and year of a vehicle
func (vh *VehicleHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	req, ok := bindVehicle(c)
	if !ok {
		return
	}

	vehicle, err := vh.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "failed to get vehicle")
		return
	}

	vehicle.Name = req.Name
	vehicle.Brand = req.Brand
	vehicle.Year = req.Year

	if err := vh.vehicleService.Update(c.Request.Context(), vehicle); err != nil {
		// deleted concurrently
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "failed to update vehicle")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// HandleDelete removes a vehicle
func (vh *VehicleHandler) HandleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := vh.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "failed to get vehicle")
		return
	}

	if err := vh.vehicleService.Delete(c.Request.Context(), vehicle); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "failed to delete vehicle")
		return
	}

	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}
