package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/khabaroff/vehicle-registry/src/models"
)

// Validation messages, in the order they are reported
const (
	MsgEmailRequired    = "email must not be empty"
	MsgPasswordRequired = "password must not be empty"
	MsgRoleRequired     = "role must not be empty"
	MsgNameRequired     = "name must not be empty"
	MsgBrandRequired    = "brand must not be empty"
)

// MsgRoleInvalid is reported when role is set but is not Admin or Editor
var MsgRoleInvalid = fmt.Sprintf("role must be %s or %s", models.RoleAdmin, models.RoleEditor)

// MsgYearTooOld is reported for vehicles older than models.MinVehicleYear
var MsgYearTooOld = fmt.Sprintf("vehicle too old, only years from %d onwards are accepted", models.MinVehicleYear)

// Length and range messages
var (
	MsgEmailTooLong    = fmt.Sprintf("email must be at most %d characters", models.MaxEmailLength)
	MsgPasswordTooLong = fmt.Sprintf("password must be at most %d bytes", models.MaxPasswordLength)
	MsgNameTooLong     = fmt.Sprintf("name must be at most %d characters", models.MaxVehicleNameLength)
	MsgBrandTooLong    = fmt.Sprintf("brand must be at most %d characters", models.MaxVehicleBrandLength)
	MsgYearOutOfRange  = fmt.Sprintf("year must be at most %d", models.MaxVehicleYear)
)

// ErrInvalidPage indicates the page query parameter is not a positive integer
var ErrInvalidPage = errors.New("page must be a positive integer")

// ValidateAdministrator checks an administrator creation request
func ValidateAdministrator(req models.AdministratorRequest) models.ValidationErrors {
	var v models.ValidationErrors

	email := strings.TrimSpace(req.Email)
	if email == "" {
		v.Add(MsgEmailRequired)
	} else if utf8.RuneCountInString(email) > models.MaxEmailLength {
		v.Add(MsgEmailTooLong)
	}
	if req.Password == "" {
		v.Add(MsgPasswordRequired)
	} else if len(req.Password) > models.MaxPasswordLength {
		v.Add(MsgPasswordTooLong)
	}
	if strings.TrimSpace(req.Role) == "" {
		v.Add(MsgRoleRequired)
	} else if _, ok := models.ParseRole(req.Role); !ok {
		v.Add(MsgRoleInvalid)
	}

	return v
}

// ValidateVehicle checks a vehicle create or update request
func ValidateVehicle(req models.VehicleRequest) models.ValidationErrors {
	var v models.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		v.Add(MsgNameRequired)
	} else if utf8.RuneCountInString(req.Name) > models.MaxVehicleNameLength {
		v.Add(MsgNameTooLong)
	}
	if strings.TrimSpace(req.Brand) == "" {
		v.Add(MsgBrandRequired)
	} else if utf8.RuneCountInString(req.Brand) > models.MaxVehicleBrandLength {
		v.Add(MsgBrandTooLong)
	}
	if req.Year < models.MinVehicleYear {
		v.Add(MsgYearTooOld)
	} else if req.Year > models.MaxVehicleYear {
		v.Add(MsgYearOutOfRange)
	}

	return v
}

// ParsePage parses the optional 1-indexed page parameter.
// An empty value means "no pagination" and returns nil.
func ParsePage(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return nil, ErrInvalidPage
	}
	return &page, nil
}

// pageWindow converts a page number into limit/offset; nil selects every row
func pageWindow(page *int) (limit, offset int) {
	if page == nil {
		return 0, 0
	}
	p := *page
	if p < 1 {
		p = 1
	}
	return models.PageSize, (p - 1) * models.PageSize
}
