package models

import (
	"math"
	"strings"
)

// Role represents the permission level of an administrator
type Role string

const (
	// RoleAdmin can manage administrators and every vehicle operation
	RoleAdmin Role = "Admin"
	// RoleEditor can register, list and read vehicles
	RoleEditor Role = "Editor"
)

// legacyRoleAdmin is the spelling used by records created before the Role enum existed
const legacyRoleAdmin = "adm"

// ParseRole converts free-form input into a Role.
// ok is false for anything outside the enumeration.
func ParseRole(value string) (role Role, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "admin", legacyRoleAdmin:
		return RoleAdmin, true
	case "editor":
		return RoleEditor, true
	default:
		return "", false
	}
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

func (r Role) String() string {
	return string(r)
}

// MinVehicleYear is the oldest model year accepted for a vehicle
const MinVehicleYear = 1950

// MaxVehicleYear is the largest year the INTEGER column can hold
const MaxVehicleYear = math.MaxInt32

// Column limits from schema.sql, in characters
const (
	MaxEmailLength        = 255
	MaxVehicleNameLength  = 150
	MaxVehicleBrandLength = 100
)

// MaxPasswordLength is the longest password bcrypt accepts, in bytes
const MaxPasswordLength = 72

// PageSize is the number of records returned per page on list endpoints
const PageSize = 10
