package models

// LoginRequest is the body of POST /administradores/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdministratorRequest is the body of POST /administradores
type AdministratorRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// VehicleRequest is the body of POST /veiculos and PUT /veiculos/:id
type VehicleRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// AuthenticatedAdministrator is returned after a successful login
type AuthenticatedAdministrator struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

// AdministratorView is the public projection of an Administrator
type AdministratorView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ValidationErrors collects human-readable validation failures in order
type ValidationErrors struct {
	Messages []string `json:"messages"`
}

// Add appends a message
func (v *ValidationErrors) Add(message string) {
	v.Messages = append(v.Messages, message)
}

// Empty reports whether no violations were recorded
func (v ValidationErrors) Empty() bool {
	return len(v.Messages) == 0
}

// Home is the greeting returned by GET /
type Home struct {
	Message string `json:"message"`
	Health  string `json:"health"`
}
