package models

import (
	"time"
)

// Administrator represents an administrator account
type Administrator struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// View projects the administrator into its public representation
func (a *Administrator) View() AdministratorView {
	return AdministratorView{
		ID:    a.ID,
		Email: a.Email,
		Role:  a.Role,
	}
}
