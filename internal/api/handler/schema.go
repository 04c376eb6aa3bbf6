package handler

import "github.com/medistaff/staffdir/internal/core/domain"

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required,min=6"`
}

type createUserRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Email    string   `json:"email"    validate:"required,email"`
	Contact  string   `json:"contact"`
	Password string   `json:"password" validate:"required,min=6"`
	Roles    []string `json:"roles"    validate:"omitempty,dive,oneof=Admin Employee"`
}

type updateUserRequest struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"    validate:"omitempty,email"`
	Contact  *string  `json:"contact"`
	Password *string  `json:"password" validate:"omitempty,min=6"`
	Roles    []string `json:"roles"    validate:"omitempty,min=1,dive,oneof=Admin Employee"`
}

type createRoleRequest struct {
	Name        string `json:"name"        validate:"required,oneof=Admin Employee"`
	Description string `json:"description"`
}

type updateRoleRequest struct {
	Name        *string `json:"name" validate:"omitempty,oneof=Admin Employee"`
	Description *string `json:"description"`
}

// userResponse is the public projection of an account. The password hash
// never appears on the wire.
type userResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Contact string   `json:"contact,omitempty"`
	Roles   []string `json:"roles"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func toUserResponse(a *domain.Account) *userResponse {
	if a == nil {
		return nil
	}
	return &userResponse{
		ID:      a.ID,
		Name:    a.Name,
		Email:   a.Email,
		Contact: a.Contact,
		Roles:   a.Roles,
	}
}
