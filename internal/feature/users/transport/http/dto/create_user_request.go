// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for the POST /api/users endpoint.
// ID is the identity provider's subject; it may be omitted for records created
// outside the auth flow.
type CreateUserReq struct {
	ID          string  `json:"id"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
}
