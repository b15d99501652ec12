// Package dto defines data transfer objects for the inquiry feature's HTTP transport layer.
package dto

// CreateInquiryReq represents the request body for submitting a business inquiry.
type CreateInquiryReq struct {
	LookingFor string  `json:"looking_for" binding:"required"`
	FullName   string  `json:"full_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Mobile     string  `json:"mobile" binding:"required"`
	City       string  `json:"city" binding:"required"`
	Message    *string `json:"message"`
}
