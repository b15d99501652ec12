// Package dto defines data transfer objects for the phoneauth feature's HTTP transport layer.
package dto

// SendOTPReq represents the request body for the /auth/phone endpoint.
// The phone number may be a bare 10-digit local number or carry the +91 prefix.
type SendOTPReq struct {
	PhoneNumber    string `json:"phone_number" binding:"required"`
	RecaptchaToken string `json:"recaptcha_token" binding:"required"`
}
