package dto

// VerifyOTPReq represents the request body for the /auth/verify endpoint.
// It uses Gin's binding tags for validation (required, exact code length).
type VerifyOTPReq struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
	Code        string `json:"code" binding:"required,len=6"`
}
