// Package dto defines data transfer objects for the documents feature's HTTP transport layer.
package dto

import "time"

// AddDocumentReq represents the request body for filing a document.
// Image carries an optional base64-encoded scan of the document.
type AddDocumentReq struct {
	Type       string     `json:"type" binding:"required,oneof=license rc puc"`
	FileName   string     `json:"file_name" binding:"required"`
	FileURL    string     `json:"file_url" binding:"required,url"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Image      string     `json:"image"`
}
