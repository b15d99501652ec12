// Package dto defines data transfer objects for the chat feature's HTTP transport layer.
package dto

// ChatReq represents the request body for a chat message.
type ChatReq struct {
	Message string `json:"message" binding:"required"`
}
