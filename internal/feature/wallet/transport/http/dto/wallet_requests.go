// Package dto defines data transfer objects for the wallet feature's HTTP transport layer.
package dto

// AddPointsReq represents the request body for crediting points.
type AddPointsReq struct {
	Points int    `json:"points" binding:"required,gt=0"`
	Reason string `json:"reason" binding:"required"`
}

// RedeemReq represents the request body for redeeming a reward.
type RedeemReq struct {
	Cost   int    `json:"cost" binding:"required,gt=0"`
	Reward string `json:"reward" binding:"required"`
}
