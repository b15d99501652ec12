// Package dto defines data transfer objects for the booking feature's HTTP transport layer.
package dto

import "time"

// CreateBookingReq represents the request body for creating a booking.
type CreateBookingReq struct {
	VehicleNumber string    `json:"vehicle_number" binding:"required"`
	Location      string    `json:"location" binding:"required"`
	SlotNumber    *string   `json:"slot_number"`
	BookingTime   time.Time `json:"booking_time" binding:"required"`
	Duration      int       `json:"duration" binding:"required,gt=0"`
	IsPreBooked   bool      `json:"is_pre_booked"`
}
