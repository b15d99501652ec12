// Command seed loads the demo parking spots and EV charging stations for
// Indore into the database.
package main

import (
	"context"
	"log"
	"time"

	"gorm.io/datatypes"

	"parksarthi_backend/internal/feature/parking/adapters"
	"parksarthi_backend/internal/feature/parking/domain/entity"
	"parksarthi_backend/internal/platform/cache"
	"parksarthi_backend/internal/platform/db"
	infraredis "parksarthi_backend/internal/platform/redis"
	"parksarthi_backend/internal/shared/geo"
)

func coord(lat, lng float64) datatypes.JSONType[geo.Coordinate] {
	return datatypes.NewJSONType(geo.Coordinate{Lat: lat, Lng: lng})
}

func main() {
	gdb := db.OpenDB()
	spotRepo := adapters.NewSpotPostgres(gdb)
	stationRepo := adapters.NewStationPostgres(gdb)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	spots := []entity.ParkingSpot{
		{
			Location:       "C21 Mall, AB Road, Indore",
			TotalSlots:     100,
			AvailableSlots: 12,
			PricePerHour:   20,
			Coordinates:    coord(22.7196, 75.8577),
			Amenities:      datatypes.JSONSlice[string]{"Security", "CCTV", "Valet Service"},
			IsActive:       true,
		},
		{
			Location:       "Treasure Island Mall, MG Road, Indore",
			TotalSlots:     80,
			AvailableSlots: 3,
			PricePerHour:   25,
			Coordinates:    coord(22.7283, 75.8641),
			Amenities:      datatypes.JSONSlice[string]{"Security", "Car Wash", "Food Court"},
			IsActive:       true,
		},
		{
			Location:       "Orbit Mall, Ring Road, Indore",
			TotalSlots:     150,
			AvailableSlots: 0,
			PricePerHour:   30,
			Coordinates:    coord(22.7045, 75.8732),
			Amenities:      datatypes.JSONSlice[string]{"Security", "Valet Service", "Car Service"},
			IsActive:       true,
		},
	}

	stations := []entity.EVStation{
		{
			Name:           "Tata Power Station",
			Location:       "Near C21 Mall, AB Road, Indore",
			Coordinates:    coord(22.7156, 75.8547),
			AvailablePorts: 4,
			TotalPorts:     6,
			PricePerKwh:    8,
			IsActive:       true,
		},
		{
			Name:           "BPCL Charging Hub",
			Location:       "MG Road, Indore",
			Coordinates:    coord(22.7223, 75.8611),
			AvailablePorts: 2,
			TotalPorts:     4,
			PricePerKwh:    7,
			IsActive:       true,
		},
		{
			Name:           "ChargePoint Station",
			Location:       "Vijay Nagar, Indore",
			Coordinates:    coord(22.7098, 75.8765),
			AvailablePorts: 1,
			TotalPorts:     3,
			PricePerKwh:    9,
			IsActive:       true,
		},
	}

	for i := range spots {
		if err := spotRepo.Create(ctx, &spots[i]); err != nil {
			log.Fatal("failed to seed parking spot:", err)
		}
	}
	for i := range stations {
		if err := stationRepo.Create(ctx, &stations[i]); err != nil {
			log.Fatal("failed to seed EV station:", err)
		}
	}

	// Drop the cached spot list so the new rows are served immediately.
	if rdb, err := infraredis.NewRedisClient(); err == nil {
		cached := cache.NewCachingSpotRepository(rdb, 0, spotRepo)
		if err := cached.Invalidate(ctx); err != nil {
			log.Println("[WARN] failed to invalidate spot cache:", err)
		}
		_ = rdb.Close()
	}

	log.Printf("seed ok: %d spots, %d stations", len(spots), len(stations))
}
