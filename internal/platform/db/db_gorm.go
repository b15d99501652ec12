// Package db opens the Postgres connection and runs migrations.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	bookingentity "parksarthi_backend/internal/feature/booking/domain/entity"
	documententity "parksarthi_backend/internal/feature/documents/domain/entity"
	inquiryentity "parksarthi_backend/internal/feature/inquiry/domain/entity"
	parkingentity "parksarthi_backend/internal/feature/parking/domain/entity"
	userentity "parksarthi_backend/internal/feature/users/domain/entity"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Config holds the database connection settings.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string

	// InstanceName selects a Cloud SQL unix socket when set.
	InstanceName string
}

// LoadConfigFromEnv reads the database settings from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN assembles the Postgres DSN. A configured Cloud SQL instance name
// takes precedence over Host/Port and connects through the unix socket.
func BuildDSN(cfg Config) string {
	host := cfg.Host
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
		host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
}

// Opener abstracts gorm.Open so connection retries can be tested without a
// running database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps attempting to connect until the timeout elapses.
// Cloud Run cold starts can race the Cloud SQL proxy, so the first few
// attempts are expected to fail.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to Postgres and runs the schema migrations when
// RUN_MIGRATIONS is set.
func OpenDB() *gorm.DB {
	dsn := BuildDSN(LoadConfigFromEnv())

	db, err := ConnectWithRetry(dsn, connectTimeout, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&userentity.User{},
			&bookingentity.Booking{},
			&documententity.Document{},
			&parkingentity.ParkingSpot{},
			&parkingentity.EVStation{},
			&inquiryentity.BusinessInquiry{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
