package usecase

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ServiceRecord is one entry of the demo vehicle service history.
type ServiceRecord struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Cost     int       `json:"cost"` // rupees
}

var serviceCatalog = []struct {
	kind string
	cost int
}{
	{"Oil Change", 800},
	{"Battery Service", 1200},
	{"Car Wash", 300},
	{"General Service", 2500},
}

var serviceStatuses = []string{"completed", "scheduled", "pending"}

var serviceLocations = []string{
	"Parking Zone A",
	"Mall Parking B3",
	"Office Complex C1",
	"Airport Terminal 2",
}

// GenerateServiceHistory produces fresh demo service records, one per
// catalog entry, with dates within a month of now and lightly jittered
// prices.
func GenerateServiceHistory(now time.Time) []ServiceRecord {
	out := make([]ServiceRecord, 0, len(serviceCatalog))
	for _, svc := range serviceCatalog {
		days := rand.Intn(61) - 30
		out = append(out, ServiceRecord{
			ID:       uuid.NewString(),
			Type:     svc.kind,
			Status:   serviceStatuses[rand.Intn(len(serviceStatuses))],
			Date:     now.AddDate(0, 0, days),
			Location: serviceLocations[rand.Intn(len(serviceLocations))],
			Cost:     svc.cost + rand.Intn(201) - 100,
		})
	}
	return out
}
