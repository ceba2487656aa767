/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupled from the domain model.
  Monetary values cross the wire as fixed 2-decimal strings; rates keep
  their full precision as strings.

NAMING CONVENTION:
  - *DTO: response types returned to clients
  - *Request: request body types from clients

SEE ALSO:
  - handlers.go: uses these types
*/
package api

import (
	"time"

	"github.com/bluescooters/rental-engine/fleet"
	"github.com/bluescooters/rental-engine/rental"
)

// ScooterDTO represents a scooter in API responses.
type ScooterDTO struct {
	ID             string `json:"id"`
	PricePerMinute string `json:"price_per_minute"`
	Rented         bool   `json:"rented"`
}

// AddScooterRequest is the request to register a scooter.
type AddScooterRequest struct {
	ID             string `json:"id"`
	PricePerMinute string `json:"price_per_minute"`
}

// RentalDTO represents a rental record in API responses.
type RentalDTO struct {
	ID             string `json:"id"`
	ScooterID      string `json:"scooter_id"`
	PricePerMinute string `json:"price_per_minute"`
	StartedAt      string `json:"started_at"`
	EndedAt        string `json:"ended_at,omitempty"`
}

// PriceDTO is the response to ending a rent.
type PriceDTO struct {
	ScooterID string `json:"scooter_id"`
	Price     string `json:"price"`
}

// IncomeDTO is the income report response.
type IncomeDTO struct {
	Total       string `json:"total"`
	Year        *int   `json:"year,omitempty"`
	IncludeOpen bool   `json:"include_open"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toScooterDTO(s *fleet.Scooter) ScooterDTO {
	return ScooterDTO{
		ID:             s.ID,
		PricePerMinute: s.PricePerMinute.String(),
		Rented:         s.Rented,
	}
}

func toRentalDTO(rec rental.Record) RentalDTO {
	dto := RentalDTO{
		ID:             rec.ID,
		ScooterID:      rec.ScooterID,
		PricePerMinute: rec.PricePerMinute.String(),
		StartedAt:      rec.Start.Format(time.RFC3339),
	}
	if rec.End != nil {
		dto.EndedAt = rec.End.Format(time.RFC3339)
	}
	return dto
}
