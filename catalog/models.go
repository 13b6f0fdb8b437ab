// Package catalog holds the airline reference data the service manages:
// cities, airports, and scheduled flights. It is plain data-access plumbing
// over generic repositories; the auth core protects its write surface.
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// City is a reference record airports attach to.
type City struct {
	bun.BaseModel `bun:"table:cities,alias:cty"`
	ID            uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string    `bun:"name,notnull,unique" json:"name,omitempty"`
	Country       string    `bun:"country,notnull" json:"country,omitempty"`
}

// Airport is keyed by its IATA-style code.
type Airport struct {
	bun.BaseModel `bun:"table:airports,alias:apt"`
	ID            uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string    `bun:"name,notnull" json:"name,omitempty"`
	Code          string    `bun:"code,notnull,unique" json:"code,omitempty"`
	CityID        uuid.UUID `bun:"city_id,notnull,type:uuid" json:"city_id,omitempty"`
	City          *City     `bun:"rel:belongs-to,join:city_id=id" json:"city,omitempty"`
}

// Flight is a scheduled departure between two airports.
type Flight struct {
	bun.BaseModel      `bun:"table:flights,alias:flt"`
	ID                 uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Number             string     `bun:"number,notnull,unique" json:"number,omitempty"`
	DepartureAirportID uuid.UUID  `bun:"departure_airport_id,notnull,type:uuid" json:"departure_airport_id,omitempty"`
	DepartureAirport   *Airport   `bun:"rel:belongs-to,join:departure_airport_id=id" json:"departure_airport,omitempty"`
	ArrivalAirportID   uuid.UUID  `bun:"arrival_airport_id,notnull,type:uuid" json:"arrival_airport_id,omitempty"`
	ArrivalAirport     *Airport   `bun:"rel:belongs-to,join:arrival_airport_id=id" json:"arrival_airport,omitempty"`
	DepartureTime      time.Time  `bun:"departure_time,notnull" json:"departure_time,omitempty"`
	ArrivalTime        time.Time  `bun:"arrival_time,notnull" json:"arrival_time,omitempty"`
	Price              int64      `bun:"price,notnull" json:"price,omitempty"`
	SeatsAvailable     int        `bun:"seats_available,notnull" json:"seats_available,omitempty"`
	CreatedAt          *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt          *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
