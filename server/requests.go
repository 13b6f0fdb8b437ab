package server

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
)

// SignupRequest is the sign-up payload. Shape checks live here, in the
// validation layer; the auth core assumes a non-empty password and a unique
// email and reports its own conflicts.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
	)
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type CreateCityRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

func (r CreateCityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Country, validation.Required, validation.Length(2, 100)),
	)
}

type CreateAirportRequest struct {
	Name   string    `json:"name"`
	Code   string    `json:"code"`
	CityID uuid.UUID `json:"city_id"`
}

func (r CreateAirportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Code, validation.Required, validation.Length(3, 3), is.UpperCase),
		validation.Field(&r.CityID, validation.Required, validation.By(validateUUID)),
	)
}

type CreateFlightRequest struct {
	Number             string    `json:"number"`
	DepartureAirportID uuid.UUID `json:"departure_airport_id"`
	ArrivalAirportID   uuid.UUID `json:"arrival_airport_id"`
	DepartureTime      time.Time `json:"departure_time"`
	ArrivalTime        time.Time `json:"arrival_time"`
	Price              int64     `json:"price"`
	SeatsAvailable     int       `json:"seats_available"`
}

func (r CreateFlightRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Number, validation.Required, validation.Length(3, 10)),
		validation.Field(&r.DepartureAirportID, validation.Required, validation.By(validateUUID)),
		validation.Field(&r.ArrivalAirportID, validation.Required, validation.By(validateUUID)),
		validation.Field(&r.DepartureTime, validation.Required),
		validation.Field(&r.ArrivalTime, validation.Required, validation.By(r.validateArrivalAfterDeparture)),
		validation.Field(&r.Price, validation.Required, validation.Min(int64(0))),
		validation.Field(&r.SeatsAvailable, validation.Required, validation.Min(1)),
	)
}

func (r CreateFlightRequest) validateArrivalAfterDeparture(value any) error {
	arrival, ok := value.(time.Time)
	if !ok || !arrival.After(r.DepartureTime) {
		return errors.New("arrival must be after departure")
	}
	return nil
}

func validateUUID(value any) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("must be a valid id")
	}
	return nil
}
