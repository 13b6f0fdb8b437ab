package server_test

import (
	"testing"
	"time"

	"github.com/R-Kri/AirlineManagementProject/server"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validFlightRequest() server.CreateFlightRequest {
	departure := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	return server.CreateFlightRequest{
		Number:             "AI101",
		DepartureAirportID: uuid.New(),
		ArrivalAirportID:   uuid.New(),
		DepartureTime:      departure,
		ArrivalTime:        departure.Add(2 * time.Hour),
		Price:              4500,
		SeatsAvailable:     120,
	}
}

func TestCreateFlightRequestValidate(t *testing.T) {
	assert.NoError(t, validFlightRequest().Validate())

	r := validFlightRequest()
	r.ArrivalTime = r.DepartureTime.Add(-time.Hour)
	err := r.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "arrival must be after departure")

	r = validFlightRequest()
	r.DepartureAirportID = uuid.Nil
	err = r.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid id")
}

func TestCreateAirportRequestValidate(t *testing.T) {
	r := server.CreateAirportRequest{
		Name:   "Indira Gandhi International",
		Code:   "DEL",
		CityID: uuid.New(),
	}
	assert.NoError(t, r.Validate())

	r.CityID = uuid.Nil
	err := r.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid id")
}
