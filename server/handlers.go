package server

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/R-Kri/AirlineManagementProject/catalog"
)

// Signup registers a new account and returns its summary.
func (s *Server) Signup(c *fiber.Ctx) error {
	payload := new(SignupRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse body")
	}
	if err := payload.Validate(); err != nil {
		return validationFailed(c, err)
	}

	account, err := s.authenticator.Register(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(account.Summary())
}

// Login authenticates the credentials and returns a bearer token.
func (s *Server) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse body")
	}
	if err := payload.Validate(); err != nil {
		return validationFailed(c, err)
	}

	token, err := s.authenticator.Authenticate(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}

// Me returns the summary of the caller's live session.
func (s *Server) Me(c *fiber.Ctx) error {
	summary, ok := SessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(summary)
}

func (s *Server) ListCities(c *fiber.Ctx) error {
	cities, err := s.catalog.ListCities(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cities)
}

func (s *Server) ListAirports(c *fiber.Ctx) error {
	airports, err := s.catalog.ListAirports(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(airports)
}

// SearchFlights filters on optional from/to airport codes and a departure
// day (YYYY-MM-DD).
func (s *Server) SearchFlights(c *fiber.Ctx) error {
	ctx := c.UserContext()
	criteria, err := s.flightCriteria(c)
	if err != nil {
		return errorResponse(c, err)
	}

	flights, err := s.catalog.SearchFlights(ctx, criteria...)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(flights)
}

func (s *Server) GetFlight(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid flight id")
	}

	flight, err := s.catalog.FindFlight(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(flight)
}

func (s *Server) CreateCity(c *fiber.Ctx) error {
	payload := new(CreateCityRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse body")
	}
	if err := payload.Validate(); err != nil {
		return validationFailed(c, err)
	}

	city, err := s.catalog.CreateCity(c.UserContext(), &catalog.City{
		Name:    payload.Name,
		Country: payload.Country,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(city)
}

func (s *Server) CreateAirport(c *fiber.Ctx) error {
	payload := new(CreateAirportRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse body")
	}
	if err := payload.Validate(); err != nil {
		return validationFailed(c, err)
	}

	airport, err := s.catalog.CreateAirport(c.UserContext(), &catalog.Airport{
		Name:   payload.Name,
		Code:   payload.Code,
		CityID: payload.CityID,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(airport)
}

func (s *Server) CreateFlight(c *fiber.Ctx) error {
	payload := new(CreateFlightRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse body")
	}
	if err := payload.Validate(); err != nil {
		return validationFailed(c, err)
	}

	flight, err := s.catalog.CreateFlight(c.UserContext(), &catalog.Flight{
		Number:             payload.Number,
		DepartureAirportID: payload.DepartureAirportID,
		ArrivalAirportID:   payload.ArrivalAirportID,
		DepartureTime:      payload.DepartureTime,
		ArrivalTime:        payload.ArrivalTime,
		Price:              payload.Price,
		SeatsAvailable:     payload.SeatsAvailable,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(flight)
}

func (s *Server) DeleteFlight(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid flight id")
	}

	if err := s.catalog.DeleteFlight(c.UserContext(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) flightCriteria(c *fiber.Ctx) ([]repositorySelect, error) {
	ctx := c.UserContext()
	var criteria []repositorySelect

	if from := c.Query("from"); from != "" {
		airport, err := s.catalog.AirportByCode(ctx, from)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, catalog.DepartingFrom(airport.ID))
	}

	if to := c.Query("to"); to != "" {
		airport, err := s.catalog.AirportByCode(ctx, to)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, catalog.ArrivingAt(airport.ID))
	}

	if date := c.Query("date"); date != "" {
		day, err := parseDay(date)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, catalog.DepartingOn(day))
	}

	return criteria, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func validationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": err,
	})
}

// errorResponse maps rich errors onto HTTP statuses via their embedded code,
// keeping rejection bodies terse.
func errorResponse(c *fiber.Ctx, err error) error {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		richErr = goerrors.Wrap(err, goerrors.CategoryInternal, "unexpected server error").
			WithCode(goerrors.CodeInternal)
	}

	status := richErr.Code
	if status < fiber.StatusBadRequest {
		status = fiber.StatusInternalServerError
	}

	// Never leak internals through 5xx bodies.
	msg := richErr.Message
	if status >= fiber.StatusInternalServerError {
		msg = "internal server error"
	}

	return c.Status(status).JSON(fiber.Map{
		"error": msg,
		"code":  richErr.TextCode,
	})
}
