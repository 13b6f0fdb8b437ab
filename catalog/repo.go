package catalog

import (
	"context"
	"database/sql"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a catalog record does not exist.
var ErrNotFound = goerrors.New("catalog record not found", goerrors.CategoryNotFound).
	WithCode(goerrors.CodeNotFound).
	WithTextCode("CATALOG_NOT_FOUND")

// Manager exposes the catalog repositories over a shared bun handle. Each
// entity rides the generic repository; typed helpers below add the queries
// the handlers need.
type Manager struct {
	db       *bun.DB
	cities   repository.Repository[*City]
	airports repository.Repository[*Airport]
	flights  repository.Repository[*Flight]
}

func NewManager(db *bun.DB) *Manager {
	return &Manager{
		db:       db,
		cities:   newRepo(db, func() *City { return &City{} }, cityID, setCityID, "name"),
		airports: newRepo(db, func() *Airport { return &Airport{} }, airportID, setAirportID, "code"),
		flights:  newRepo(db, func() *Flight { return &Flight{} }, flightID, setFlightID, "number"),
	}
}

func newRepo[T any](db *bun.DB, newRecord func() *T, getID func(*T) uuid.UUID, setID func(*T, uuid.UUID), identifier string) repository.Repository[*T] {
	return repository.NewRepository[*T](db, repository.ModelHandlers[*T]{
		NewRecord: newRecord,
		GetID: func(r *T) uuid.UUID {
			if r == nil {
				return uuid.Nil
			}
			return getID(r)
		},
		SetID: func(r *T, id uuid.UUID) {
			if r != nil {
				setID(r, id)
			}
		},
		GetIdentifier: func() string {
			return identifier
		},
	})
}

func cityID(c *City) uuid.UUID { return c.ID }

func setCityID(c *City, id uuid.UUID) { c.ID = id }

func airportID(a *Airport) uuid.UUID { return a.ID }

func setAirportID(a *Airport, id uuid.UUID) { a.ID = id }

func flightID(f *Flight) uuid.UUID { return f.ID }

func setFlightID(f *Flight, id uuid.UUID) { f.ID = id }

func (m *Manager) Cities() repository.Repository[*City] { return m.cities }

func (m *Manager) Airports() repository.Repository[*Airport] { return m.airports }

func (m *Manager) Flights() repository.Repository[*Flight] { return m.flights }

// CreateSchema creates the catalog tables when they do not exist yet.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*City)(nil),
		(*Airport)(nil),
		(*Flight)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create catalog schema")
		}
	}

	return nil
}

// CreateCity persists a city, minting its id.
func (m *Manager) CreateCity(ctx context.Context, city *City) (*City, error) {
	if city.ID == uuid.Nil {
		city.ID = uuid.New()
	}
	if _, err := m.db.NewInsert().Model(city).Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create city")
	}
	return city, nil
}

// CreateAirport persists an airport, minting its id.
func (m *Manager) CreateAirport(ctx context.Context, airport *Airport) (*Airport, error) {
	if airport.ID == uuid.Nil {
		airport.ID = uuid.New()
	}
	if _, err := m.db.NewInsert().Model(airport).Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create airport")
	}
	return airport, nil
}

// CreateFlight persists a flight, minting its id.
func (m *Manager) CreateFlight(ctx context.Context, flight *Flight) (*Flight, error) {
	if flight.ID == uuid.Nil {
		flight.ID = uuid.New()
	}
	if _, err := m.db.NewInsert().Model(flight).Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create flight")
	}
	return flight, nil
}

// FindFlight fetches a flight with its airports resolved.
func (m *Manager) FindFlight(ctx context.Context, id uuid.UUID) (*Flight, error) {
	flight := &Flight{}
	err := m.db.NewSelect().Model(flight).
		Relation("DepartureAirport").
		Relation("ArrivalAirport").
		Where("flt.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to fetch flight")
	}
	return flight, nil
}

// SearchFlights lists flights matching the given criteria, departure-ordered.
func (m *Manager) SearchFlights(ctx context.Context, criteria ...repository.SelectCriteria) ([]*Flight, error) {
	var flights []*Flight
	q := m.db.NewSelect().Model(&flights).
		Relation("DepartureAirport").
		Relation("ArrivalAirport").
		Order("flt.departure_time ASC")

	for _, c := range criteria {
		q.Apply(c)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to search flights")
	}
	return flights, nil
}

// ListAirports lists all airports with their cities.
func (m *Manager) ListAirports(ctx context.Context) ([]*Airport, error) {
	var airports []*Airport
	err := m.db.NewSelect().Model(&airports).
		Relation("City").
		Order("apt.code ASC").
		Scan(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list airports")
	}
	return airports, nil
}

// ListCities lists all cities.
func (m *Manager) ListCities(ctx context.Context) ([]*City, error) {
	var cities []*City
	err := m.db.NewSelect().Model(&cities).
		Order("cty.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list cities")
	}
	return cities, nil
}

// DeleteFlight removes a flight.
func (m *Manager) DeleteFlight(ctx context.Context, id uuid.UUID) error {
	res, err := m.db.NewDelete().Model((*Flight)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete flight")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DepartingFrom narrows a flight search to departures out of an airport.
func DepartingFrom(airportID uuid.UUID) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("flt.departure_airport_id = ?", airportID)
	}
}

// ArrivingAt narrows a flight search to arrivals into an airport.
func ArrivingAt(airportID uuid.UUID) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("flt.arrival_airport_id = ?", airportID)
	}
}

// DepartingOn narrows a flight search to one calendar day in day's location.
func DepartingOn(day time.Time) repository.SelectCriteria {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("flt.departure_time >= ?", start).
			Where("flt.departure_time < ?", end)
	}
}

// AirportByCode resolves an airport by its unique code.
func (m *Manager) AirportByCode(ctx context.Context, code string) (*Airport, error) {
	airport := &Airport{}
	err := m.db.NewSelect().Model(airport).
		Where("apt.code = ?", code).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to fetch airport")
	}
	return airport, nil
}
