// Package server is the JSON HTTP surface over the auth core and the
// catalog. Routing, parsing, and request-shape validation live here; the
// core never sees HTTP concerns.
package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/R-Kri/AirlineManagementProject/auth"
	"github.com/R-Kri/AirlineManagementProject/catalog"
)

// Deps carries everything the server needs wired at startup.
type Deps struct {
	Authenticator *auth.Authenticator
	Sessions      *auth.SessionValidator
	Roles         *auth.RoleAuthorizer
	Catalog       *catalog.Manager
	Logger        auth.Logger
}

type Server struct {
	app           *fiber.App
	authenticator *auth.Authenticator
	sessions      *auth.SessionValidator
	roles         *auth.RoleAuthorizer
	catalog       *catalog.Manager
	logger        auth.Logger
}

func New(deps Deps) *Server {
	s := &Server{
		app:           fiber.New(fiber.Config{DisableStartupMessage: true}),
		authenticator: deps.Authenticator,
		sessions:      deps.Sessions,
		roles:         deps.Roles,
		catalog:       deps.Catalog,
		logger:        deps.Logger,
	}

	if s.logger == nil {
		s.logger = auth.DefaultLogger()
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	authGroup := s.app.Group("/auth")
	authGroup.Post("/signup", s.Signup)
	authGroup.Post("/login", s.Login)
	authGroup.Get("/me", s.RequireSession, s.Me)

	s.app.Get("/cities", s.ListCities)
	s.app.Get("/airports", s.ListAirports)
	s.app.Get("/flights", s.SearchFlights)
	s.app.Get("/flights/:id", s.GetFlight)

	admin := s.app.Group("/admin", s.RequireSession, s.RequireRole(auth.RoleAdmin))
	admin.Post("/cities", s.CreateCity)
	admin.Post("/airports", s.CreateAirport)
	admin.Post("/flights", s.CreateFlight)
	admin.Delete("/flights/:id", s.DeleteFlight)
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving on addr.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
