package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/R-Kri/AirlineManagementProject/auth"
	"github.com/R-Kri/AirlineManagementProject/catalog"
	"github.com/R-Kri/AirlineManagementProject/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	cfg := &auth.Config{
		SigningKey: []byte(os.Getenv("AIRLINE_SIGNING_KEY")),
		TokenTTL:   envDuration("AIRLINE_TOKEN_TTL"),
		BcryptCost: envInt("AIRLINE_BCRYPT_COST"),
		Issuer:     envOr("AIRLINE_ISSUER", "airline-management"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, envOr("AIRLINE_DB", "file:airline.db?_pragma=foreign_keys(1)"))
	if err != nil {
		return err
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if err := auth.CreateSchema(ctx, db); err != nil {
		return err
	}
	if err := catalog.CreateSchema(ctx, db); err != nil {
		return err
	}

	repos := auth.NewRepositoryManager(db)
	if err := repos.Validate(); err != nil {
		return err
	}
	for _, name := range []auth.RoleName{auth.RoleAdmin, auth.RoleUser} {
		if _, err := repos.EnsureRole(ctx, name); err != nil {
			return err
		}
	}

	store := repos.Accounts()
	authenticator := auth.NewAuthenticator(store, cfg)

	srv := server.New(server.Deps{
		Authenticator: authenticator,
		Sessions:      auth.NewSessionValidator(store, authenticator.TokenService()),
		Roles:         auth.NewRoleAuthorizer(store),
		Catalog:       catalog.NewManager(db),
	})

	addr := envOr("AIRLINE_ADDR", ":3000")
	log.Printf("airline management listening on %s", addr)
	return srv.Listen(addr)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return 0
	}
	return n
}

func envDuration(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return 0
	}
	return d
}
