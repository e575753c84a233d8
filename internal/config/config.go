// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-shop/models"
)

// StructuredConfig is the top-level configuration container for the go-shop
// server. It aggregates all sub-configurations and is populated by merging
// built-in defaults with values from environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and the public route list.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// issuance, password hashing and logging.
type App struct {
	// TokenSignKey is the process secret used to sign and verify bearer
	// tokens. The server refuses to start without it.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// required on every verified one.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity window of an issued token (e.g. "10h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor for newly hashed passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is the global zerolog level (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090"). Empty disables gRPC.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// DisableHTTP turns the HTTP listener off regardless of HTTPAddress,
	// for gRPC-only deployments.
	// Env: SERVER_DISABLE_HTTP
	DisableHTTP bool `env:"DISABLE_HTTP"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PublicRoutes lists extra routes reachable without a token, each in
	// "METHOD /pattern" or "/pattern" form. They are appended after the
	// built-in public routes.
	// Env: SERVER_PUBLIC_ROUTES (comma-separated)
	PublicRoutes []string `env:"PUBLIC_ROUTES"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver as well as the database. PostgreSQL URLs
	// ("postgres://...") and keyword DSNs ("host=...") use pgx; anything
	// else is treated as a SQLite file path or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// PublicRoutePolicy parses PublicRoutes into policy entries with public
// access.
func (s Server) PublicRoutePolicy() ([]models.RoutePolicyEntry, error) {
	entries := make([]models.RoutePolicyEntry, 0, len(s.PublicRoutes))
	for _, route := range s.PublicRoutes {
		entry, err := models.ParsePublicRoute(route)
		if err != nil {
			return nil, fmt.Errorf("public route %q: %w", route, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
