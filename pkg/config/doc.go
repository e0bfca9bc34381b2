// Package config loads application configuration from environment variables
// with optional .env file support for local development.
//
// Configuration lives in plain structs with `env` tags; defaults are
// declared inline with `envDefault` so a bare checkout runs with zero setup.
package config
