// Package config loads gridpath settings from the environment, optionally
// seeded from .env files. Every value has a default, so an empty environment
// yields a working configuration.
package config
