// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Values from the environment (and a .env file, if present) override the file.
package config
