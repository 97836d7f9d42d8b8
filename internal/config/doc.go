// Package config loads, normalizes, and validates akari configuration.
//
// Settings come from a TOML file (~/.config/akari/config.toml, then
// ./akari.toml), with a .env file in the working directory and the
// MCU_ADDRESS environment variable as fallbacks for the device address.
// Paths are tilde-expanded and every value is checked once here so the
// session and CLI can trust what they receive.
package config
