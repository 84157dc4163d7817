// Package config loads and validates application configuration for the
// Waypost API.
//
// Configuration comes from environment variables with sensible defaults for
// local development. A .env file in the working directory is loaded first if
// present, so local overrides never require exported shell variables.
//
// Load() never fails on missing values; call Validate() after loading to get
// a joined error listing every problem at once.
package config
