// Package config provides the configuration of the market update generator:
// database locations, output settings, fetch limits and the series and
// transaction types the report tracks.
//
// Values come from built-in defaults, an optional YAML file (.marketupdate)
// and MARKETUPDATE_* environment variables, in increasing priority. CLI flags
// are applied on top by the caller.
package config
