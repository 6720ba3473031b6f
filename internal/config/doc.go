// Package config loads displaycard configuration.
//
// Values are layered, later layers winning:
//
//  1. Defaults from New
//  2. A displaycard.json or displaycard.toml file
//  3. Variables from a .env file (existing environment variables are kept)
//  4. DISPLAYCARD_* environment variables
//
// Example displaycard.toml:
//
//	[server]
//	host = "0.0.0.0"
//	port = 8080
//
//	[catalog]
//	base_url = "https://dummyjson.com"
//	limit = 2
//
//	[log]
//	level = "debug"
//	file = "logs/displaycard.log"
//
// Durations are written as Go duration strings ("10s", "2m").
package config
