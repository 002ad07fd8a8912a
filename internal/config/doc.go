// Package config loads the learnsync configuration from environment
// variables, command-line flags, and an optional JSON file, merges the
// sources with mergo (first non-zero value wins), and exposes typed
// client and server views of the merged result.
package config
