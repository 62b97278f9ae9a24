// Package config provides configuration loading and defaults for tend.
package config

// DefaultConfigDir is the default location for tend configuration.
const DefaultConfigDir = "~/.config/tend"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "tend.db"

// DefaultModelName is the filename for the trained score model artifact.
const DefaultModelName = "daily_score_model.json"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultWindow is the reporting window used when none is requested.
const DefaultWindow = "today"

// DefaultListenAddr is the address the HTTP API binds to.
const DefaultListenAddr = ":8719"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
