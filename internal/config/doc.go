// Package config loads and validates weft.json project configuration.
package config
