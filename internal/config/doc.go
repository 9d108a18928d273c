// Package config provides configuration structures and utilities for a11ydoc.
// It defines the main configuration options for discovering documentation
// files, validation settings, and report generation preferences.
package config
