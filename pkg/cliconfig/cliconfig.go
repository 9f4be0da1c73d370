// Package cliconfig resolves CLI defaults from the environment.
package cliconfig

import (
	"os"
	"strconv"
)

// DefaultAdminPort is the default admin API port.
const DefaultAdminPort = 4295

// Environment variable names.
const (
	EnvAdminURL  = "FAULTINJECT_ADMIN_URL"
	EnvAdminPort = "FAULTINJECT_ADMIN_PORT"
)

// GetAdminURL returns the admin API base URL: FAULTINJECT_ADMIN_URL if
// set, otherwise localhost with FAULTINJECT_ADMIN_PORT or the default
// port.
func GetAdminURL() string {
	if v := os.Getenv(EnvAdminURL); v != "" {
		return v
	}
	return "http://localhost:" + strconv.Itoa(GetAdminPort())
}

// GetAdminPort returns the admin API port, honoring FAULTINJECT_ADMIN_PORT.
func GetAdminPort() int {
	if v := os.Getenv(EnvAdminPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			return port
		}
	}
	return DefaultAdminPort
}
