package config

import (
	"net"
	"strconv"
	"strings"
)

// ServerAddress returns the host:port the HTTP server binds to
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.HTTPPort))
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Debug || (c.Logging.Level == "debug" && c.Logging.Format == "console")
}

// EventsEnabled reports whether lifecycle events leave the process
func (c *Config) EventsEnabled() bool {
	t := strings.ToLower(c.Events.Type)
	return t != "" && t != "none"
}

// Joined renders a list setting the way fiber's cors middleware expects it
func Joined(values []string) string {
	return strings.Join(values, ",")
}
