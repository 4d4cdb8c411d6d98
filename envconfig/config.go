// config.go - Konfiguration ueber Umgebungsvariablen
//
// Dieses Modul enthaelt:
// - Host: Gibt Scheme und Host zurueck (DIFFUSE_HOST)
// - AllowedOrigins: Gibt erlaubte Origins zurueck (DIFFUSE_ORIGINS)
// - LogLevel: Gibt Log-Level zurueck (DIFFUSE_DEBUG)
// - Seed: Gibt Standard-Seed zurueck (DIFFUSE_SEED)
// - Var/Bool/Uint: Utility-Getter
package envconfig

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Host returns the scheme and host the server listens on and clients
// connect to. Configurable via DIFFUSE_HOST; default http://127.0.0.1:11611.
func Host() *url.URL {
	defaultPort := "11611"

	s := strings.TrimSpace(Var("DIFFUSE_HOST"))
	scheme, hostport, ok := strings.Cut(s, "://")
	switch {
	case !ok:
		scheme, hostport = "http", s
	case scheme == "http":
		defaultPort = "80"
	case scheme == "https":
		defaultPort = "443"
	}

	hostport, path, _ := strings.Cut(hostport, "/")
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		host, port = "127.0.0.1", defaultPort
		if ip := net.ParseIP(strings.Trim(hostport, "[]")); ip != nil {
			host = ip.String()
		} else if hostport != "" {
			host = hostport
		}
	}

	if n, err := strconv.ParseInt(port, 10, 32); err != nil || n > 65535 || n < 0 {
		slog.Warn("invalid port, using default", "port", port, "default", defaultPort)
		port = defaultPort
	}

	return &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, port),
		Path:   path,
	}
}

// AllowedOrigins returns the allowed CORS origins. Configurable via
// DIFFUSE_ORIGINS (comma separated); localhost variants are always
// included.
func AllowedOrigins() (origins []string) {
	if s := Var("DIFFUSE_ORIGINS"); s != "" {
		origins = strings.Split(s, ",")
	}

	for _, origin := range []string{"localhost", "127.0.0.1", "0.0.0.0"} {
		origins = append(origins,
			fmt.Sprintf("http://%s", origin),
			fmt.Sprintf("https://%s", origin),
			fmt.Sprintf("http://%s", net.JoinHostPort(origin, "*")),
			fmt.Sprintf("https://%s", net.JoinHostPort(origin, "*")),
		)
	}

	return origins
}

// Debug reports whether debug logging is enabled via DIFFUSE_DEBUG.
var Debug = Bool("DIFFUSE_DEBUG")

// LogLevel returns the slog level derived from DIFFUSE_DEBUG.
func LogLevel() slog.Level {
	if Debug() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Seed returns the default noise seed via DIFFUSE_SEED. Zero (the
// default) means every request without an explicit seed gets a fresh
// random one.
func Seed() int64 {
	if s := Var("DIFFUSE_SEED"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			slog.Warn("invalid environment variable, ignoring", "key", "DIFFUSE_SEED", "value", s)
			return 0
		}
		return n
	}
	return 0
}

// Var reads an environment variable, trimming whitespace and quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Bool returns a function reading key as a boolean (default false).
func Bool(k string) func() bool {
	return func() bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return false
	}
}

// Uint returns a function reading key as a uint with a default value.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// EnvVar describes one configuration variable for help output.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns the full configuration for help output and startup logs.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"DIFFUSE_HOST":    {"DIFFUSE_HOST", Host(), "Host and scheme for the diffuse server"},
		"DIFFUSE_ORIGINS": {"DIFFUSE_ORIGINS", AllowedOrigins(), "Additional allowed CORS origins"},
		"DIFFUSE_DEBUG":   {"DIFFUSE_DEBUG", Debug(), "Enable debug logging"},
		"DIFFUSE_SEED":    {"DIFFUSE_SEED", Seed(), "Default noise seed for requests without one"},
	}
}

// Values returns the configuration as loggable key/value pairs.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
