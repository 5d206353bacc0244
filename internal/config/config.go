// Package config loads service configuration from the environment and
// an optional config file, with hot reload of the CORS allow-list when
// a file is used.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

// Config holds the service configuration.
type Config struct {
	HTTPPort         string
	AllowedOrigins   []string
	StoreBackend     string
	FirestoreProject string
	// AuthTokens maps bearer tokens to the subject they belong to.
	AuthTokens map[string]string
}

// Manager wraps viper and serves thread-safe reads of the current
// configuration. When a config file is in use, file changes update the
// origin allow-list without a restart.
type Manager struct {
	v  *viper.Viper
	mu sync.RWMutex

	current *Config
}

// Load reads configuration. Environment variables override file
// settings; configFile may be empty.
func Load(configFile string) (*Manager, error) {
	v := viper.New()

	v.SetDefault("http_port", "8080")
	v.SetDefault("allowed_cors_origins", "")
	v.SetDefault("store_backend", BackendFirestore)
	v.SetDefault("firestore_project", "")
	v.SetDefault("auth_tokens", "")

	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	m := &Manager{v: v}
	m.reload()

	if configFile != "" {
		v.OnConfigChange(func(fsnotify.Event) { m.reload() })
		v.WatchConfig()
	}
	return m, nil
}

// Current returns a copy of the current configuration.
func (m *Manager) Current() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *m.current
}

// AllowedOrigins returns the current CORS allow-list. The transport
// layer calls this per request so hot reloads take effect immediately.
func (m *Manager) AllowedOrigins() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.AllowedOrigins
}

func (m *Manager) reload() {
	cfg := &Config{
		HTTPPort:         m.v.GetString("http_port"),
		AllowedOrigins:   splitList(m.v.GetString("allowed_cors_origins")),
		StoreBackend:     m.v.GetString("store_backend"),
		FirestoreProject: m.v.GetString("firestore_project"),
		AuthTokens:       parseTokens(m.v.GetString("auth_tokens")),
	}

	m.mu.Lock()
	m.current = cfg
	m.mu.Unlock()
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseTokens parses a comma-separated list of subject:token pairs
// into a token→subject table. Malformed entries are skipped.
func parseTokens(raw string) map[string]string {
	tokens := make(map[string]string)
	for _, entry := range splitList(raw) {
		subject, token, ok := strings.Cut(entry, ":")
		if !ok || subject == "" || token == "" {
			continue
		}
		tokens[token] = subject
	}
	return tokens
}
