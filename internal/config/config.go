package config

import (
	"os"
	"time"

	"websim2api/internal/core"
	"websim2api/internal/registry"
	"websim2api/internal/util"
)

// ServerConfig server configuration
type ServerConfig struct {
	Port               string
	GinMode            string
	ClientAPIKeys      []string
	UpstreamAPIKey     string
	Registry           *registry.Registry
	HTTPClientSettings HTTPClientSettings
	Storage            core.StorageInterface
	Logger             core.Logger
}

// HTTPClientSettings HTTP client configuration
type HTTPClientSettings struct {
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	MaxConnsPerHost     int
	IdleConnTimeout     time.Duration
	TLSHandshakeTimeout time.Duration
	RequestTimeout      time.Duration
}

// DefaultHTTPClientSettings default HTTP client settings
func DefaultHTTPClientSettings() HTTPClientSettings {
	return HTTPClientSettings{
		MaxIdleConns:        core.HTTPMaxIdleConns,
		MaxIdleConnsPerHost: core.HTTPMaxIdleConnsPerHost,
		MaxConnsPerHost:     core.HTTPMaxConnsPerHost,
		IdleConnTimeout:     core.HTTPIdleConnTimeout,
		TLSHandshakeTimeout: core.HTTPTLSHandshakeTimeout,
		RequestTimeout:      core.HTTPRequestTimeout,
	}
}

// LoadServerConfigFromEnv loads server config from environment variables
func LoadServerConfigFromEnv(logger core.Logger) (ServerConfig, error) {
	clientAPIKeys := util.ParseEnvList(os.Getenv("CLIENT_API_KEYS"))
	if len(clientAPIKeys) == 0 {
		logger.Warn("CLIENT_API_KEYS is empty, inbound authentication disabled")
	} else {
		logger.Info("Loaded %d client API keys", len(clientAPIKeys))
	}

	upstreamAPIKey := os.Getenv("WEBSIM_API_KEY")
	if upstreamAPIKey == "" {
		logger.Warn("WEBSIM_API_KEY not set, upstream requests sent unauthenticated")
	}

	reg := registry.FromEnv()
	logger.Info("Registered %d models", len(reg.List()))

	port := util.GetEnvWithDefault("PORT", core.DefaultPort)
	ginMode := util.GetEnvWithDefault("GIN_MODE", core.DefaultGinMode)

	cfg := ServerConfig{
		Port:               port,
		GinMode:            ginMode,
		ClientAPIKeys:      clientAPIKeys,
		UpstreamAPIKey:     upstreamAPIKey,
		Registry:           reg,
		HTTPClientSettings: DefaultHTTPClientSettings(),
	}

	return cfg, nil
}
