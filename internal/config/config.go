package config

import "time"

// Config holds the proxy connection settings and application options.
type Config struct {
	ProxyBaseURL   string
	ProjectURN     string
	RequestTimeout time.Duration
	LogFile        string
	Silent         bool
}
