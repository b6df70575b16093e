package config

import "time"

// Built-in defaults, applied as the lowest priority configuration layer.
const (
	DefaultHTTPAddress      = "localhost:8000"
	DefaultDSN              = "file:travel_journal.db?_foreign_keys=on&_busy_timeout=5000"
	DefaultTokenIssuer      = "go-travel-journal"
	DefaultTokenDuration    = 72 * time.Hour
	DefaultPasswordHashCost = 10
	DefaultLogLevel         = "debug"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultUploadsDir       = "./uploads"
	DefaultStaticDir        = "./assets"
	DefaultPublicBaseURL    = "http://localhost:8000"
	DefaultMaxUploadSize    = 10 << 20
	DefaultAuthRateLimit    = 20
	DefaultAuthRateWindow   = time.Minute
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: DefaultDSN,
			},
			Files: Files{
				Backend:       FilesBackendLocal,
				UploadsDir:    DefaultUploadsDir,
				StaticDir:     DefaultStaticDir,
				PublicBaseURL: DefaultPublicBaseURL,
				MaxUploadSize: DefaultMaxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			CORSAllowedOrigins: []string{"*"},
			AuthRateLimit:      DefaultAuthRateLimit,
			AuthRateWindow:     DefaultAuthRateWindow,
		},
	}
}
