package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file. Durations are written as strings ("72h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend       string `json:"backend"`
			UploadsDir    string `json:"uploads_dir"`
			StaticDir     string `json:"static_dir"`
			PublicBaseURL string `json:"public_base_url"`
			MaxUploadSize int64  `json:"max_upload_size"`
			S3            struct {
				Bucket       string `json:"bucket"`
				Region       string `json:"region"`
				Endpoint     string `json:"endpoint"`
				AccessKey    string `json:"access_key"`
				SecretKey    string `json:"secret_key"`
				UsePathStyle bool   `json:"use_path_style"`
			} `json:"s3,omitempty"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		AuthRateLimit      int      `json:"auth_rate_limit"`
		AuthRateWindow     Duration `json:"auth_rate_window"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	files := jsonCfg.Storage.Files
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend:       files.Backend,
				UploadsDir:    files.UploadsDir,
				StaticDir:     files.StaticDir,
				PublicBaseURL: files.PublicBaseURL,
				MaxUploadSize: files.MaxUploadSize,
				S3: S3{
					Bucket:       files.S3.Bucket,
					Region:       files.S3.Region,
					Endpoint:     files.S3.Endpoint,
					AccessKey:    files.S3.AccessKey,
					SecretKey:    files.S3.SecretKey,
					UsePathStyle: files.S3.UsePathStyle,
				},
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			AuthRateLimit:      jsonCfg.Server.AuthRateLimit,
			AuthRateWindow:     time.Duration(jsonCfg.Server.AuthRateWindow),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
