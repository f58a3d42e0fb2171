package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		SecretKey     string   `json:"secret_key"`
		AccessWindow  Duration `json:"access_window"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend       string `json:"backend"`
			MediaDir      string `json:"media_dir"`
			MediaURL      string `json:"media_url"`
			MaxUploadSize int64  `json:"max_upload_size"`
		} `json:"files,omitempty"`

		S3 struct {
			Bucket     string   `json:"bucket"`
			Region     string   `json:"region"`
			Endpoint   string   `json:"endpoint"`
			AccessKey  string   `json:"access_key"`
			SecretKey  string   `json:"secret_key"`
			PresignTTL Duration `json:"presign_ttl"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		PublicURL      string   `json:"public_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Login          string   `json:"login"`
		Password       string   `json:"password"`
	} `json:"adapter,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			SecretKey:     jsonCfg.App.SecretKey,
			AccessWindow:  time.Duration(jsonCfg.App.AccessWindow),
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend:       jsonCfg.Storage.Files.Backend,
				MediaDir:      jsonCfg.Storage.Files.MediaDir,
				MediaURL:      jsonCfg.Storage.Files.MediaURL,
				MaxUploadSize: jsonCfg.Storage.Files.MaxUploadSize,
			},
			S3: S3{
				Bucket:     jsonCfg.Storage.S3.Bucket,
				Region:     jsonCfg.Storage.S3.Region,
				Endpoint:   jsonCfg.Storage.S3.Endpoint,
				AccessKey:  jsonCfg.Storage.S3.AccessKey,
				SecretKey:  jsonCfg.Storage.S3.SecretKey,
				PresignTTL: time.Duration(jsonCfg.Storage.S3.PresignTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			PublicURL:      jsonCfg.Server.PublicURL,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Login:          jsonCfg.Adapter.Login,
			Password:       jsonCfg.Adapter.Password,
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
