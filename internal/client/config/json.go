package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Soham964/AGRO/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is an integer number of seconds; after parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	BaseURL               string `json:"base_url"`
	RequestTimeoutSeconds *int   `json:"request_timeout"`
	DatabasePath          string `json:"database_path"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. When no file is given, the Config is left as-is.
// Read or unmarshal errors panic; the intended usage is
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeoutSeconds != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
