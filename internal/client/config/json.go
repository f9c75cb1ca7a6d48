package config

import (
	"encoding/json"
	"os"

	"github.com/wikiweb/wikictl/internal/flagx"
)

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. Missing flag means no JSON source; read or unmarshal errors
// panic, since a config file that exists but cannot be used is a startup
// fault.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc Config

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
