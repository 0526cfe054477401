package config

import (
	"encoding/json"
	"os"

	"github.com/euks-jp/passkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing.
type JsonConfig struct {
	DatabasePath  string `json:"database_path"`
	EncryptionKey string `json:"encryption_key"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags (flagx.JsonConfigFlags); when
// neither is given, no JSON is loaded. Empty JSON fields leave the current
// value untouched, so the file may override just one setting. Read or
// unmarshal errors panic (caller should recover if desired), matching the
// fail-fast behavior of parseFlags.
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.EncryptionKey != "" {
		cfg.EncryptionKey = jc.EncryptionKey
	}
}
