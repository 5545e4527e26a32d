package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gamefolio/internal/flagx"
	"github.com/dmitrijs2005/gamefolio/internal/timex"
)

// JsonConfig is the DTO used exclusively for JSON unmarshalling. It uses
// timex.Duration so the timeout can be written either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	AdminFingerprint   string         `json:"admin_fingerprint"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	Language           string         `json:"language"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag means no overlay; an unreadable or malformed
// file panics, since a config file the operator asked for must apply.
func parseJson(cfg *Config) {
	fileName := flagx.ConfigFileName(os.Args[1:])
	if fileName == "" {
		return
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.AdminFingerprint != "" {
		cfg.AdminFingerprint = jc.AdminFingerprint
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Language != "" {
		cfg.Language = jc.Language
	}
}
