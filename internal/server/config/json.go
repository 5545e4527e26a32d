package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gamefolio/internal/flagx"
	"github.com/dmitrijs2005/gamefolio/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON config
// files. It uses timex.Duration for interval fields, which parses both
// string values such as "15m" and integer nanoseconds. After unmarshalling,
// non-zero fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	AdminFingerprint      string         `json:"admin_fingerprint"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flag, when present. Missing flag means no JSON overlay. A file
// that cannot be read or parsed panics: a requested config file that does
// not apply is a deployment error, not something to run past.
func parseJson(config *Config) {
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

	if jc.EndpointAddr != "" {
		config.EndpointAddr = jc.EndpointAddr
	}
	if jc.DatabaseDSN != "" {
		config.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AdminFingerprint != "" {
		config.AdminFingerprint = jc.AdminFingerprint
	}
	if jc.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = jc.TokenValidityDuration.Duration
	}
	if jc.S3RootUser != "" {
		config.S3RootUser = jc.S3RootUser
	}
	if jc.S3RootPassword != "" {
		config.S3RootPassword = jc.S3RootPassword
	}
	if jc.S3Bucket != "" {
		config.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		config.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = jc.S3BaseEndpoint
	}
}
