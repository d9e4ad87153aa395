package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gophsettings/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// keep the value already present in Config.
type JsonConfig struct {
	Namespace      string `json:"namespace"`
	StoreDriver    string `json:"store_driver"`
	SQLitePath     string `json:"sqlite_path"`
	PostgresDSN    string `json:"postgres_dsn"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
	S3Prefix       string `json:"s3_prefix"`
	Codec          string `json:"codec"`
	ValueTTL       string `json:"value_ttl"`
	LogLevel       string `json:"log_level"`
	LogFormat      string `json:"log_format"`
	InitTimeout    string `json:"init_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config. Panics on read, unmarshal or duration errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.Namespace, jc.Namespace)
	overlay(&cfg.StoreDriver, jc.StoreDriver)
	overlay(&cfg.SQLitePath, jc.SQLitePath)
	overlay(&cfg.PostgresDSN, jc.PostgresDSN)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)
	overlay(&cfg.S3Prefix, jc.S3Prefix)
	overlay(&cfg.Codec, jc.Codec)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)

	overlayDuration(&cfg.InitTimeout, jc.InitTimeout)
	overlayDuration(&cfg.ValueTTL, jc.ValueTTL)
}

func overlayDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
