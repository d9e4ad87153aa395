// Package config loads runtime configuration for the settings CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables prefixed with GOPHSETTINGS_.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-n string   settings namespace
//	-d string   blob store driver: memory, sqlite, postgres, s3
//	-s string   path of the SQLite database file
//	-p string   PostgreSQL DSN
//	-l string   log level: debug, info, warn, error
//	-t int      initialization timeout (seconds)
//
// # JSON schema
//
//	{
//	  "namespace": "#Settings#",
//	  "store_driver": "sqlite",
//	  "sqlite_path": "settings.db",
//	  "postgres_dsn": "postgres://...",
//	  "s3_bucket": "settings",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/",
//	  "s3_access_key": "admin",
//	  "s3_secret_key": "secretpassword",
//	  "s3_prefix": "settings/",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "init_timeout": "5s"
//	}
package config
