package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophsettings/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-n string   settings namespace
//	-d string   blob store driver
//	-s string   SQLite database path
//	-p string   PostgreSQL DSN
//	-e string   value codec (json, proto)
//	-l string   log level
//	-t int      initialization timeout (seconds)
//
// os.Args is filtered with flagx.FilterArgs first so that -c/-config and
// unknown arguments do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-n", "-d", "-s", "-p", "-e", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Namespace, "n", cfg.Namespace, "settings namespace")
	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "blob store driver (memory, sqlite, postgres, s3)")
	fs.StringVar(&cfg.SQLitePath, "s", cfg.SQLitePath, "SQLite database path")
	fs.StringVar(&cfg.PostgresDSN, "p", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.Codec, "e", cfg.Codec, "value codec (json, proto)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	initTimeout := fs.Int("t", int(cfg.InitTimeout.Seconds()), "initialization timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only an explicit -t overrides the JSON or env timeout
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.InitTimeout = time.Duration(*initTimeout) * time.Second
		}
	})
}
