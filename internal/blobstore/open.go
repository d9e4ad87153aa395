package blobstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/config"
)

// Open builds the Store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		store = NewMemory()
	case config.DriverSQLite:
		var s *SQLStore
		if s, err = OpenSQLite(ctx, cfg.SQLitePath); err == nil {
			store = s
		}
	case config.DriverPostgres:
		var s *SQLStore
		if s, err = OpenPostgres(ctx, cfg.PostgresDSN); err == nil {
			store = s
		}
	case config.DriverS3:
		var s *S3
		s, err = OpenS3(ctx, S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Prefix:       cfg.S3Prefix,
		})
		if err == nil {
			store = s
		}
	default:
		err = fmt.Errorf("%w: %q", common.ErrorUnknownDriver, cfg.StoreDriver)
	}

	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	return store, nil
}
