// Package appsettings is the application's own settings type: three typed
// properties stored under the "#Settings#" namespace.
//
// Typical startup:
//
//	s := appsettings.New(store, settings.WithLogger(log))
//	if err := s.InitializeAsync(ctx); err != nil {
//		log.Warn(ctx, "some settings not preloaded", "error", err)
//	}
//	enabled, err := s.Boolean(ctx)
package appsettings
