package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophsettings/internal/appsettings"
	"github.com/dmitrijs2005/gophsettings/internal/blobstore"
	"github.com/dmitrijs2005/gophsettings/internal/config"
	"github.com/dmitrijs2005/gophsettings/internal/logging"
	"github.com/dmitrijs2005/gophsettings/internal/settings"
)

// openStore is a test seam for blobstore.Open.
var openStore = blobstore.Open

type App struct {
	settings *appsettings.Settings
	store    blobstore.Store
	log      logging.Logger
	in       io.Reader
	out      io.Writer
}

// NewApp opens the configured store and preloads the settings. A partial
// preload is logged and tolerated; the missing settings resolve on first use.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	codec, err := codecFor(c.Codec)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, c)
	if err != nil {
		return nil, err
	}

	s := appsettings.NewInNamespace(c.Namespace, store,
		settings.WithLogger(log),
		settings.WithCodec(codec),
		settings.WithTTL(c.ValueTTL),
	)

	initCtx := ctx
	if c.InitTimeout > 0 {
		var cancel context.CancelFunc
		initCtx, cancel = context.WithTimeout(ctx, c.InitTimeout)
		defer cancel()
	}
	if err := s.InitializeAsync(initCtx); err != nil {
		log.Warn(ctx, "settings preload incomplete", "error", err)
	}

	return newApp(s, store, log, os.Stdin, os.Stdout), nil
}

func codecFor(name string) (settings.Codec, error) {
	switch name {
	case "", config.CodecJSON:
		return settings.JSONCodec{}, nil
	case config.CodecProto:
		return settings.ProtoCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

func newApp(s *appsettings.Settings, store blobstore.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{settings: s, store: store, log: log, in: in, out: out}
}

// Run starts the REPL and closes the store when it returns.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Error(ctx, "close store", "error", err)
		}
	}()

	interactive := isTerminal(a.in)
	if interactive {
		fmt.Fprintf(a.out, "Settings console, namespace %q (type 'help' for commands)\n", a.settings.Namespace())
	}

	prompt := func() string { return "" }
	if interactive {
		prompt = func() string { return "settings> " }
	}

	return runREPL(ctx, a, prompt, bufio.NewScanner(a.in), a.out)
}
