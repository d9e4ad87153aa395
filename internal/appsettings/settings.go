package appsettings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophsettings/internal/blobstore"
	"github.com/dmitrijs2005/gophsettings/internal/settings"
)

// Namespace is the key prefix of every application setting.
const Namespace = "#Settings#"

var ErrUnknownSetting = errors.New("unknown setting")

var (
	Boolean  = settings.Define("Boolean", true)
	ListItem = settings.Define("ListItem", Item2)
	Text     = settings.Define("Text", "Default text")
)

// Names lists the settings in display order.
var Names = []string{Boolean.Name, ListItem.Name, Text.Name}

type Settings struct {
	storage *settings.Storage
}

// New returns the application settings over store in the default namespace.
func New(store blobstore.Store, opts ...settings.Option) *Settings {
	return NewInNamespace(Namespace, store, opts...)
}

// NewInNamespace is New with an explicit namespace, for side-by-side profiles.
func NewInNamespace(namespace string, store blobstore.Store, opts ...settings.Option) *Settings {
	return &Settings{storage: settings.New(namespace, store, opts...)}
}

// InitializeAsync preloads every setting that already has a stored value.
func (s *Settings) InitializeAsync(ctx context.Context) error {
	return s.storage.InitializeAsync(ctx, Boolean, ListItem, Text)
}

func (s *Settings) Namespace() string {
	return s.storage.Namespace()
}

func (s *Settings) Boolean(ctx context.Context) (bool, error) {
	return Boolean.Get(ctx, s.storage)
}

func (s *Settings) SetBoolean(ctx context.Context, v bool) error {
	return Boolean.Set(ctx, s.storage, v)
}

// ListItem rejects stored values outside the declared items.
func (s *Settings) ListItem(ctx context.Context) (ListEnum, error) {
	v, err := ListItem.Get(ctx, s.storage)
	if err != nil {
		return 0, err
	}
	if !v.Valid() {
		return 0, fmt.Errorf("%w: %w: stored %d", settings.ErrDeserialization, ErrInvalidListItem, int(v))
	}
	return v, nil
}

func (s *Settings) SetListItem(ctx context.Context, v ListEnum) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidListItem, int(v))
	}
	return ListItem.Set(ctx, s.storage, v)
}

func (s *Settings) Text(ctx context.Context) (string, error) {
	return Text.Get(ctx, s.storage)
}

func (s *Settings) SetText(ctx context.Context, v string) error {
	return Text.Set(ctx, s.storage, v)
}

// Get returns the display form of the named setting.
func (s *Settings) Get(ctx context.Context, name string) (string, error) {
	switch name {
	case Boolean.Name:
		v, err := s.Boolean(ctx)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	case ListItem.Name:
		v, err := s.ListItem(ctx)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	case Text.Name:
		return s.Text(ctx)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
}

// Set parses raw according to the type of the named setting and stores it.
func (s *Settings) Set(ctx context.Context, name, raw string) error {
	switch name {
	case Boolean.Name:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		return s.SetBoolean(ctx, v)
	case ListItem.Name:
		v, err := ParseListEnum(raw)
		if err != nil {
			return err
		}
		return s.SetListItem(ctx, v)
	case Text.Name:
		return s.SetText(ctx, raw)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
}

// Describe returns the display value of every setting, seeding defaults for
// those not stored yet. It stops at the first failure.
func (s *Settings) Describe(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(Names))
	for _, name := range Names {
		v, err := s.Get(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}
