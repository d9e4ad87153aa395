package cli

import (
	"context"
	"fmt"
)

func (a *App) Get(ctx context.Context, name string) error {
	v, err := a.settings.Get(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) Set(ctx context.Context, name, value string) error {
	if err := a.settings.Set(ctx, name, value); err != nil {
		return err
	}
	a.log.Info(ctx, "setting updated", "name", name)
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) List(ctx context.Context) error {
	all, err := a.settings.Describe(ctx)
	if err != nil {
		return err
	}
	for _, name := range namesInOrder() {
		fmt.Fprintf(a.out, "%-10s %s\n", name, all[name])
	}
	return nil
}

func (a *App) Keys(ctx context.Context) error {
	keys, err := a.store.Keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(a.out, "(no keys)")
		return nil
	}
	for _, k := range keys {
		fmt.Fprintln(a.out, k)
	}
	return nil
}
