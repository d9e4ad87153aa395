package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) Get(ctx context.Context, name string) error {
	f.calls = append(f.calls, "get "+name)
	return f.err
}

func (f *fakeExec) Set(ctx context.Context, name, value string) error {
	f.calls = append(f.calls, "set "+name+"="+value)
	return f.err
}

func (f *fakeExec) List(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return f.err
}

func (f *fakeExec) Keys(ctx context.Context) error {
	f.calls = append(f.calls, "keys")
	return f.err
}

func runLines(t *testing.T, exec execIface, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, runREPL(context.Background(), exec, func() string { return "" }, sc, &out))
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}

	out := runLines(t, exec,
		"help",
		"",
		"get Boolean",
		"set Text hello   world",
		"list",
		"l",
		"keys",
		"foobar",
		"exit",
		"list",
	)

	assert.Equal(t, []string{
		"get Boolean",
		"set Text=hello   world",
		"list",
		"list",
		"keys",
	}, exec.calls)
	assert.Contains(t, out, "Available commands")
	assert.Contains(t, out, "Boolean, ListItem, Text")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_UsageMessages(t *testing.T) {
	exec := &fakeExec{}

	out := runLines(t, exec, "get", "set", "set Text", "quit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Usage: get <name>")
	assert.Contains(t, out, "Usage: set <name> <value>")
}

func TestRunREPL_ReportsCommandErrorsAndContinues(t *testing.T) {
	exec := &fakeExec{err: errors.New("store down")}

	out := runLines(t, exec, "get Text", "keys")

	assert.Len(t, exec.calls, 2)
	assert.Equal(t, 2, strings.Count(out, "Error: store down"))
}

func TestRunREPL_PromptPrinted(t *testing.T) {
	var out bytes.Buffer
	sc := bufio.NewScanner(strings.NewReader("exit\n"))

	require.NoError(t, runREPL(context.Background(), &fakeExec{}, func() string { return "settings> " }, sc, &out))
	assert.True(t, strings.HasPrefix(out.String(), "settings> "))
}

func TestRunREPL_StopsOnCanceledContext(t *testing.T) {
	exec := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sc := bufio.NewScanner(strings.NewReader("list\nkeys\n"))
	require.NoError(t, runREPL(ctx, exec, func() string { return "" }, sc, &out))
	assert.Empty(t, exec.calls)
}

func TestRunREPL_ReturnsWhenCanceledWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	exec := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(pr), io.Discard)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("REPL did not return after context cancellation")
	}
	assert.Empty(t, exec.calls)
}

func TestRunREPL_ReturnsReadError(t *testing.T) {
	pr, pw := io.Pipe()
	boom := errors.New("tty gone")
	_ = pw.CloseWithError(boom)

	err := runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewScanner(pr), io.Discard)
	require.ErrorIs(t, err, boom)
}
