package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophsettings/internal/appsettings"
)

// execIface is the command surface the REPL drives.
// App satisfies it; tests provide a recording stub.
type execIface interface {
	Get(ctx context.Context, name string) error
	Set(ctx context.Context, name, value string) error
	List(ctx context.Context) error
	Keys(ctx context.Context) error
}

func namesInOrder() []string {
	return appsettings.Names
}

// runREPL reads one command per line and dispatches it to a. Command errors
// are printed and the loop continues. It returns on "exit", "quit", EOF or
// context cancellation, even while waiting for input; only a read error is
// returned.
func runREPL(ctx context.Context, a execIface, prompt func() string, scanner *bufio.Scanner, out io.Writer) error {
	done := make(chan struct{})
	defer close(done)
	lines, readErr := scanLines(scanner, done)

	for {
		if ctx.Err() != nil {
			return nil
		}
		if p := prompt(); p != "" {
			fmt.Fprint(out, p)
		}

		var raw string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			raw = l
		}

		line := strings.TrimSpace(raw)
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		var err error
		switch cmd {
		case "help":
			fmt.Fprintln(out, "Available commands: get <name>, set <name> <value>, list, keys, exit")
			fmt.Fprintln(out, "Settings:", strings.Join(namesInOrder(), ", "))

		case "get":
			if rest == "" {
				fmt.Fprintln(out, "Usage: get <name>")
				continue
			}
			err = a.Get(ctx, rest)

		case "set":
			name, value, ok := strings.Cut(rest, " ")
			if !ok || name == "" {
				fmt.Fprintln(out, "Usage: set <name> <value>")
				continue
			}
			err = a.Set(ctx, name, strings.TrimSpace(value))

		case "l", "list":
			err = a.List(ctx)

		case "keys":
			err = a.Keys(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return nil

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}

// scanLines feeds scanner lines to a channel so the caller can also wait on
// its context. The channel is closed at EOF, after the scan error (possibly
// nil) has been put on readErr. Closing done stops delivery.
func scanLines(scanner *bufio.Scanner, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}
