// Package common defines sentinel errors shared by the blob store drivers and
// the settings layer. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrorNotFound is returned by blob stores when a key is absent or expired.
	ErrorNotFound = errors.New("not found")

	// ErrorClosed is returned by blob stores used after Close.
	ErrorClosed = errors.New("store closed")

	// ErrorUnknownDriver is returned when the configured store driver is not supported.
	ErrorUnknownDriver = errors.New("unknown store driver")
)
