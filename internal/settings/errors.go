package settings

import "errors"

var (
	ErrInvalidArgument = errors.New("settings: invalid argument")
	ErrDeserialization = errors.New("settings: deserialization failed")
	ErrStoreFailure    = errors.New("settings: store failure")
	ErrUnsupportedType = errors.New("settings: unsupported value type")
)
