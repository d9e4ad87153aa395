package appsettings

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidListItem = errors.New("invalid list item")

// ListEnum is the closed set of values of the ListItem setting.
type ListEnum int

const (
	Item1 ListEnum = iota
	Item2
	Item3
)

var listEnumNames = [...]string{"Item1", "Item2", "Item3"}

func (e ListEnum) String() string {
	if e < 0 || int(e) >= len(listEnumNames) {
		return fmt.Sprintf("ListEnum(%d)", int(e))
	}
	return listEnumNames[e]
}

// Valid reports whether e is one of the declared items.
func (e ListEnum) Valid() bool {
	return e >= Item1 && e <= Item3
}

// ParseListEnum accepts an item name, case-insensitively.
func ParseListEnum(s string) (ListEnum, error) {
	for i, name := range listEnumNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return ListEnum(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidListItem, s)
}
