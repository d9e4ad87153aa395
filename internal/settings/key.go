package settings

import "fmt"

// Separator joins a namespace and a property name.
const Separator = ":"

// BuildKey derives the store key "{namespace}:{propertyName}".
func BuildKey(namespace, propertyName string) (string, error) {
	if propertyName == "" {
		return "", fmt.Errorf("%w: property name is empty", ErrInvalidArgument)
	}
	return namespace + Separator + propertyName, nil
}
