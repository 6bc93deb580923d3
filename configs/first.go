package configs

import (
	"errors"
	"fmt"
)

// Lookup returns the value at path from the first file defining it.
func Lookup[T any](loader Loader, path string) (T, error) {
	for value, err := range All[T](loader, path) {
		return value, err
	}
	var zero T
	return zero, fmt.Errorf("%w: %s", ErrValueNotFound, path)
}

func First[T any](loader Loader, path string) (T, error) {
	value, err := Lookup[T](loader, path)
	if errors.Is(err, ErrValueNotFound) {
		return value, nil
	}
	return value, err
}
