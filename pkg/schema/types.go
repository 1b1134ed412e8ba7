package schema

import (
	"fmt"
	"reflect"
)

// Type defines the contract for document field validation.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "scalar", "[scalar]").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// ScalarType accepts strings and the plain scalars YAML produces for bare names (0, 1, true).
type ScalarType struct{}

func (t *ScalarType) Name() string { return "scalar" }

func (t *ScalarType) Validate(value any) error {
	switch value.(type) {
	case string, int, int64, uint64, float64, bool:
		return nil
	default:
		return fmt.Errorf("expected scalar, got %T", value)
	}
}

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected slice, got %T", value)
	}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if err := t.elemType.Validate(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// MapType validates maps with scalar keys and values of a specific type.
type MapType struct {
	elemType Type
}

func (t *MapType) Name() string {
	return fmt.Sprintf("{scalar: %s}", t.elemType.Name())
}

func (t *MapType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return fmt.Errorf("expected map, got %T", value)
	}

	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key().Interface()
		if err := Scalar().Validate(key); err != nil {
			return fmt.Errorf("key %v: %w", key, err)
		}
		if err := t.elemType.Validate(iter.Value().Interface()); err != nil {
			return fmt.Errorf("key %v: %w", key, err)
		}
	}
	return nil
}

// --- Factory Functions ---

// Scalar creates a scalar type validator.
func Scalar() Type { return &ScalarType{} }

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// Map creates a map type validator for values of the given type.
func Map(elemType Type) Type {
	return &MapType{elemType: elemType}
}
