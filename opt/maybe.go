// Package opt provides a minimal optional-value type.
package opt

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Maybe is a value of type V that may or may not be present. The zero value
// is "no value". Unlike a pointer, a Maybe is copied by value and cannot be
// aliased.
type Maybe[V any] struct {
	defined bool
	value   V
}

// Some returns a Maybe that has a defined value.
func Some[V any](value V) Maybe[V] {
	return Maybe[V]{defined: true, value: value}
}

// None returns a Maybe with no value.
func None[V any]() Maybe[V] { return Maybe[V]{} }

// IsDefined returns true if the Maybe has a value.
func (m Maybe[V]) IsDefined() bool { return m.defined }

// Value returns the value if one is defined, or the zero value for the type
// otherwise.
func (m Maybe[V]) Value() V { return m.value }

// OrElse returns the value of the Maybe if any, or valueIfUndefined otherwise.
func (m Maybe[V]) OrElse(valueIfUndefined V) V {
	if m.defined {
		return m.value
	}
	return valueIfUndefined
}

// String returns a string representation of the value, or "[none]" if
// undefined. A defined value is rendered with its own String() method if it
// has one, or with the "%v" format otherwise.
func (m Maybe[V]) String() string {
	if m.defined {
		var v interface{} = m.value
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", m.value)
	}
	return "[none]"
}

// MarshalYAML marshals a defined value as the value itself, and an undefined
// one as a YAML null.
func (m Maybe[V]) MarshalYAML() (interface{}, error) {
	if m.defined {
		return m.value, nil
	}
	return nil, nil
}

// UnmarshalYAML sets the Maybe to None[V] if the node is a YAML null, or else
// unmarshals a value of type V as usual and sets the Maybe to Some(value).
// An absent field leaves the Maybe untouched, which for the zero value also
// means None.
func (m *Maybe[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*m = None[V]()
		return nil
	}
	var value V
	if err := node.Decode(&value); err != nil {
		return err
	}
	*m = Some(value)
	return nil
}
