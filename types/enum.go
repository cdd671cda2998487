package types

import (
	"errors"
	"strings"
)

// ErrNoEnumValues is returned when an enum is constructed without any
// allowed values.
var ErrNoEnumValues = errors.New("enum requires at least one allowed value")

// EnumValidator matches input against a fixed, case-insensitive set of
// allowed values. Unlike the other validators it is stateful: it closes
// over the declared set.
type EnumValidator struct {
	values  []string
	allowed map[string]struct{}
}

// NewEnum creates an enum validator over the given allowed values. Values
// are lower-cased and kept in declaration order; the first declared value
// doubles as the coercion fallback. Constructing with zero values fails.
func NewEnum(values ...string) (*EnumValidator, error) {
	if len(values) == 0 {
		return nil, ErrNoEnumValues
	}

	e := &EnumValidator{
		values:  make([]string, 0, len(values)),
		allowed: make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		lower := strings.ToLower(v)
		if _, seen := e.allowed[lower]; seen {
			continue
		}
		e.values = append(e.values, lower)
		e.allowed[lower] = struct{}{}
	}

	return e, nil
}

// MustEnum is like NewEnum but panics on construction failure. Intended for
// static command-tree definitions.
func MustEnum(values ...string) *EnumValidator {
	e, err := NewEnum(values...)
	if err != nil {
		panic(err)
	}

	return e
}

func (e *EnumValidator) Name() string { return "enum" }

func (e *EnumValidator) Description() string {
	return "one of: " + strings.Join(e.values, ", ")
}

func (e *EnumValidator) IsValid(raw string) bool {
	_, ok := e.allowed[strings.ToLower(raw)]

	return ok
}

// Coerce returns the declared value matching raw case-insensitively, and
// the first declared value when raw is not a member. Falling back instead
// of failing is a deliberate leniency policy unique to enums.
func (e *EnumValidator) Coerce(raw string) any {
	lower := strings.ToLower(raw)
	if _, ok := e.allowed[lower]; ok {
		return lower
	}

	return e.values[0]
}

// Values returns the allowed values in declaration order.
func (e *EnumValidator) Values() []string {
	values := make([]string, len(e.values))
	copy(values, e.values)

	return values
}
