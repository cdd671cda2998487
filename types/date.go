package types

import (
	"github.com/araddon/dateparse"
)

type dateValidator struct{}

func (dateValidator) Name() string        { return "date" }
func (dateValidator) Description() string { return "a date or timestamp" }

func (dateValidator) IsValid(raw string) bool {
	_, err := dateparse.ParseLocal(raw)

	return err == nil
}

// Coerce returns the parsed time.Time in the local location.
func (dateValidator) Coerce(raw string) any {
	t, _ := dateparse.ParseLocal(raw)

	return t
}
