// Package clock provides the production implementation of the domain Clock.
package clock

import (
	"time"

	"hostelhub/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() service.Clock {
	return systemClock{}
}

// Now returns the current UTC time.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
