package service

import "time"

// Clock supplies the current time. Expiry checks in the domain go through this
// interface instead of calling time.Now directly, so tests can advance time
// deterministically.
type Clock interface {
	Now() time.Time
}
