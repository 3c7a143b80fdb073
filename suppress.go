package tracekit

import "sync/atomic"

// validationEnabled is the process-wide switch consulted by Check. It
// starts enabled.
var validationEnabled atomic.Bool

func init() {
	validationEnabled.Store(true)
}

// ValidationEnabled reports whether record-set checking is currently
// enabled.
func ValidationEnabled() bool {
	return validationEnabled.Load()
}

// SetValidation flips the process-wide validation switch and returns a
// function that restores the previous state. The restore function is safe
// to call from a deferred statement and may be called more than once.
//
// Example:
//
//	restore := tracekit.SetValidation(false)
//	defer restore()
func SetValidation(enabled bool) (restore func()) {
	prev := validationEnabled.Swap(enabled)
	return func() {
		validationEnabled.Store(prev)
	}
}

// SuppressValidation disables checking until the returned restore function
// runs. It is shorthand for SetValidation(false).
func SuppressValidation() (restore func()) {
	return SetValidation(false)
}
