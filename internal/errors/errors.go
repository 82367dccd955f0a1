// internal/errors/errors.go
package appErrors

import "fmt"

// ErrDeliveryFailed is a sentinel error for a failed Slack delivery
type ErrDeliveryFailed struct {
	Mode string
	Err  error
}

func (e *ErrDeliveryFailed) Error() string {
	return fmt.Sprintf("slack delivery via %s failed: %v", e.Mode, e.Err)
}

func (e *ErrDeliveryFailed) Unwrap() error {
	return e.Err
}

// Helper constructor
func NewDeliveryFailed(mode string, err error) error {
	return &ErrDeliveryFailed{Mode: mode, Err: err}
}

// ErrNotConfigured reports a delivery mode missing its credential
type ErrNotConfigured struct {
	What string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s is not configured", e.What)
}

func NewNotConfigured(what string) error {
	return &ErrNotConfigured{What: what}
}
