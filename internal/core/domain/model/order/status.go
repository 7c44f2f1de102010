package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the aggregate lifecycle state of a table's order.
// It implements a state machine with defined transitions to keep the
// order-level status monotonic.
//
// State transitions:
//
//	Received ──> Preparing ──> Completed
//
// The order advances from Received to Preparing the first time any of its
// meal items begins preparing and never regresses. Completed exists in the
// enum for external policies; the fulfillment core itself never sets it.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusReceived is the initial status when an order is opened for a table.
	StatusReceived

	// StatusPreparing indicates that at least one meal item has started cooking.
	StatusPreparing

	// StatusCompleted indicates the order has been fully served.
	// The fulfillment core never derives this status itself.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusReceived:  "Received",
		StatusPreparing: "Preparing",
		StatusCompleted: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusReceived:  "Received",
		StatusPreparing: "Preparing",
		StatusCompleted: "Completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Received, Preparing, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartPreparing transitions the status to Preparing.
//
// Valid transitions:
//   - Received -> Preparing (first item begins cooking)
//   - Preparing -> Preparing (further items begin cooking)
//
// Returns an error for any other starting state, so the aggregate status
// can never regress once it has moved past Preparing.
func (s Status) StartPreparing() (Status, error) {
	if s != StatusReceived && s != StatusPreparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start preparing", s.String()),
		)
	}
	return StatusPreparing, nil
}
