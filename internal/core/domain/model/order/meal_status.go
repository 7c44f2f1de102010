package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// MealItemStatus represents the independent preparation lifecycle of a
// single meal item.
//
// State transitions:
//
//	Pending ──> Preparing ──> Completed
//
// Removed is not a transition target in this chain: removal is a separate
// flag on the meal item that freezes the item in whatever status it had at
// flagging time. MealItemRemoved exists so removed items can still be
// reported distinctly in snapshots.
type MealItemStatus int

const (
	// MealItemUnknown represents an invalid or undefined status.
	MealItemUnknown MealItemStatus = iota

	// MealItemPending is the initial status of a freshly created meal item
	// waiting for a kitchen worker.
	MealItemPending

	// MealItemPreparing indicates a kitchen worker is cooking the item.
	MealItemPreparing

	// MealItemCompleted indicates the item has finished cooking.
	// This is a final state with no further transitions allowed.
	MealItemCompleted

	// MealItemRemoved is the reported status of an item whose removed flag
	// is set. It never appears as the stored lifecycle status.
	MealItemRemoved
)

func getMealItemStatusStrings() map[MealItemStatus]string {
	return map[MealItemStatus]string{
		MealItemUnknown:   "Unknown",
		MealItemPending:   "Pending",
		MealItemPreparing: "Preparing",
		MealItemCompleted: "Completed",
		MealItemRemoved:   "Removed",
	}
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any MealItemStatus value, including invalid ones.
func (s MealItemStatus) String() string {
	if str, ok := getMealItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartPreparing transitions the status to Preparing.
// The only valid starting state is Pending.
func (s MealItemStatus) StartPreparing() (MealItemStatus, error) {
	if s != MealItemPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"meal item status is invalid",
			fmt.Errorf("%s is not a valid status to start preparing", s.String()),
		)
	}
	return MealItemPreparing, nil
}

// Complete transitions the status to Completed.
// The only valid starting state is Preparing.
func (s MealItemStatus) Complete() (MealItemStatus, error) {
	if s != MealItemPreparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"meal item status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return MealItemCompleted, nil
}
