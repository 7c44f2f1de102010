// Package order provides the domain entities and business logic for a
// table's order and its meal items. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns a table's append-only meal item sequence
//   - MealItem: One unit of food with an independent preparation lifecycle
//   - Status: The monotonic aggregate state machine (Received -> Preparing -> Completed)
//   - MealItemStatus: The per-item state machine (Pending -> Preparing -> Completed)
//
// Key business rules:
//   - Meal items are appended, never deleted; removal is a flag, not a deletion
//   - The aggregate status advances to Preparing when the first item starts
//     cooking and never regresses to Received
//   - A removed item refuses to start preparing, but an item already cooking
//     when removed still finishes
//
// The aggregate is not internally synchronized: the repository serializes
// all access through per-table locks and hands out deep copies via Clone.
package order
