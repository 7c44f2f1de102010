// Package guard provides a defensive programming pattern that ensures value
// objects, entities, and commands are only created through their designated
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its
// constructor or created as a zero value. Embedding it in a struct and
// checking it in Validate() prevents direct struct initialization from
// bypassing invariant checks.
//
// The guard works by maintaining an internal flag that is only set to true
// when the object is created through the proper constructor function. Any
// attempt to use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrMenuItemNotConstructed = errors.New("MenuItem must be created via NewMenuItem")
//
//	type MenuItem struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMenuItem(name string) (MenuItem, error) {
//	    if name == "" {
//	        return MenuItem{}, errors.New("name is required")
//	    }
//	    return MenuItem{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m MenuItem) Validate() error {
//	    return m.guard.Validate(ErrMenuItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects so
// they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed
// through its designated constructor function.
//
// If the object was created as a zero value, this method returns the
// provided validation error; if validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
