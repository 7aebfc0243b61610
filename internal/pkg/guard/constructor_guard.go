// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values can be told apart from instances
// built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard
// when no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing object went through its
// constructor. Embed it as a private field and call Validate from the
// object's own Validate method:
//
//	type AddPartnerCommand struct {
//	    partnerID string
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AddPartnerCommand) Validate() error {
//	    return c.guard.Validate(ErrAddPartnerCommandIsNotConstructed)
//	}
//
// The zero value is "not constructed". ConstructorGuard is immutable and safe
// to copy and to use from several goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
