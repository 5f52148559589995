package scheduler

import "fmt"

// ErrConstraintNotFound is returned when no constraint is registered under a
// requested name.
type ErrConstraintNotFound struct {
	Name string
}

func NewErrConstraintNotFound(name string) ErrConstraintNotFound {
	return ErrConstraintNotFound{Name: name}
}

func (e ErrConstraintNotFound) Error() string {
	return "constraint not found for name: " + e.Name
}

// ErrConstraintAlreadyRegistered is returned when registering a constraint
// under a name that is already taken.
type ErrConstraintAlreadyRegistered struct {
	Name string
}

func NewErrConstraintAlreadyRegistered(name string) ErrConstraintAlreadyRegistered {
	return ErrConstraintAlreadyRegistered{Name: name}
}

func (e ErrConstraintAlreadyRegistered) Error() string {
	return fmt.Sprintf("constraint already registered for name: %s", e.Name)
}
