package domain

import (
	"errors"
	"fmt"
)

var (
	// Value object validation.
	ErrRouteTooShort     = errors.New("route must contain at least 2 nodes")
	ErrSameOriginAndDest = errors.New("origin and destination must be different")
	ErrNegativeFlow      = errors.New("flow must be non-negative")
	ErrNegativeSalary    = errors.New("operator salary must be non-negative")
	ErrEmptyFleet        = errors.New("fleet composition must include at least one bus")
	ErrOperatorMismatch  = errors.New("each bus must have a corresponding operator")

	// Assignment state.
	ErrUnknownBus           = errors.New("bus is not in the fleet")
	ErrBusAlreadyAssigned   = errors.New("bus is already assigned")
	ErrIncompleteAssignment = errors.New("not all buses have been assigned in this fleet assignment")
	ErrAssignmentNotFound   = errors.New("fleet assignment is not part of this design")

	// Flow analysis.
	ErrNoPath     = errors.New("no service path between origin and destination")
	ErrZeroDemand = errors.New("total demand across OD flows is zero")

	// Persistence.
	ErrRunNotFound = errors.New("evaluation run not found")
)

// InvalidDesignError reports the first topology rule a service network design
// violated during construction.
type InvalidDesignError struct {
	Reason string
}

func (e *InvalidDesignError) Error() string {
	return fmt.Sprintf("invalid service network design: %s", e.Reason)
}
