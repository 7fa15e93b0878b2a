package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ErrAlreadyEnteredERP is returned when an order that already reached EnteredERP
// is handed to the ERP a second time.
var ErrAlreadyEnteredERP = errs.NewConflictError("order was already entered into ERP")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Archived ──> Pending <──> InProgress ──> Completed ──> EnteredERP
//	 (send)                                     (admin/accounter only)
//
// Generic patches move between the first four states along the arrows above.
// EnteredERP is reachable only through Order.EnterERP.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Archived is a draft that assignees do not see yet.
	Archived

	// Pending is the default initial status.
	Pending

	// InProgress means an assignee is working on the order.
	InProgress

	// Completed means the order was fulfilled and awaits ERP entry.
	Completed

	// EnteredERP is terminal.
	EnteredERP
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Archived:   "archived",
		Pending:    "pending",
		InProgress: "in-progress",
		Completed:  "completed",
		EnteredERP: "entered_erp",
	}
}

// patchTransitions lists the moves a generic status overwrite may perform.
func patchTransitions() map[Status][]Status {
	//nolint:exhaustive // EnteredERP and Unknown have no outgoing patch transitions
	return map[Status][]Status{
		Archived:   {Pending},
		Pending:    {InProgress},
		InProgress: {Pending, Completed},
	}
}

// ParseStatus converts the wire representation ("pending", "in-progress", ...) into a Status.
// Matching ignores case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any value outside the declared constants.
func (s Status) Validate() error {
	if s <= Unknown || s > EnteredERP {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "Unknown" for invalid values.
//
// Example:
//
//	fmt.Println(order.InProgress) // Output: "in-progress"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateInitial checks that s may be used when creating an order.
// Only Archived and Pending are accepted.
func (s Status) ValidateInitial() error {
	if s != Archived && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid initial status", s.String()),
		)
	}
	return nil
}

// TransitionTo performs a generic status overwrite.
//
// Valid transitions:
//   - Archived -> Pending (sending a draft)
//   - Pending -> InProgress, InProgress -> Pending
//   - InProgress -> Completed
//   - any status -> the same status (no-op)
//
// Every other move, including any move into EnteredERP, is a validation error.
//
// Example:
//
//	next, err := current.TransitionTo(order.InProgress)
//	if err != nil {
//	    return err
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if s == target {
		return s, nil
	}

	for _, allowed := range patchTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("cannot move from %s to %s", s.String(), target.String()),
	)
}

// EnterERP transitions Completed to EnteredERP.
// A second entry returns ErrAlreadyEnteredERP; any other source status is a validation error.
func (s Status) EnterERP() (Status, error) {
	switch s { //nolint:exhaustive // everything else is rejected below
	case Completed:
		return EnteredERP, nil
	case EnteredERP:
		return 0, ErrAlreadyEnteredERP
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to enter into ERP", s.String()),
	)
}

// IsVisibleToAssignees is false only for drafts.
func (s Status) IsVisibleToAssignees() bool {
	return s != Archived
}
