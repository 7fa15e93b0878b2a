package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ItemInput is an item as supplied by a caller, before it gets an identity.
type ItemInput struct {
	Name     string
	Quantity int
	Status   ItemStatus
}

// Patch is a partial update of an order. A nil field is absent and leaves the stored value alone.
// A non-nil field is supplied: an empty string clears a text field, a zero City clears the city,
// and an empty slice clears the items or the assignees.
type Patch struct {
	Title       *string
	Description *string
	City        *kernel.City
	Status      *Status
	Items       *[]ItemInput
	AssigneeIDs *[]kernel.UUID
}

// IsEmpty reports whether the patch supplies nothing at all.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.City == nil &&
		p.Status == nil && p.Items == nil && p.AssigneeIDs == nil
}

// Validate checks the supplied fields without looking at any order.
func (p Patch) Validate() error {
	var errList []error

	if p.Status != nil {
		errList = append(errList, p.Status.Validate())
	}
	if p.Items != nil {
		errList = append(errList, validateItemInputs(*p.Items))
	}
	if p.AssigneeIDs != nil {
		for _, id := range *p.AssigneeIDs {
			errList = append(errList, id.Validate())
		}
	}

	return errors.Join(errList...)
}

func validateItemInputs(items []ItemInput) error {
	var errList []error
	seen := make(map[string]struct{}, len(items))

	for _, in := range items {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			errList = append(errList, errs.NewValueIsRequiredError("item name"))
			continue
		}
		if in.Quantity <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid", fmt.Errorf("%s: %d is not greater than 0", name, in.Quantity)))
		}
		if err := in.Status.Validate(); err != nil {
			errList = append(errList, err)
		}
		if _, dup := seen[name]; dup {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"items are invalid", fmt.Errorf("item %q is listed more than once", name)))
		}
		seen[name] = struct{}{}
	}

	return errors.Join(errList...)
}
