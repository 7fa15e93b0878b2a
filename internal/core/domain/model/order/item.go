package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not built through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// ItemStatus records the collection outcome of a single line item.
type ItemStatus int

const (
	// ItemStatusUnset means nobody has checked the item yet.
	ItemStatusUnset ItemStatus = iota
	ItemStatusCollected
	ItemStatusUnavailable
)

// ParseItemStatus accepts "", "collected" and "unavailable".
func ParseItemStatus(s string) (ItemStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ItemStatusUnset, nil
	case "collected":
		return ItemStatusCollected, nil
	case "unavailable":
		return ItemStatusUnavailable, nil
	}
	return ItemStatusUnset, errs.NewValueIsInvalidErrorWithCause("item status is invalid",
		fmt.Errorf("%q is not a valid item status", s))
}

// String returns the wire name; ItemStatusUnset renders as the empty string.
func (s ItemStatus) String() string {
	switch s {
	case ItemStatusCollected:
		return "collected"
	case ItemStatusUnavailable:
		return "unavailable"
	case ItemStatusUnset:
		return ""
	}
	return ""
}

func (s ItemStatus) Validate() error {
	if s < ItemStatusUnset || s > ItemStatusUnavailable {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// Item is a line of an order. Items are identified by name when an order is diffed,
// so two items of one order never share a name.
type Item struct {
	id            kernel.UUID
	name          string
	quantity      int
	status        ItemStatus
	isConstructed bool
}

// NewItem creates an item with a fresh identifier.
//
// Example:
//
//	item, err := order.NewItem("book", 3, order.ItemStatusUnset)
func NewItem(name string, quantity int, status ItemStatus) (Item, error) {
	return RestoreItem(kernel.NewUUID(), name, quantity, status)
}

// RestoreItem rebuilds an item read from persistence.
func RestoreItem(id kernel.UUID, name string, quantity int, status ItemStatus) (Item, error) {
	item := Item{isConstructed: true}
	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return Item{}, err
	}
	item.status = status
	return item, nil
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) ID() kernel.UUID {
	return i.id
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Status() ItemStatus {
	return i.status
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
