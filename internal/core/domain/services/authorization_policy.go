package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/errs"
)

// AuthorizationPolicy decides what an actor may do with an order from the actor's role
// and their relationship to that order.
//
// Rules:
//   - admin: read and mutate any order; deletes others' orders only through the admin path
//   - creator: read, mutate and delete their own order
//   - current assignee: read and mutate, once the order is no longer an archived draft
//   - accounter: read any order and enter completed orders into the ERP
//   - anyone else: nothing
//
// Example usage:
//
//	policy := services.NewAuthorizationPolicy()
//	if err := policy.AuthorizeMutate(actor, o); err != nil {
//	    return err // *errs.ForbiddenError, never retried
//	}
type AuthorizationPolicy struct{}

func NewAuthorizationPolicy() AuthorizationPolicy {
	return AuthorizationPolicy{}
}

// CanRead reports whether actor may see the order.
func (AuthorizationPolicy) CanRead(actor user.Actor, o *order.Order) bool {
	if actor.Validate() != nil || o.Validate() != nil {
		return false
	}
	switch actor.Role() { //nolint:exhaustive // other roles fall through to the relationship check
	case user.RoleAdmin, user.RoleAccounter:
		return true
	}
	return o.IsCreator(actor.ID()) || isVisibleAssignee(actor, o)
}

// CanMutate reports whether actor may patch the order.
// Accounters have no generic mutation right unless they are creator or assignee.
func (AuthorizationPolicy) CanMutate(actor user.Actor, o *order.Order) bool {
	if actor.Validate() != nil || o.Validate() != nil {
		return false
	}
	if actor.Role() == user.RoleAdmin {
		return true
	}
	return o.IsCreator(actor.ID()) || isVisibleAssignee(actor, o)
}

// isVisibleAssignee is false on archived drafts, matching the listing scope.
func isVisibleAssignee(actor user.Actor, o *order.Order) bool {
	return o.IsAssignee(actor.ID()) && o.Status().IsVisibleToAssignees()
}

// CanDelete reports whether actor may delete the order through the regular path.
// Only the creator qualifies; admins use CanAdminDelete.
func (AuthorizationPolicy) CanDelete(actor user.Actor, o *order.Order) bool {
	if actor.Validate() != nil || o.Validate() != nil {
		return false
	}
	return o.IsCreator(actor.ID())
}

// CanAdminDelete reports whether actor may use the journaled administrative deletion.
func (AuthorizationPolicy) CanAdminDelete(actor user.Actor) bool {
	return actor.Validate() == nil && actor.Role() == user.RoleAdmin
}

// CanCreate reports whether actor may create orders at all.
func (AuthorizationPolicy) CanCreate(actor user.Actor) bool {
	if actor.Validate() != nil {
		return false
	}
	return actor.Role() == user.RoleMaker || actor.Role() == user.RoleAdmin
}

// CanEnterERP reports whether actor may hand completed orders over to the ERP.
func (AuthorizationPolicy) CanEnterERP(actor user.Actor) bool {
	if actor.Validate() != nil {
		return false
	}
	return actor.Role() == user.RoleAdmin || actor.Role() == user.RoleAccounter
}

func (p AuthorizationPolicy) AuthorizeRead(actor user.Actor, o *order.Order) error {
	if !p.CanRead(actor, o) {
		return forbidden("read order", actor, o)
	}
	return nil
}

func (p AuthorizationPolicy) AuthorizeMutate(actor user.Actor, o *order.Order) error {
	if !p.CanMutate(actor, o) {
		return forbidden("edit order", actor, o)
	}
	return nil
}

func (p AuthorizationPolicy) AuthorizeDelete(actor user.Actor, o *order.Order) error {
	if !p.CanDelete(actor, o) {
		return forbidden("delete order", actor, o)
	}
	return nil
}

func (p AuthorizationPolicy) AuthorizeAdminDelete(actor user.Actor) error {
	if !p.CanAdminDelete(actor) {
		return errs.NewForbiddenErrorWithCause("delete order as admin", fmt.Errorf("role %s", actor.Role()))
	}
	return nil
}

func (p AuthorizationPolicy) AuthorizeCreate(actor user.Actor) error {
	if !p.CanCreate(actor) {
		return errs.NewForbiddenErrorWithCause("create order", fmt.Errorf("role %s", actor.Role()))
	}
	return nil
}

func (p AuthorizationPolicy) AuthorizeEnterERP(actor user.Actor) error {
	if !p.CanEnterERP(actor) {
		return errs.NewForbiddenErrorWithCause("enter order into ERP", fmt.Errorf("role %s", actor.Role()))
	}
	return nil
}

func forbidden(action string, actor user.Actor, o *order.Order) error {
	if o.Validate() != nil {
		return errs.NewForbiddenError(action)
	}
	return errs.NewForbiddenErrorWithCause(action,
		fmt.Errorf("user %s (%s) has no access to order %s", actor.ID(), actor.Role(), o.ID()))
}

// ListingScope narrows an order listing to what the actor may see.
// A nil CreatorID or AssigneeID means "not restricted by this column".
type ListingScope struct {
	CreatorID       *kernel.UUID
	AssigneeID      *kernel.UUID
	ExcludeArchived bool
}

// IsUnrestricted reports whether the scope admits every order.
func (s ListingScope) IsUnrestricted() bool {
	return s.CreatorID == nil && s.AssigneeID == nil && !s.ExcludeArchived
}

// ListingScope derives the scope of an order listing from the actor's role:
// makers see the orders they created, takers the non-draft orders assigning them,
// admins and accounters everything.
func (AuthorizationPolicy) ListingScope(actor user.Actor) (ListingScope, error) {
	if err := actor.Validate(); err != nil {
		return ListingScope{}, err
	}

	id := actor.ID()
	switch actor.Role() {
	case user.RoleMaker:
		return ListingScope{CreatorID: &id}, nil
	case user.RoleTaker:
		return ListingScope{AssigneeID: &id, ExcludeArchived: true}, nil
	case user.RoleAdmin, user.RoleAccounter:
		return ListingScope{}, nil
	case user.RoleUnknown:
	}

	return ListingScope{}, errs.NewForbiddenError("list orders")
}
