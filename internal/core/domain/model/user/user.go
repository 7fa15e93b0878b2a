package user

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrActorIsNotConstructed is returned for a zero-value Actor.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")
)

// Actor is the authenticated caller of an operation. Authentication happens upstream;
// the core only trusts what it is handed here.
type Actor struct {
	id            kernel.UUID
	username      string
	role          Role
	isConstructed bool
}

// NewActor builds the caller identity.
//
// Example:
//
//	actor, err := user.NewActor(id, "sara", user.RoleTaker)
func NewActor(id kernel.UUID, username string, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{
		id:            id,
		username:      strings.TrimSpace(username),
		role:          role,
		isConstructed: true,
	}, nil
}

func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

// Username may be empty when the authenticator did not provide one.
func (a Actor) Username() string {
	return a.username
}

func (a Actor) Role() Role {
	return a.role
}

// DisplayName is used in notification texts.
func (a Actor) DisplayName() string {
	if a.username == "" {
		return a.role.String()
	}
	return a.username
}

// User is the read-only profile of an account. This service never creates or edits users.
type User struct {
	id       kernel.UUID
	username string
	role     Role
	email    string
}

// RestoreUser rebuilds a user read from the users table. Email is optional.
func RestoreUser(id kernel.UUID, username string, role Role, email string) (User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return User{}, err
	}
	if strings.TrimSpace(username) == "" {
		return User{}, errs.NewValueIsRequiredError("username")
	}
	return User{
		id:       id,
		username: username,
		role:     role,
		email:    strings.TrimSpace(email),
	}, nil
}

func (u User) ID() kernel.UUID {
	return u.id
}

func (u User) Username() string {
	return u.username
}

func (u User) Role() Role {
	return u.role
}

func (u User) Email() string {
	return u.email
}

// HasEmail reports whether email delivery is possible for this user.
func (u User) HasEmail() bool {
	return u.email != ""
}
