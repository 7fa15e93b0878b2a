package user

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Role is the position of a user towards orders in general.
// The relationship to one particular order (creator, assignee) is decided per order.
type Role int

const (
	RoleUnknown Role = iota

	// RoleMaker creates orders.
	RoleMaker

	// RoleTaker fulfills orders assigned to them.
	RoleTaker

	// RoleAdmin reads and mutates every order.
	RoleAdmin

	// RoleAccounter reads every order and enters completed ones into the ERP.
	RoleAccounter
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "Unknown",
		RoleMaker:     "maker",
		RoleTaker:     "taker",
		RoleAdmin:     "admin",
		RoleAccounter: "accounter",
	}
}

// ParseRole converts the wire name of a role. Matching ignores case.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == normalized {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAccounter {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
