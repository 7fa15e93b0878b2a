package notification

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Category drives how a client highlights an in-app notification.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryInfo
	CategoryAlert
	CategorySuccess
)

// ParseCategory accepts "info", "alert" and "success".
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return CategoryInfo, nil
	case "alert":
		return CategoryAlert, nil
	case "success":
		return CategorySuccess, nil
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%q is not a valid category", s))
}

func (c Category) Validate() error {
	if c <= CategoryUnknown || c > CategorySuccess {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	switch c {
	case CategoryInfo:
		return "info"
	case CategoryAlert:
		return "alert"
	case CategorySuccess:
		return "success"
	case CategoryUnknown:
	}
	return "Unknown"
}
