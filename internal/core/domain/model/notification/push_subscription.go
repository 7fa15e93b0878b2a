package notification

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// PushSubscription is a browser push endpoint registered by a user.
// Subscriptions past their expiry are pruned instead of being sent to.
type PushSubscription struct {
	id        kernel.UUID
	userID    kernel.UUID
	endpoint  string
	p256dh    string
	auth      string
	expiresAt *time.Time
}

// NewPushSubscription registers a new endpoint for userID. expiresAt is optional.
func NewPushSubscription(userID kernel.UUID, endpoint, p256dh, auth string, expiresAt *time.Time) (PushSubscription, error) {
	return RestorePushSubscription(kernel.NewUUID(), userID, endpoint, p256dh, auth, expiresAt)
}

// RestorePushSubscription rebuilds a subscription from persistence.
func RestorePushSubscription(
	id, userID kernel.UUID,
	endpoint, p256dh, auth string,
	expiresAt *time.Time,
) (PushSubscription, error) {
	errList := []error{id.Validate(), userID.Validate()}

	if u, err := url.Parse(endpoint); err != nil || u.Scheme != "https" || u.Host == "" {
		errList = append(errList, errs.NewValueIsInvalidError("endpoint must be an absolute https URL"))
	}
	if strings.TrimSpace(p256dh) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("p256dh"))
	}
	if strings.TrimSpace(auth) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("auth"))
	}
	if err := errors.Join(errList...); err != nil {
		return PushSubscription{}, err
	}

	return PushSubscription{
		id:        id,
		userID:    userID,
		endpoint:  endpoint,
		p256dh:    p256dh,
		auth:      auth,
		expiresAt: expiresAt,
	}, nil
}

// IsExpired reports whether the subscription has an expiry that is not after now.
func (s PushSubscription) IsExpired(now time.Time) bool {
	return s.expiresAt != nil && !s.expiresAt.After(now)
}

func (s PushSubscription) ID() kernel.UUID { return s.id }
func (s PushSubscription) UserID() kernel.UUID { return s.userID }
func (s PushSubscription) Endpoint() string { return s.endpoint }
func (s PushSubscription) P256dh() string { return s.p256dh }
func (s PushSubscription) Auth() string { return s.auth }
func (s PushSubscription) ExpiresAt() *time.Time { return s.expiresAt }
