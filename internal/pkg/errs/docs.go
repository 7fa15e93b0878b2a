// Package errs provides the typed errors shared by every layer of the fulfillment service.
//
// Each error type follows the same shape:
//   - a sentinel (ErrForbidden, ErrObjectNotFound, ...) usable with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter maps sentinels to status codes:
//   - ErrForbidden: 403, the caller lacks the relationship to the order
//   - ErrObjectNotFound: 404
//   - ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: 400, raised before any state change
//   - ErrConflict: 409, e.g. entering an order into ERP twice
//
// NotificationDeliveryError never crosses the mutation boundary; the fanout logs it and moves on.
package errs
