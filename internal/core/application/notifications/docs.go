// Package notifications delivers planned notices over the in-app, push and email channels.
//
// Delivery runs after the order transaction has committed. Each channel is attempted once per
// recipient; failures are logged as *errs.NotificationDeliveryError and never reach the caller.
package notifications
