// Package notification holds what the fanout delivers and where: in-app Notification
// entries with their Category, and the PushSubscription endpoints of each user.
package notification
