// Package user describes the people acting on orders: the Role they hold, the Actor
// performing the current operation, and the read-only User profile used for delivery.
package user
