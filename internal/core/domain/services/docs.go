// Package services provides domain services that apply business rules across the
// order, user and notification models without owning any state.
//
// The package includes:
//   - AuthorizationPolicy: decides read, mutate, delete, create and ERP rights, and scopes listings
//   - NoticePlanner: decides who is notified about an order event and with which message
//
// Both services are pure: they take already-loaded aggregates and return decisions.
package services
