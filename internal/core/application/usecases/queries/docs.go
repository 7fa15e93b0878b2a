// Package queries contains the read side of the fulfillment service.
// Handlers read straight from the database with hand-written SQL and return flat
// response structs; no query writes, diffs or notifies.
//
// Order listing is scoped by the caller's role inside the SQL statement itself, so a
// status filter can only narrow what the caller may already see.
package queries
