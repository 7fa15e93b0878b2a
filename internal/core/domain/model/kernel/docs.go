// Package kernel holds the value objects shared by every aggregate of the fulfillment domain.
//
// The package includes:
//   - UUID: identifier wrapper with set helpers used for assignee comparison
//   - City: optional destination restricted to a closed set of names
//
// Zero values are meaningful only where documented: a zero City is "no city",
// a zero UUID is invalid.
package kernel
