// Package order provides the Order aggregate of the fulfillment domain: the order itself,
// its items, its status machine, the diff engine and the change records it produces.
//
// Key business rules:
//   - The creator of an order is fixed; assignees are a deduplicated, unordered set
//   - Status follows Archived -> Pending <-> InProgress -> Completed -> EnteredERP,
//     and the last step is only available through Order.EnterERP
//   - A patch is diffed before anything is applied; a failing patch leaves the order untouched
//   - Items are identified by name when diffing and replaced wholesale on update
//
// Change records are immutable. The package never persists or notifies; it only describes
// what changed so that the application layer can do both.
package order
