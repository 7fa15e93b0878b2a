// Package activity models the journal of administrative actions, such as an admin
// deleting an order that belongs to someone else.
package activity
