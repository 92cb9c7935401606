// Package hosting holds the front of house seating helpers.
package hosting

// AddToWaitlist does nothing yet.
func AddToWaitlist() {}
