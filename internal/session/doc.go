// Package session implements the control surface state machine: it validates
// user input, starts the fetch and download operations and applies the events
// they stream back to its state and to a View.
package session
