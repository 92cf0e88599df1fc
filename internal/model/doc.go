// Package model defines domain data structures used across the app: playlist
// entries, download requests, session states and the typed events background
// operations stream to the UI.
package model
