// Package config persists user settings (download folder, quality, listing
// backend, language) in a key-value store backed by Fyne preferences.
package config
