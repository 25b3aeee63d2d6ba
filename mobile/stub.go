//go:build !mobile

// Package mobile is the ebitenmobile binding for Descent. It is empty
// unless built with the mobile tag.
package mobile

// RequestedOrientation always returns an empty string without the mobile tag.
func RequestedOrientation() string { return "" }

// OrientationLocked always returns false without the mobile tag.
func OrientationLocked(string) bool { return false }
