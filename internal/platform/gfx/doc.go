// Package gfx runs Descent in a native window or on a phone through
// Ebitengine.
//
// The Ebitengine frontend is compiled with the ebiten build tag (desktop) or
// the mobile build tag (ebitenmobile). Touch zones, canvas fitting and the
// palette are plain Go and build everywhere so they can be tested headless.
package gfx
