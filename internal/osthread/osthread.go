// Package osthread identifies the OS thread the calling goroutine runs on.
// Callers that need a stable answer across calls must hold
// runtime.LockOSThread for the whole span.
package osthread
