// Package info exposes status, liveness, readiness, version, route listing
// and OpenAPI endpoints. InfoHandler methods have the controller action
// signature, so the handler can be registered as a controller and mounted
// through a manifest like any other.
package info
