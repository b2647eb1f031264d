// Package app composes the HTTP middleware pipeline that a router is mounted
// into. Middleware registered with Use runs in registration order after the
// built-in recovery, logging, metrics, CORS, timeout and OpenAPI validation
// layers; a request that falls through every layer receives a 404 problem
// document.
package app
