// Package probe provides readiness checks for the info endpoints: route table
// presence, MongoDB reachability and arbitrary ping functions.
package probe
