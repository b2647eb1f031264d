// Package controller discovers routes from a directory of YAML manifests.
//
// A manifest names a registered controller, an optional path prefix and the
// routes it serves:
//
//	controller: users
//	prefix: /users
//	routes:
//	  - method: GET
//	    path: /
//	    action: List
//	  - method: GET
//	    path: /{id:[0-9]+}
//	    action: Get
//
// Each action names an exported method of the controller with one of the
// signatures
//
//	func(http.ResponseWriter, *http.Request)
//	func(http.ResponseWriter, *http.Request) error
//
// A manifest without routes falls back to the controller's own Routes when it
// implements Declarer.
package controller
