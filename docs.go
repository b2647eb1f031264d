// Package decrouter builds net/http routers from a directory of controller
// manifests. Each manifest names a registered controller, an optional path
// prefix and the routes it serves; actions are bound to controller methods
// by name, so wiring mistakes fail at startup rather than on first request.
//
// # Packages
//
//   - controller: the registry, the manifest format and route discovery.
//   - router: the router factory. Routes wraps every request, matched or
//     not, in the Before and After hooks and dispatches the matched ones;
//     AllowedMethods answers the rest with 405, 501 or an OPTIONS reply
//     carrying an Allow header.
//   - app: the middleware pipeline the router is mounted on, with recovery,
//     logging, metrics, CORS, timeouts and optional OpenAPI validation.
//   - responder: JSON and problem+json responses with structured logging.
//   - info and probe: status, health, version, route and OpenAPI endpoints.
//   - jsonutil: sonic wrappers used for all JSON encoding.
//   - example: a runnable service wiring everything together.
//
// # Quick Start
//
//	reg := controller.NewRegistry()
//	reg.MustRegister("users", users)
//
//	rt, err := router.New(router.Config{
//	    ControllersDir: "controllers",
//	    Registry:       reg,
//	})
//	if err != nil {
//	    return err
//	}
//
//	a := app.New(app.WithLogger(logger))
//	a.Use(rt.Routes())
//	a.Use(rt.AllowedMethods())
//	return a.Listen(ctx, ":3456")
//
// with controllers/users.yaml:
//
//	controller: users
//	prefix: /users
//	routes:
//	  - {method: GET, path: /, action: List}
//	  - {method: GET, path: "/{id}", action: Get}
package decrouter
