// Package router builds HTTP middleware from a directory of controller
// manifests. Mount Routes before AllowedMethods:
//
//	r, err := router.New(router.Config{ControllersDir: "controllers", Registry: reg})
//	if err != nil {
//	    return err
//	}
//	a.Use(r.Routes(), r.AllowedMethods())
//
// Routes dispatches matching requests to controller actions and lets every
// other request continue down the chain; AllowedMethods answers OPTIONS and
// rejects unsupported methods for paths that exist.
package router
