// Package example is a runnable service built on decrouter. Its controllers
// directory holds one manifest per controller and is embedded into the
// binary; NewApp binds the manifests to the users, system and metrics
// controllers and mounts the router on an app.App.
//
// Configuration comes from the environment:
//
//	DEBUG_PORT        listen port, 3456 when unset or invalid
//	LOG_LEVEL         debug, info, warn or error
//	MONGO_URI         adds a MongoDB ping to /system/readyz
//	REQUEST_TIMEOUT   per-request deadline
//	SHUTDOWN_TIMEOUT  graceful shutdown budget
package example
