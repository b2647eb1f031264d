package probe

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Func is a health check; a non-nil error marks the resource unavailable.
type Func func(ctx context.Context) error

// PingFunc is the shape of the function wrapped by NewPingProbe.
type PingFunc func(ctx context.Context) error

// NewPingProbe wraps fn so that failures are reported under name.
func NewPingProbe(name string, fn PingFunc) Func {
	return func(ctx context.Context) error {
		if fn == nil {
			return nilComponentError(name, "ping function")
		}

		if err := fn(contextOrBackground(ctx)); err != nil {
			return fmt.Errorf("%s probe failed: %w", name, err)
		}
		return nil
	}
}

// RouteCounter is satisfied by *router.Router.
type RouteCounter interface {
	Len() int
}

// ErrNoRoutes is reported by NewRoutesProbe when nothing is mounted.
var ErrNoRoutes = errors.New("no routes mounted")

// NewRoutesProbe fails while the router serves no routes.
func NewRoutesProbe(routes RouteCounter) Func {
	return func(context.Context) error {
		if routes == nil {
			return nilComponentError("routes", "router")
		}
		if routes.Len() == 0 {
			return fmt.Errorf("routes probe failed: %w", ErrNoRoutes)
		}
		return nil
	}
}

// MongoPinger captures the subset of *mongo.Client used for readiness checks.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// NewMongoPingProbe pings MongoDB through client. A nil readPref means
// readpref.Primary.
func NewMongoPingProbe(client MongoPinger, readPref *readpref.ReadPref) Func {
	return func(ctx context.Context) error {
		if client == nil {
			return nilComponentError("mongo", "client")
		}

		rp := readPref
		if rp == nil {
			rp = readpref.Primary()
		}

		if err := client.Ping(contextOrBackground(ctx), rp); err != nil {
			return fmt.Errorf("mongo probe failed: %w", err)
		}
		return nil
	}
}
