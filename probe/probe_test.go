package probe_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/drblury/decrouter/probe"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type stubMongoPinger struct {
	err        error
	lastCtx    context.Context
	lastReadPF *readpref.ReadPref
}

func (s *stubMongoPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	s.lastCtx = ctx
	s.lastReadPF = rp
	return s.err
}

type routeCount int

func (c routeCount) Len() int { return int(c) }

func TestNewPingProbe(t *testing.T) {
	t.Run("nil function", func(t *testing.T) {
		if err := probe.NewPingProbe("cache", nil)(context.Background()); err == nil {
			t.Fatal("expected error when ping function is nil")
		}
	})

	t.Run("nil context is replaced", func(t *testing.T) {
		probeFunc := probe.NewPingProbe("cache", func(ctx context.Context) error {
			if ctx == nil {
				t.Fatal("expected non-nil context")
			}
			return nil
		})
		if err := probeFunc(nil); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("failure wraps error", func(t *testing.T) {
		sentinel := errors.New("boom")
		err := probe.NewPingProbe("cache", func(context.Context) error { return sentinel })(context.Background())
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected error to wrap sentinel, got %v", err)
		}
	})
}

func TestNewRoutesProbe(t *testing.T) {
	if err := probe.NewRoutesProbe(routeCount(0))(context.Background()); !errors.Is(err, probe.ErrNoRoutes) {
		t.Fatalf("expected ErrNoRoutes, got %v", err)
	}
	if err := probe.NewRoutesProbe(routeCount(4))(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := probe.NewRoutesProbe(nil)(context.Background()); err == nil {
		t.Fatal("expected error for nil router")
	}
}

func TestNewMongoPingProbe(t *testing.T) {
	t.Run("nil client", func(t *testing.T) {
		if err := probe.NewMongoPingProbe(nil, nil)(context.Background()); err == nil {
			t.Fatal("expected error when client is nil")
		}
	})

	t.Run("defaults to primary", func(t *testing.T) {
		stub := &stubMongoPinger{}
		if err := probe.NewMongoPingProbe(stub, nil)(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if stub.lastCtx == nil {
			t.Fatal("expected context to be forwarded")
		}
		if stub.lastReadPF.Mode() != readpref.PrimaryMode {
			t.Fatalf("expected primary read preference, got %v", stub.lastReadPF.Mode())
		}
	})

	t.Run("failure", func(t *testing.T) {
		sentinel := errors.New("unreachable")
		stub := &stubMongoPinger{err: sentinel}
		err := probe.NewMongoPingProbe(stub, readpref.Secondary())(context.Background())
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected wrapped sentinel, got %v", err)
		}
		if stub.lastReadPF.Mode() != readpref.SecondaryMode {
			t.Fatalf("expected secondary read preference, got %v", stub.lastReadPF.Mode())
		}
	})
}

func ExampleNewRoutesProbe() {
	fmt.Println(probe.NewRoutesProbe(routeCount(2))(context.Background()))
	// Output: <nil>
}
