package info

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunChecksJoinsEveryFailure(t *testing.T) {
	ih := quietHandler()
	dbDown := errors.New("db down")
	ran := 0

	err := ih.runChecks(context.Background(), []ProbeFunc{
		func(context.Context) error { ran++; return dbDown },
		nil,
		func(context.Context) error { ran++; return nil },
		func(context.Context) error { ran++; return context.Canceled },
	})

	if ran != 3 {
		t.Fatalf("expected every non-nil check to run, ran %d", ran)
	}
	if !errors.Is(err, dbDown) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	for _, want := range []string{"probe 1 failed", "probe 4 was cancelled"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

func TestRunChecksSharesDeadline(t *testing.T) {
	ih := quietHandler(WithProbeTimeout(10 * time.Millisecond))

	err := ih.runChecks(context.Background(), []ProbeFunc{func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})
	if err == nil || !strings.Contains(err.Error(), "timed out after 10ms") {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestRunChecksWithoutChecks(t *testing.T) {
	if err := quietHandler().runChecks(context.Background(), nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestFilterProbesDropsNil(t *testing.T) {
	ok := func(context.Context) error { return nil }

	if got := filterProbes([]ProbeFunc{nil, nil}); got != nil {
		t.Fatalf("expected nil slice, got %d entries", len(got))
	}
	if got := filterProbes([]ProbeFunc{nil, ok, nil, ok}); len(got) != 2 {
		t.Fatalf("expected two probes, got %d", len(got))
	}
}
