package pipeline

import (
	"errors"
	"strings"
	"testing"
)

// stepFunc adapts a function to the Step interface for tests.
type stepFunc struct {
	name string
	fn   func(any) (any, error)
}

func (s stepFunc) Name() string                { return s.name }
func (s stepFunc) Process(in any) (any, error) { return s.fn(in) }

func TestRunZeroStepsIsIdentity(t *testing.T) {
	p := New()

	out, err := p.Run("x")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "x" {
		t.Errorf("Run(%q) = %v, want %q", "x", out, "x")
	}
}

func TestRunThreadsOutputToNextStep(t *testing.T) {
	upper := stepFunc{name: "upper", fn: func(in any) (any, error) {
		return strings.ToUpper(in.(string)), nil
	}}
	exclaim := stepFunc{name: "exclaim", fn: func(in any) (any, error) {
		return in.(string) + "!", nil
	}}

	p := New(upper, exclaim)

	out, err := p.Run("hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "HELLO!" {
		t.Errorf("Run() = %v, want %q", out, "HELLO!")
	}
}

func TestRunPreservesStepOrder(t *testing.T) {
	var order []string
	mk := func(name string) Step {
		return stepFunc{name: name, fn: func(in any) (any, error) {
			order = append(order, name)
			return in, nil
		}}
	}

	p := New(mk("first"), mk("second"), mk("third"))

	if _, err := p.Run(nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("ran %d steps, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("step %d = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestRunStopsOnStepError(t *testing.T) {
	boom := errors.New("boom")
	failing := stepFunc{name: "failing", fn: func(any) (any, error) {
		return nil, boom
	}}
	after := stepFunc{name: "after", fn: func(any) (any, error) {
		t.Fatal("step after a failure must not run")
		return nil, nil
	}}

	p := New(failing, after)

	_, err := p.Run("in")
	if err == nil {
		t.Fatal("Run() error = nil, want error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want wrapped %v", err, boom)
	}
	if !strings.Contains(err.Error(), "failing") {
		t.Errorf("error %q does not name the failing step", err)
	}
}
