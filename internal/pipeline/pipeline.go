// Package pipeline provides a fixed sequential processing pipeline.
//
// A pipeline is an ordered list of steps. Running it threads a single
// value through the steps in order, each step's output becoming the
// next step's input. The step list is fixed at construction; there is
// no skipping or reordering at run time.
package pipeline

import "fmt"

// Step is a single unit of work in a pipeline.
type Step interface {
	// Name identifies the step in diagnostics.
	Name() string

	// Process transforms the input value into an output value. Steps
	// that absorb their own failures return a degraded value and a nil
	// error; a non-nil error stops the pipeline.
	Process(input any) (any, error)
}

// Pipeline runs an ordered list of steps in sequence.
type Pipeline struct {
	steps []Step
}

// New creates a Pipeline from the given steps. A pipeline with zero
// steps is valid; its Run is the identity function.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run folds the step list left to right, starting from initial, and
// returns the final output. The pipeline holds no state between calls.
func (p *Pipeline) Run(initial any) (any, error) {
	data := initial
	for _, step := range p.steps {
		out, err := step.Process(data)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", step.Name(), err)
		}
		data = out
	}
	return data, nil
}
