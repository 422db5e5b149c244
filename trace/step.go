// SPDX-License-Identifier: MIT

package trace

import "github.com/katalvlaran/rowreduce/matrix"

// Step is one recorded elementary row operation (or one "already satisfied"
// observation) together with the matrix state right after it.
// Matrix is an independent copy: later changes to the working matrix never
// reach it.
type Step struct {
	Description string      `json:"description" yaml:"description"`
	Annotation  string      `json:"annotation" yaml:"annotation"`
	Matrix      [][]float64 `json:"matrix" yaml:"matrix"`
}

// Recorder receives steps from a reduction engine.
type Recorder interface {
	// Record snapshots m under the given description and annotation.
	Record(description, annotation string, m *matrix.Dense)

	// Steps returns the recorded steps in order.
	Steps() []Step
}

// Trace is the append-only, deep-copying Recorder.
// The zero value is ready to use. A Trace is owned by a single solve call and
// is not safe for concurrent use.
type Trace struct {
	steps []Step
}

var (
	_ Recorder = (*Trace)(nil)
	_ Recorder = Discard{}
)

// New returns an empty Trace.
func New() *Trace { return &Trace{} }

// Record appends a Step holding a deep copy of m.
func (t *Trace) Record(description, annotation string, m *matrix.Dense) {
	t.steps = append(t.steps, Step{
		Description: description,
		Annotation:  annotation,
		Matrix:      m.ToRows(),
	})
}

// Steps returns the recorded steps. The slice header is shared; the Step
// values and their matrices are owned by the caller from here on.
func (t *Trace) Steps() []Step { return t.steps }

// Len returns the number of recorded steps.
func (t *Trace) Len() int { return len(t.steps) }

// Last returns the most recent step and false when nothing was recorded.
func (t *Trace) Last() (Step, bool) {
	if len(t.steps) == 0 {
		return Step{}, false
	}

	return t.steps[len(t.steps)-1], true
}

// Discard is a Recorder that drops every step.
type Discard struct{}

// Record does nothing.
func (Discard) Record(string, string, *matrix.Dense) {}

// Steps always returns nil.
func (Discard) Steps() []Step { return nil }
