// SPDX-License-Identifier: MIT

package solver

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/rowreduce/trace"
)

const (
	panicNilLogger   = "solver: WithLogger: logger must not be nil"
	panicNilRecorder = "solver: WithRecorder: recorder must not be nil"
)

// Option configures a single engine call.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	logger   *zap.Logger
	recorder trace.Recorder
}

// WithLogger routes debug events (pivot choice, skipped columns, outcome)
// to l. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithRecorder makes the engine report steps to r instead of a fresh
// trace.Trace. The result's Steps field is whatever r.Steps() returns.
// r must not be shared between concurrent calls.
func WithRecorder(r trace.Recorder) Option {
	if r == nil {
		panic(panicNilRecorder)
	}

	return func(o *options) { o.recorder = r }
}

// WithoutTrace drops all steps; results carry a nil Steps slice.
func WithoutTrace() Option {
	return func(o *options) { o.recorder = trace.Discard{} }
}

// gatherOptions applies opts over the defaults. A fresh Trace is allocated
// per call unless a recorder was supplied.
func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.recorder == nil {
		o.recorder = trace.New()
	}

	return o
}
