// SPDX-License-Identifier: MIT

// Package gauss: functional options for the solver.
// Constructors panic only on nonsensical values (programmer error); every
// other condition is reported through errors or Result.Kind.
package gauss

import (
	"math"
	"runtime"

	"github.com/go-logr/logr"
)

// DefaultEpsilon is the tolerance below which pivots and residuals count as zero.
const DefaultEpsilon = 1e-8

// InfinitePolicy selects how an Infinite outcome is recognised.
type InfinitePolicy int

const (
	// FreeVariables reports Infinite when back substitution met a zero pivot
	// whose equation reduced to 0 = 0. This is the default.
	FreeVariables InfinitePolicy = iota

	// ExactZero reports Infinite when any computed x[i] is exactly 0.0.
	// It reproduces the historical behaviour bit for bit, including its
	// misreport of unique solutions that have a zero component.
	ExactZero
)

// String returns the configuration name of p.
func (p InfinitePolicy) String() string {
	switch p {
	case FreeVariables:
		return "free-variables"
	case ExactZero:
		return "exact-zero"
	default:
		return "unknown"
	}
}

const (
	panicEpsilonInvalid     = "gauss: WithEpsilon: eps must be finite, non-negative"
	panicPolicyInvalid      = "gauss: WithInfinitePolicy: unknown policy"
	panicConcurrencyInvalid = "gauss: WithConcurrency: k must be positive"
)

// Option mutates solver options.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	eps         float64
	policy      InfinitePolicy
	logger      logr.Logger
	concurrency int // 0 means runtime.GOMAXPROCS(0)
}

// WithEpsilon sets the zero tolerance used for pivots and residuals.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithInfinitePolicy selects how Infinite outcomes are detected.
// Panics on an unknown policy value.
func WithInfinitePolicy(p InfinitePolicy) Option {
	if p != FreeVariables && p != ExactZero {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithExactZeroInfinite is shorthand for WithInfinitePolicy(ExactZero).
func WithExactZeroInfinite() Option { return WithInfinitePolicy(ExactZero) }

// WithLogger attaches a logger. Pivot decisions are logged at V(1), the
// reduced matrix at V(2).
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithConcurrency bounds the number of systems SolveAll works on at once.
// Panics when k < 1.
func WithConcurrency(k int) Option {
	if k < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = k }
}

// gatherOptions applies setters over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		policy: FreeVariables,
		logger: logr.Discard(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.concurrency == 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	return o
}
