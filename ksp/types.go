package ksp

import (
	"context"
	"errors"
)

var (
	// ErrBadK indicates a non-positive K.
	ErrBadK = errors.New("ksp: k must be positive")

	// ErrNoPath indicates the destination cannot be reached at all.
	ErrNoPath = errors.New("ksp: no path")
)

// Options configures a K-shortest-paths run.
type Options struct {
	// Ctx is checked between spur searches.
	Ctx context.Context

	// MaxHops, if > 0, discards candidates longer than this many hops.
	MaxHops int
}

// Option is a functional option for KShortest.
type Option func(*Options)

// DefaultOptions returns a background context and no hop limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops bounds the hop count of returned paths; 0 disables the bound.
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h >= 0 {
			o.MaxHops = h
		}
	}
}
