// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides HTTP middleware composition helpers.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// RouteBuilder registers routes on a mux with a chain of middlewares applied
// outermost-first. Groups share a mux but carry their own chain, so a
// protected group can extend the global chain without re-wrapping the mux.
type RouteBuilder struct {
	mux   *http.ServeMux
	chain []Middleware
}

// NewRouteBuilder creates a RouteBuilder for the given mux with no middleware.
func NewRouteBuilder(mux *http.ServeMux) *RouteBuilder {
	return &RouteBuilder{mux: mux}
}

// With returns a new RouteBuilder with the given middlewares appended to the chain.
func (b *RouteBuilder) With(mws ...Middleware) *RouteBuilder {
	chain := make([]Middleware, 0, len(b.chain)+len(mws))
	chain = append(chain, b.chain...)
	chain = append(chain, mws...)
	return &RouteBuilder{mux: b.mux, chain: chain}
}

// Group is an alias for With, for readability at call sites that create
// a distinct route group.
func (b *RouteBuilder) Group(mws ...Middleware) *RouteBuilder {
	return b.With(mws...)
}

// Handle registers the handler for the given pattern with the chain applied.
func (b *RouteBuilder) Handle(pattern string, handler http.Handler) {
	b.mux.Handle(pattern, b.wrap(handler))
}

// HandleFunc registers the handler function for the given pattern with the chain applied.
func (b *RouteBuilder) HandleFunc(pattern string, handler http.HandlerFunc) {
	b.Handle(pattern, handler)
}

func (b *RouteBuilder) wrap(handler http.Handler) http.Handler {
	// Apply in reverse so the first middleware in the chain is outermost.
	for i := len(b.chain) - 1; i >= 0; i-- {
		handler = b.chain[i](handler)
	}
	return handler
}
