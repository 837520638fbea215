package mocks

import (
	"context"
	"sync"

	"studio/infras/otel"
)

// Otel is an in-memory tracer that remembers span names and traced errors.
type Otel struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

func NewOtel() *Otel {
	return &Otel{}
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.spans = append(o.spans, spanName)
	o.mu.Unlock()

	return ctx, &scope{parent: o}
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns the names of every scope opened so far.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.spans...)
}

// Errors returns every error passed to TraceError.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.errors...)
}

type scope struct {
	parent *Otel
}

func (s *scope) End() {}

func (s *scope) TraceError(err error) {
	s.parent.mu.Lock()
	s.parent.errors = append(s.parent.errors, err)
	s.parent.mu.Unlock()
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}
