package mocks

import (
	"context"
	"sync"

	"mykuliah/infras/otel"
)

// Recorder is an in-process otel.Otel that keeps what services write to their scopes,
// so tests can assert on attributes and traced errors without an exporter.
type Recorder struct {
	mu         sync.Mutex
	scopes     []string
	attributes map[string]any
	errors     []error
}

// NewOtel returns a recording Otel for tests.
func NewOtel() *Recorder {
	return &Recorder{attributes: map[string]any{}}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.scopes = append(r.scopes, name)
	r.mu.Unlock()

	return ctx, &scope{recorder: r}
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scopes lists the scope names opened so far, in order.
func (r *Recorder) Scopes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.scopes...)
}

// Attribute returns the last value written under key by any scope.
func (r *Recorder) Attribute(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.attributes[key]

	return v, ok
}

// Errors returns every error traced so far.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scopes = nil
	r.attributes = map[string]any{}
	r.errors = nil
}

func (r *Recorder) set(key string, value any) {
	r.mu.Lock()
	r.attributes[key] = value
	r.mu.Unlock()
}

func (r *Recorder) trace(err error) {
	r.mu.Lock()
	r.errors = append(r.errors, err)
	r.mu.Unlock()
}
