package mocks

import (
	"context"
	"sync"

	"railbook/infras/otel"
)

// Otel hands out recording scopes and remembers the last one opened under each span name.
type Otel struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

var _ otel.Otel = (*Otel)(nil)

func (o *Otel) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	scope := NewScope(name)

	o.mu.Lock()
	defer o.mu.Unlock()

	o.scopes[name] = scope

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the last scope opened as name, or nil.
func (o *Otel) Scope(name string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.scopes[name]
}

func NewOtel() *Otel {
	return &Otel{scopes: map[string]*Scope{}}
}
