package mocks

import (
	"sync"

	"railbook/infras/otel"
)

// Scope keeps what a traced call reported so tests can assert on it.
type Scope struct {
	mu         sync.Mutex
	name       string
	errors     []error
	events     []string
	attributes map[string]any
	ended      bool
}

var _ otel.Scope = (*Scope)(nil)

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, name)
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended = true
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = append(s.errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) Name() string {
	return s.name
}

func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errors...)
}

func (s *Scope) Attribute(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attributes[key]
}

func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

func NewScope(name string) *Scope {
	return &Scope{name: name, attributes: map[string]any{}}
}
