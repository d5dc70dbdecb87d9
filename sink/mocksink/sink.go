package mocksink

import (
	"fmt"
	"sync"

	"github.com/mreithub/go-index-partitioner/sink"
)

// interface declarations
var _ sink.Sink = (*MockSink)(nil)

type Emission struct {
	Name     string
	Patterns []string
}

// fake sink that keeps track of everything it received (used for unit tests)
type MockSink struct {
	lock    sync.Mutex
	emitted []Emission

	// if set, Emit() fails for requests with that name
	FailFor string
}

func (s *MockSink) Emit(name string, patterns []string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.FailFor != "" && s.FailFor == name {
		return fmt.Errorf("refusing to emit %q", name)
	}
	s.emitted = append(s.emitted, Emission{Name: name, Patterns: append([]string(nil), patterns...)})
	return nil
}

// returns a copy of everything emitted so far
func (s *MockSink) Emitted() []Emission {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Emission(nil), s.emitted...)
}

func (s *MockSink) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.emitted = nil
}

func New() *MockSink {
	return &MockSink{}
}
