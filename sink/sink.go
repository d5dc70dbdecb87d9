package sink

// Sink -- receives the index patterns resolved for a named request
type Sink interface {
	Emit(name string, patterns []string) error
}

// Func -- adapts a plain function to the Sink interface
type Func func(name string, patterns []string) error

func (f Func) Emit(name string, patterns []string) error {
	return f(name, patterns)
}

var _ Sink = Func(nil)
