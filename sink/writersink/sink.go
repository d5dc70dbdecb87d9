package writersink

import (
	"fmt"
	"io"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/mreithub/go-index-partitioner/sink"
)

var _ sink.Sink = (*WriterSink)(nil)

type Format string

const (
	// FormatLines -- one index pattern per line
	FormatLines Format = "lines"
	// FormatComma -- all patterns of a request on one line, comma separated (the way Elasticsearch expects multi-target index expressions)
	FormatComma Format = "comma"
	// FormatJSON -- one JSON object per request: {"name": ..., "patterns": [...]}
	FormatJSON Format = "json"
)

var Formats = []Format{FormatLines, FormatComma, FormatJSON}

func ParseFormat(s string) (Format, error) {
	var f = Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

type jsonEmission struct {
	Name     string   `json:"name,omitempty"`
	Patterns []string `json:"patterns"`
}

// WriterSink -- writes emitted index patterns to W
type WriterSink struct {
	W      io.Writer
	Format Format

	lock sync.Mutex
}

func New(w io.Writer, format Format) *WriterSink {
	return &WriterSink{W: w, Format: format}
}

func (s *WriterSink) Emit(name string, patterns []string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	var err error
	switch s.Format {
	case FormatLines, "":
		for _, p := range patterns {
			if _, err = fmt.Fprintln(s.W, p); err != nil {
				break
			}
		}
	case FormatComma:
		_, err = fmt.Fprintln(s.W, strings.Join(patterns, ","))
	case FormatJSON:
		// Encode() terminates each object with a newline
		err = jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(s.W).Encode(jsonEmission{
			Name:     name,
			Patterns: patterns,
		})
	default:
		return fmt.Errorf("unknown output format %q", s.Format)
	}

	if err != nil {
		return fmt.Errorf("failed to write index patterns for %q: %w", name, err)
	}
	return nil
}
