package writersink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var patterns = []string{"-logs-2018-07-03", "-logs-2018-07-04", "logs-*"}

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatLines).Emit("logs", patterns))
	assert.Equal(t, "-logs-2018-07-03\n-logs-2018-07-04\nlogs-*\n", buf.String())

	// the zero Format falls back to lines
	buf.Reset()
	require.NoError(t, (&WriterSink{W: &buf}).Emit("logs", patterns[2:]))
	assert.Equal(t, "logs-*\n", buf.String())
}

func TestComma(t *testing.T) {
	var buf bytes.Buffer
	var s = New(&buf, FormatComma)
	require.NoError(t, s.Emit("logs", patterns))
	require.NoError(t, s.Emit("metrics", []string{"metrics-2018-*"}))
	assert.Equal(t, "-logs-2018-07-03,-logs-2018-07-04,logs-*\nmetrics-2018-*\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	var s = New(&buf, FormatJSON)
	require.NoError(t, s.Emit("logs", patterns))
	require.NoError(t, s.Emit("", []string{"logs-2018-*"}))
	assert.Equal(t, `{"name":"logs","patterns":["-logs-2018-07-03","-logs-2018-07-04","logs-*"]}
{"patterns":["logs-2018-*"]}
`, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestErrors(t *testing.T) {
	for _, f := range Formats {
		assert.Error(t, New(failingWriter{}, f).Emit("logs", patterns), f)
	}
	assert.Error(t, New(&bytes.Buffer{}, Format("xml")).Emit("logs", patterns))
}

func TestParseFormat(t *testing.T) {
	var f, err = ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}
