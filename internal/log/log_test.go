package log

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	t.Parallel()

	t.Run("default level", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Info, New(io.Discard).Level())
	})

	tests := []struct {
		desc  string
		level Level
		want  string
	}{
		{
			desc:  "debug",
			level: Debug,
			want:  unlines("DEBUG debug", "INFO info", "WARN warn", "ERROR error"),
		},
		{
			desc:  "info",
			level: Info,
			want:  unlines("INFO info", "WARN warn", "ERROR error"),
		},
		{
			desc:  "error",
			level: Error,
			want:  unlines("ERROR error"),
		},
		{
			desc:  "discard",
			level: discard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			log := New(&buff).WithLevel(tt.level)

			log.Debug("debug")
			log.Info("info")
			log.Warn("warn")
			log.Error("error")

			assert.Equal(t, tt.want, buff.String())
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	Discard.Error("error")
	Discard.WithName("foo").Info("info")
	assert.Equal(t, discard, Discard.Level())
}

func TestName(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff).WithName("foo")

	log.Info("info")
	log.WithName("bar").Error("error")

	assert.Equal(t, unlines(
		"INFO [foo] info",
		"ERROR [foo.bar] error",
	), buff.String())
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff).WithLevel(Debug)

	log.With("file", "freqs.yaml").Info("read",
		"targets", 3,
		"ratio", 0.5,
		"ok", true,
		"took", 2*time.Millisecond,
		OmitEmpty(slog.String, "skipped", ""),
		slog.Group("tree", "arity", 3, "padding", uint64(1)),
		"quoted", "a b",
		"empty", "",
		"alphabet", []string{"x", "y"},
	)

	assert.Equal(t, unlines(
		`INFO read file=freqs.yaml targets=3 ratio=0.5 ok=true took=2ms `+
			`tree.arity=3 tree.padding=1 quoted="a b" empty="" alphabet=[x y]`,
	), buff.String())
}

func TestGroup(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff)

	log.WithGroup("build").With("arity", 2).Info("done", "cost", 10)

	assert.Equal(t, unlines("INFO done build.arity=2 build.cost=10"), buff.String())
}

func TestTrailingNewline(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff)

	log.Info("foo\n\n")

	assert.Equal(t, unlines("INFO foo"), buff.String())
}

func TestColor(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := newLogger(&handler{W: &buff, Level: Info, Color: true})

	log.Error("oops")

	got := buff.String()
	assert.True(t, strings.HasPrefix(got, "\x1b[91;1mERROR\x1b[0m"), "got %q", got)
	assert.Contains(t, got, "\x1b[1moops\x1b[0m")
}

func TestOmitEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, OmitEmpty(slog.Int, "n", 0))
	assert.Equal(t, slog.Int("n", 1), OmitEmpty(slog.Int, "n", 1))
}

func unlines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
