// Package codebook renders code books for people and programs.
package codebook

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/abhinav/arpeggio"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Book is a code book with string targets and string symbols.
type Book = arpeggio.EncodingMap[string, string]

//go:generate mockgen -destination codebooktest/mock_writer.go -package codebooktest github.com/abhinav/arpeggio/internal/codebook Writer

// Writer writes code books somewhere.
type Writer interface {
	WriteCodeBook(*Book) error
}

// TextWriter writes code books as aligned columns of text,
// one entry per line:
//
//	CODE  TARGET  COUNT
//
// Columns are aligned by display width,
// so wide characters in code words and targets line up.
type TextWriter struct {
	W io.Writer

	// Color highlights code words.
	Color bool
}

var _ Writer = (*TextWriter)(nil)

// _emptyCode stands in for the empty code word
// of a code book with a single target.
const _emptyCode = `""`

// WriteCodeBook writes the given code book.
func (w *TextWriter) WriteCodeBook(book *Book) error {
	type row struct {
		code, target, count string
	}

	entries := book.Entries()
	rows := make([]row, len(entries))
	var codeWidth, targetWidth, countWidth int
	for i, e := range entries {
		r := row{
			code:   strings.Join(e.Code, ""),
			target: quoteTarget(e.Target),
			count:  strconv.Itoa(e.Count),
		}
		if len(r.code) == 0 {
			r.code = _emptyCode
		}
		rows[i] = r

		codeWidth = max(codeWidth, runewidth.StringWidth(r.code))
		targetWidth = max(targetWidth, runewidth.StringWidth(r.target))
		countWidth = max(countWidth, len(r.count))
	}

	codeColor := color.New(color.FgRed, color.Bold)
	if w.Color {
		codeColor.EnableColor()
	} else {
		codeColor.DisableColor()
	}

	var sb strings.Builder
	for _, r := range rows {
		sb.Reset()
		sb.WriteString(codeColor.Sprint(r.code))
		sb.WriteString(pad(r.code, codeWidth))
		sb.WriteString("  ")
		sb.WriteString(r.target)
		sb.WriteString(pad(r.target, targetWidth))
		sb.WriteString("  ")
		sb.WriteString(strings.Repeat(" ", countWidth-len(r.count)))
		sb.WriteString(r.count)
		sb.WriteByte('\n')

		if _, err := io.WriteString(w.W, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

// pad returns the spaces needed to bring s to the given display width.
func pad(s string, width int) string {
	return strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// quoteTarget quotes targets that would be ambiguous in a column.
func quoteTarget(s string) string {
	if len(s) == 0 || strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || !unicode.IsPrint(r) || r == '"'
	}) >= 0 {
		return strconv.Quote(s)
	}
	return s
}

// YAMLWriter writes code books as a YAML sequence of entries.
//
//	- code: ab
//	  target: the
//	  count: 120
type YAMLWriter struct {
	W io.Writer
}

var _ Writer = (*YAMLWriter)(nil)

type yamlEntry struct {
	Code   string `yaml:"code"`
	Target string `yaml:"target"`
	Count  int    `yaml:"count"`
}

// WriteCodeBook writes the given code book.
func (w *YAMLWriter) WriteCodeBook(book *Book) error {
	entries := book.Entries()
	out := make([]yamlEntry, len(entries))
	for i, e := range entries {
		out[i] = yamlEntry{
			Code:   strings.Join(e.Code, ""),
			Target: e.Target,
			Count:  e.Count,
		}
	}

	enc := yaml.NewEncoder(w.W)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}
