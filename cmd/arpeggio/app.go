package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/abhinav/arpeggio"
	"github.com/abhinav/arpeggio/internal/codebook"
	"github.com/abhinav/arpeggio/internal/freqtable"
	"github.com/abhinav/arpeggio/internal/log"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

// app implements the main arpeggio application logic:
// it reads a frequency table, builds a code book for it,
// and writes the code book out.
type app struct {
	Log    *log.Logger
	Clock  clock.Clock
	Stdin  io.Reader
	Open   func(string) (io.ReadCloser, error) // == os.Open
	Writer codebook.Writer
}

// Run runs the application with the provided configuration.
func (app *app) Run(cfg *config) (err error) {
	start := app.Clock.Now()

	tbl, err := app.readTable(cfg.Input)
	if err != nil {
		return err
	}

	symbols := cfg.Alphabet.Symbols()
	tree, err := arpeggio.BuildTreeWithSymbols(tbl, symbols)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}

	book, err := arpeggio.DeriveEncodingMap(tree, symbols, tbl)
	if err != nil {
		return fmt.Errorf("derive code book: %w", err)
	}

	app.Log.Debug("built code book",
		log.OmitEmpty(slog.String, "file", cfg.Input),
		"targets", tree.Len(),
		"total", tbl.Total(),
		"arity", tree.Arity(),
		"branches", tree.BranchPoints(),
		"padding", tree.Padding(),
		"cost", book.Cost(),
		"took", app.Clock.Since(start),
	)

	if err := app.Writer.WriteCodeBook(book); err != nil {
		return fmt.Errorf("write code book: %w", err)
	}
	return nil
}

func (app *app) readTable(name string) (_ freqtable.Table, err error) {
	var r io.Reader = app.Stdin
	if len(name) > 0 && name != "-" {
		f, openErr := app.Open(name)
		if openErr != nil {
			return nil, openErr
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		r = f
	} else {
		name = "stdin"
	}

	tbl, err := freqtable.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("read %v: %w", name, err)
	}
	return tbl, nil
}
