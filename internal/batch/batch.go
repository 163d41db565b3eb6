// Package batch renders many contact rows into one zip archive.
package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/xid"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/export"
	"github.com/youruser/cardforge/internal/generator"
	"github.com/youruser/cardforge/internal/logging"
)

// ErrNoRecords is returned for an empty input.
var ErrNoRecords = errors.New("batch: no records")

// ItemError describes one record that was left out of the archive.
type ItemError struct {
	Index int    `json:"index"` // 0-based position in the input
	Name  string `json:"name"`
	Err   error  `json:"-"`
}

func (e ItemError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index+1, e.Name, e.Err)
}

func (e ItemError) Unwrap() error { return e.Err }

// Result is a finished batch. Members are listed in input order.
type Result struct {
	ID       string      `json:"id"`
	Filename string      `json:"filename"`
	Archive  []byte      `json:"-"`
	Members  []string    `json:"members"`
	Failures []ItemError `json:"failures,omitempty"`
}

// Driver renders rows through a shared generator.
type Driver struct {
	gen     *generator.Generator
	workers int
}

// NewDriver returns a driver rendering up to workers cards at once.
func NewDriver(gen *generator.Generator, workers int) *Driver {
	if workers < 1 {
		workers = 1
	}
	return &Driver{gen: gen, workers: workers}
}

// Render produces one artifact per row in format and packs them into a zip.
// Row overrides win over defaults. A row that fails is logged, reported in
// Result.Failures and left out; Render itself fails only for an unknown
// format, a cancelled context, or when no row succeeds.
func (d *Driver) Render(ctx context.Context, rows []cards.Row, defaults cards.Style, format string) (*Result, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}

	arts := make([]*export.Artifact, len(rows))
	errs := make([]error, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			arts[i], errs[i] = d.gen.Generate(generator.Request{
				Contact: row.Contact,
				Style:   row.Resolve(defaults),
				Format:  string(f),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{ID: xid.New().String()}
	res.Filename = "business_cards_" + res.ID + ".zip"

	var ok []*export.Artifact
	for i, err := range errs {
		if err != nil {
			item := ItemError{Index: i, Name: rows[i].Name, Err: err}
			logging.Warn("batch record skipped", "batch", res.ID, "index", i, "name", item.Name, "error", err)
			res.Failures = append(res.Failures, item)
			continue
		}
		ok = append(ok, arts[i])
	}
	if len(ok) == 0 {
		return nil, fmt.Errorf("batch: all %d records failed: %w", len(rows), res.Failures[0].Err)
	}

	res.Archive, res.Members, err = writeArchive(ok)
	if err != nil {
		return nil, err
	}
	logging.Info("batch rendered", "batch", res.ID, "format", string(f), "members", len(res.Members), "failed", len(res.Failures))
	return res, nil
}
