package compiler

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mediawatch/monthly-compiler-go/internal/logger"
	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"
	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/parser"
)

// Result is the outcome of a compile run.
type Result struct {
	// Root is the directory that was scanned.
	Root string
	// Records holds every parsed record grouped by category.
	Records *Aggregator
	// Documents is the number of documents read successfully.
	Documents int
	// TablesAccepted counts tables with a known category header.
	TablesAccepted int
	// TablesRejected counts tables skipped for an unknown header.
	TablesRejected int
	// Skipped lists documents that could not be read.
	Skipped []*DocumentError
	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Empty reports whether the run produced no records.
func (r *Result) Empty() bool {
	return r.Records == nil || r.Records.Len() == 0
}

// Compile walks root in lexical order and parses every matching document.
// Unreadable documents are skipped and reported in Result.Skipped.
// The walk stops early only when ctx is cancelled.
func Compile(ctx context.Context, root string, opts Options) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	log := opts.log()
	start := time.Now()
	res := &Result{Root: root, Records: NewAggregator()}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("Skipping unreadable path", logger.String("path", path), logger.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !opts.ShouldScan(d.Name()) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		log.Info("Processing document", logger.String("file", d.Name()))
		doc, err := parser.ExtractTables(path)
		if err != nil {
			derr := NewDocumentError(path, "open", err)
			log.Warn("Failed to open document", logger.String("file", d.Name()), logger.Error(err))
			res.Skipped = append(res.Skipped, derr)
			return nil
		}

		res.Documents++
		collectDocument(res, doc, log)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

// collectDocument classifies each table of doc and aggregates its records.
func collectDocument(res *Result, doc *models.Document, log logger.Logger) {
	for _, table := range doc.Tables {
		records, ok := parser.ParseTable(table)
		if !ok {
			res.TablesRejected++
			log.Debug("Skipping table with unknown header",
				logger.String("path", doc.Path), logger.String("header", table.Header))
			continue
		}
		res.TablesAccepted++
		res.Records.AddAll(records)
	}
}
