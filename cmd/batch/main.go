package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

// Batch harness: discovers supported documents in the input directory,
// extracts an outline from each in parallel, and writes one JSON file
// per document to the output directory. A document that fails to parse
// is logged and skipped; the rest of the batch continues.
func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		log.Error("read input dir", "dir", cfg.InputDir, "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("create output dir", "dir", cfg.OutputDir, "error", err)
		os.Exit(1)
	}

	ex := outline.New(outline.Config{
		HeadingDelta:  cfg.HeadingDelta,
		MinHeadingLen: cfg.MinHeadingLen,
		TitleLineCap:  cfg.TitleLineCap,
		TitleFontDrop: cfg.TitleFontDrop,
	})

	var names []string
	for _, e := range entries {
		if !e.IsDir() && parser.IsSupportedExtension(e.Name()) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		log.Info("no supported documents found", "dir", cfg.InputDir)
		return
	}

	// Documents are independent, so a bounded pool fans them out.
	var processed, failed atomic.Int64
	sem := make(chan struct{}, cfg.WorkerCount)
	var wg sync.WaitGroup
	for _, name := range names {
		sem <- struct{}{}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := processFile(ex, cfg, name); err != nil {
				log.Error("document failed", "file", name, "error", err)
				failed.Add(1)
				return
			}
			log.Info("outline written", "file", name)
			processed.Add(1)
		}(name)
	}
	wg.Wait()

	log.Info("batch complete", "processed", processed.Load(), "failed", failed.Load())
	if processed.Load() == 0 {
		os.Exit(1)
	}
}

func processFile(ex *outline.Extractor, cfg config.Config, name string) error {
	data, err := os.ReadFile(filepath.Join(cfg.InputDir, name))
	if err != nil {
		return err
	}

	p, err := parser.ForFile(name)
	if err != nil {
		return err
	}
	spans, err := p.Parse(bytes.NewReader(data), name)
	if err != nil {
		return err
	}

	o := ex.Extract(spans)
	out, err := json.MarshalIndent(o, "", "    ")
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return os.WriteFile(filepath.Join(cfg.OutputDir, stem+".json"), out, 0o644)
}
