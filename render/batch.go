package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/semaphore"

	"github.com/inkpad/inkpad/log"
	"github.com/inkpad/inkpad/store"
)

// BatchConfig configures a store-wide export.
type BatchConfig struct {
	// Format is "svg", "pdf" or "png".
	Format string

	// OutputDir receives one file per drawing, named after the
	// drawing with unsafe characters replaced.
	OutputDir string

	// Concurrency bounds the number of drawings rendered at once
	// (default 4).
	Concurrency int64
}

// ExportAll renders every drawing in the store. Failures on single
// drawings are logged and skipped; the returned slice holds the paths
// actually written.
func ExportAll(s *store.Store, cfg BatchConfig) ([]string, error) {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}

	drawings, err := s.List()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0700); err != nil {
		return nil, err
	}

	results := make([]string, len(drawings))

	ctx := context.TODO()
	sem := semaphore.NewWeighted(cfg.Concurrency)
	for i, d := range drawings {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Trace.Printf("failed to acquire semaphore: %v", err)
			break
		}
		go func(i int, id string) {
			defer sem.Release(1)

			outputFile, err := exportOne(s, id, cfg)
			if err != nil {
				log.Trace.Printf("can't export %s: %v", id, err)
				return
			}
			results[i] = outputFile
		}(i, d.ID)
	}

	// wait for all goroutines to finish
	if err := sem.Acquire(ctx, cfg.Concurrency); err != nil {
		log.Trace.Printf("failed to acquire semaphore: %v", err)
	}

	var outputFiles []string
	for _, f := range results {
		if f != "" {
			outputFiles = append(outputFiles, f)
		}
	}
	return outputFiles, nil
}

func exportOne(s *store.Store, id string, cfg BatchConfig) (string, error) {
	meta, sk, err := s.Load(id)
	if err != nil {
		return "", err
	}

	name := safeName(meta.Name)
	if name == "" {
		name = meta.ID
	}
	outputFile := filepath.Join(cfg.OutputDir, name+"."+cfg.Format)

	switch cfg.Format {
	case "pdf":
		if err := WritePDF(outputFile, meta, sk); err != nil {
			return "", err
		}
		return outputFile, nil
	case "svg", "png":
		f, err := os.Create(outputFile)
		if err != nil {
			return "", err
		}
		defer f.Close()

		if cfg.Format == "svg" {
			err = WriteSVG(f, meta, sk, SVGOptions{})
		} else {
			err = WritePNG(f, meta, sk)
		}
		return outputFile, err
	default:
		return "", fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}

func safeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}
