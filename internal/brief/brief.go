// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package brief loads generation requests from brief files and runs them in
// batches. A brief is one envelope ({kind, payload}) stored as YAML or JSON;
// YAML briefs use snake_case field names.
package brief

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/copy-engine/internal/render"
	"github.com/pdiddy/copy-engine/internal/validate"
	"github.com/pdiddy/copy-engine/pkg/types"
)

// Generator produces a result for a validated request.
type Generator interface {
	Generate(req types.Request) (types.Result, error)
}

// Load reads a brief file. The extension selects the decoder: .json for
// JSON, .yaml or .yml for YAML. A JSON brief that does not parse is
// reported as a malformed request, the same as over HTTP.
func Load(path string) (types.Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Envelope{}, fmt.Errorf("reading brief: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return validate.Decode(data)
	case ".yaml", ".yml":
		var env types.Envelope
		if err := yaml.Unmarshal(data, &env); err != nil {
			return types.Envelope{}, types.NewError(types.ErrMalformed, "", "parsing brief %s: %v", filepath.Base(path), err)
		}
		return env, nil
	default:
		return types.Envelope{}, fmt.Errorf("unsupported brief extension %q", filepath.Ext(path))
	}
}

// isBrief reports whether name has a brief extension.
func isBrief(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Files returns the brief file paths in dir, sorted by name.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading brief directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !isBrief(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Name returns the output base name for a brief path.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Summary holds counts from a batch run.
type Summary struct {
	Generated int
	Rejected  int
	Failed    int
}

// Total returns the number of briefs processed.
func (s Summary) Total() int {
	return s.Generated + s.Rejected + s.Failed
}

// RunBatch validates and generates every brief in dir and writes each result
// to outDir as <name><ext> in format f. Briefs that fail validation are
// counted as rejected; generator and I/O failures are counted as failed.
// Neither stops the run. Cancellation is checked between briefs.
func RunBatch(ctx context.Context, dir, outDir string, f types.OutputFormat, gen Generator, w io.Writer) (Summary, error) {
	files, err := Files(dir)
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	var summary Summary

	for _, path := range files {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := Name(path)

		env, err := Load(path)
		if err != nil {
			report(w, &summary, name, err)
			continue
		}
		req, err := validate.Envelope(env)
		if err != nil {
			report(w, &summary, name, err)
			continue
		}
		res, err := gen.Generate(req)
		if err != nil {
			report(w, &summary, name, err)
			continue
		}

		out := filepath.Join(outDir, name+f.Extension())
		if err := writeResult(out, res, f); err != nil {
			report(w, &summary, name, err)
			continue
		}

		fmt.Fprintf(w, "generated %s (%s) -> %s\n", name, res.Kind, out)
		summary.Generated++
	}

	fmt.Fprintf(w, "\ngenerated: %d, rejected: %d, failed: %d\n",
		summary.Generated, summary.Rejected, summary.Failed)

	return summary, nil
}

// report prints a per-brief failure line and counts it. Validation errors
// are rejections; everything else is a failure.
func report(w io.Writer, s *Summary, name string, err error) {
	var verr *types.Error
	if errors.As(err, &verr) && verr.Validation() {
		fmt.Fprintf(w, "rejected  %s: %v\n", name, err)
		s.Rejected++
		return
	}
	fmt.Fprintf(w, "failed    %s: %v\n", name, err)
	s.Failed++
}

func writeResult(path string, res types.Result, f types.OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render.Write(file, res, f); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
