// Package driver orchestrates the verification pipeline:
// package loading, registry construction, per-shape resolution and emission.
//
// Resolution and emission are pure functions of a shape and the frozen
// registry, so independent shapes are processed in parallel; results keep
// the deterministic shape order produced by the analyzer.
package driver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"collection-generator/internal/analyze"
	"collection-generator/internal/config"
	"collection-generator/internal/diagnostic"
	"collection-generator/internal/gen"
	"collection-generator/internal/registry"
	"collection-generator/internal/resolve"
)

// ShapeResult is the terminal outcome for one collection shape:
// either a generated file, or diagnostics, or a shape-scoped error.
type ShapeResult struct {
	Shape *analyze.StructShape
	File  *gen.GeneratedFile
	Diags diagnostic.List
	Err   error
}

// Result is the outcome of one pipeline run.
type Result struct {
	Shapes   []ShapeResult
	Registry *registry.Registry
	Graph    *analyze.TypeGraph
}

// Diagnostics returns all diagnostics across shapes, in shape order.
func (r *Result) Diagnostics() diagnostic.List {
	var all diagnostic.List
	for _, s := range r.Shapes {
		all = append(all, s.Diags...)
	}

	return all
}

// Files returns all generated files, in shape order.
func (r *Result) Files() []gen.GeneratedFile {
	var files []gen.GeneratedFile

	for _, s := range r.Shapes {
		if s.File != nil {
			files = append(files, *s.File)
		}
	}

	return files
}

// Err returns the first shape-scoped error, if any.
func (r *Result) Err() error {
	for _, s := range r.Shapes {
		if s.Err != nil {
			return s.Err
		}
	}

	return nil
}

// Run executes the full pipeline for the given configuration.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	log.Debug("loading packages", zap.Strings("patterns", cfg.Patterns))

	analyzer := analyze.NewAnalyzer()

	graph, err := analyzer.LoadPackages(cfg.Patterns...)
	if err != nil {
		return nil, err
	}

	log.Debug("packages loaded",
		zap.Int("types", len(graph.Types)),
		zap.Int("shapes", len(graph.Shapes)))

	reg, err := buildRegistry(cfg, graph, log)
	if err != nil {
		return nil, err
	}

	emitter := gen.NewEmitter(reg, gen.Config{
		FileSuffix:       cfg.FileSuffix,
		GenerateComments: cfg.GenerateComments,
		HelpSampleSize:   cfg.HelpSampleSize,
	})

	result := &Result{
		Shapes:   make([]ShapeResult, len(graph.Shapes)),
		Registry: reg,
		Graph:    graph,
	}

	group, gctx := errgroup.WithContext(ctx)

	for i, shape := range graph.Shapes {
		i, shape := i, shape
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result.Shapes[i] = processShape(shape, reg, emitter)

			return nil
		})
	}

	// Per-shape outcomes land in indexed slots, keeping the deterministic
	// order; the group only fails on caller cancellation.
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// processShape resolves and emits one collection shape.
func processShape(shape *analyze.StructShape, reg *registry.Registry, emitter *gen.Emitter) ShapeResult {
	res := ShapeResult{Shape: shape}

	verdicts, err := resolve.ResolveShape(shape, reg)
	if err != nil {
		res.Err = err
		return res
	}

	res.File, res.Diags, res.Err = emitter.Emit(shape, verdicts)

	return res
}

// buildRegistry builds (or loads from cache) the frozen capability registry.
func buildRegistry(cfg config.Config, graph *analyze.TypeGraph, log *zap.Logger) (*registry.Registry, error) {
	var manifestData []byte

	if cfg.Manifest != "" {
		data, err := os.ReadFile(cfg.Manifest)
		if err != nil {
			return nil, fmt.Errorf("reading capability manifest: %w", err)
		}

		manifestData = data
	}

	hash := registryHash(manifestData, graph.Files)

	if cfg.RegistryCache != "" {
		cached, hit, err := registry.LoadCache(cfg.RegistryCache, hash)
		if err != nil {
			log.Warn("ignoring unreadable registry cache", zap.Error(err))
		} else if hit {
			log.Debug("registry cache hit", zap.String("path", cfg.RegistryCache))
			return cached, nil
		}
	}

	reg := registry.New()
	registry.Builtins(reg)
	registry.Scan(reg, graph)

	if manifestData != nil {
		manifest, err := registry.ParseManifest(manifestData)
		if err != nil {
			return nil, err
		}

		if err := manifest.Apply(reg); err != nil {
			return nil, err
		}
	}

	reg.Freeze()

	if cfg.RegistryCache != "" {
		if err := registry.SaveCache(cfg.RegistryCache, reg, hash); err != nil {
			log.Warn("failed to write registry cache", zap.Error(err))
		}
	}

	log.Debug("registry built", zap.Int("types", reg.Len()))

	return reg, nil
}

// registryHash fingerprints the registry inputs: the manifest content and
// the stats of every loaded source file. Any change invalidates the cache.
func registryHash(manifestData []byte, files []string) string {
	h := sha256.New()
	h.Write(manifestData)

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(h, "%s:missing\n", path)
			continue
		}

		fmt.Fprintf(h, "%s:%d:%d\n", path, info.Size(), info.ModTime().UnixNano())
	}

	return hex.EncodeToString(h.Sum(nil))
}
