package generator

import (
	"context"
	"fmt"

	"github.com/indaco/cordovagen/internal/codegen"
	"github.com/indaco/cordovagen/internal/core"
	"github.com/indaco/cordovagen/internal/descriptor"
	"github.com/indaco/cordovagen/internal/discovery"
	"github.com/indaco/cordovagen/internal/logging"
	"github.com/sirupsen/logrus"
)

// Result describes one generator invocation.
type Result struct {
	// Outcome is the applicability decision for the project.
	Outcome discovery.Outcome

	// OutputPath is where the module is (or would be) written.
	OutputPath string

	// Descriptors holds the parsed descriptors in processing order.
	Descriptors []*descriptor.Descriptor

	// Aggregate holds the merged export list and metadata.
	Aggregate *codegen.Aggregate

	// Content is the rendered module; nil unless Run generated it.
	Content []byte
}

// Generated reports whether the module was produced.
func (r *Result) Generated() bool {
	return r.Content != nil
}

// Generator runs the pipeline against one FileSystem.
type Generator struct {
	discovery *discovery.Service
	parser    *descriptor.Parser
	writer    *codegen.Writer
	log       *logrus.Logger
}

// New creates a Generator. A nil logger discards diagnostics.
func New(fs core.FileSystem, log *logrus.Logger) *Generator {
	log = logging.OrDiscard(log)
	return &Generator{
		discovery: discovery.NewService(fs, log),
		parser:    descriptor.NewParser(fs),
		writer:    codegen.NewWriter(fs),
		log:       log,
	}
}

// Collect runs the gate, discovers and parses every descriptor and merges
// them, without rendering or writing anything.
func (g *Generator) Collect(ctx context.Context, root string) (*Result, error) {
	found, err := g.discovery.Discover(ctx, root)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Outcome:     found.Outcome,
		OutputPath:  found.OutputPath,
		Descriptors: make([]*descriptor.Descriptor, 0, len(found.Descriptors)),
	}
	if found.Outcome.Skipped() {
		g.log.WithField("outcome", found.Outcome).Debug("generation skipped")
		return result, nil
	}

	for _, path := range found.Descriptors {
		d, err := g.parser.ParseFile(ctx, path)
		if err != nil {
			return nil, err
		}
		g.log.WithFields(logrus.Fields{
			"path":    path,
			"id":      d.ID,
			"version": d.Version,
			"modules": len(d.Modules),
		}).Debug("parsed plugin descriptor")
		result.Descriptors = append(result.Descriptors, d)
	}

	result.Aggregate = codegen.Merge(result.Descriptors)
	return result, nil
}

// Run collects the descriptors, renders the module and writes it.
// Skipped outcomes return a Result with no error. Any read, parse or write
// failure aborts the run; the output file is only touched after rendering
// succeeded.
func (g *Generator) Run(ctx context.Context, root string) (*Result, error) {
	result, err := g.Collect(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	if result.Outcome.Skipped() {
		return result, nil
	}

	content, err := codegen.Render(result.Aggregate)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	if err := g.writer.Write(ctx, result.OutputPath, content); err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	g.log.WithFields(logrus.Fields{
		"path":    result.OutputPath,
		"exports": len(result.Aggregate.Exports),
		"plugins": len(result.Aggregate.Metadata),
	}).Debug("wrote bootstrap module")

	result.Content = content
	return result, nil
}
