package list

import (
	"fmt"
	"strings"

	"github.com/indaco/cordovagen/internal/codegen"
	"github.com/indaco/cordovagen/internal/commands/cmdutil"
	"github.com/indaco/cordovagen/internal/generator"
	"github.com/indaco/cordovagen/internal/printer"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Formatter renders a generator result for display.
type Formatter struct {
	format OutputFormat
	root   string
}

// NewFormatter creates a Formatter; paths are shown relative to root.
func NewFormatter(format OutputFormat, root string) *Formatter {
	return &Formatter{format: format, root: root}
}

// Format renders result in the configured format.
func (f *Formatter) Format(result *generator.Result) (string, error) {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(result)
	case FormatTable:
		return f.formatTable(result), nil
	default:
		return f.formatText(result), nil
	}
}

// formatText formats the result as human-readable text.
func (f *Formatter) formatText(result *generator.Result) string {
	var sb strings.Builder

	sb.WriteString(printer.Info("Cordova Plugins"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")

	if result.Outcome.Skipped() {
		fmt.Fprintf(&sb, "%s %s\n", printer.Warning("⚠"), result.Outcome.Reason())
		return sb.String()
	}

	fmt.Fprintf(&sb, "Output: %s\n\n", printer.Bold(cmdutil.RelPath(f.root, result.OutputPath)))

	modules := 0
	for _, d := range result.Descriptors {
		fmt.Fprintf(&sb, "  %s %s %s %s\n",
			printer.Success("✓"), d.ID, d.Version,
			printer.Faint("("+cmdutil.RelPath(f.root, d.Path)+")"))
		for _, m := range d.Modules {
			rec := codegen.NewExportRecord(d.ID, m)
			fmt.Fprintf(&sb, "      %s -> %s", rec.ID, rec.File)
			if len(rec.Clobbers) > 0 {
				sb.WriteString(printer.Faint(" [" + strings.Join(rec.Clobbers, ", ") + "]"))
			}
			sb.WriteString("\n")
			modules++
		}
	}

	if len(result.Descriptors) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%d plugin descriptor(s), %d module(s)\n", len(result.Descriptors), modules)

	return sb.String()
}

// formatTable formats the result as a table.
func (f *Formatter) formatTable(result *generator.Result) string {
	var sb strings.Builder

	if result.Outcome.Skipped() {
		fmt.Fprintf(&sb, "%s\n", result.Outcome.Reason())
		return sb.String()
	}

	fmt.Fprintf(&sb, "%-30s %-30s %-10s %-40s\n", "EXPORT", "PLUGIN", "VERSION", "FILE")
	sb.WriteString(strings.Repeat("-", 113) + "\n")
	for _, d := range result.Descriptors {
		for _, m := range d.Modules {
			rec := codegen.NewExportRecord(d.ID, m)
			fmt.Fprintf(&sb, "%-30s %-30s %-10s %-40s\n", rec.ID, d.ID, d.Version, rec.File)
		}
	}

	return sb.String()
}

// formatJSON builds the JSON document field by field so the key order is
// outcome, output, plugins, exports, metadata.
func (f *Formatter) formatJSON(result *generator.Result) (string, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("outcome", result.Outcome.String())
	set("output", cmdutil.RelPath(f.root, result.OutputPath))
	if err == nil {
		doc, err = sjson.SetRawBytes(doc, "plugins", []byte(`[]`))
	}
	for _, d := range result.Descriptors {
		set("plugins.-1", newPluginView(d, cmdutil.RelPath(f.root, d.Path)))
	}

	agg := result.Aggregate
	if agg == nil {
		agg = codegen.NewAggregate()
	}
	set("exports", agg.Exports)
	set("metadata", agg.Metadata)

	if err != nil {
		return "", fmt.Errorf("failed to build JSON output: %w", err)
	}
	return string(pretty.Pretty(doc)), nil
}
