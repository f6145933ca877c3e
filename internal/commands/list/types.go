package list

import "github.com/indaco/cordovagen/internal/descriptor"

// OutputFormat controls how the plugin list is displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs tabular data.
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// pluginView is the JSON shape of one descriptor.
type pluginView struct {
	ID      string       `json:"id"`
	Version string       `json:"version"`
	Path    string       `json:"path"`
	Modules []moduleView `json:"modules"`
}

type moduleView struct {
	Name     string   `json:"name"`
	Src      string   `json:"src"`
	Clobbers []string `json:"clobbers"`
}

func newPluginView(d *descriptor.Descriptor, path string) pluginView {
	modules := make([]moduleView, 0, len(d.Modules))
	for _, m := range d.Modules {
		clobbers := m.Clobbers
		if clobbers == nil {
			clobbers = []string{}
		}
		modules = append(modules, moduleView{Name: m.Name, Src: m.Src, Clobbers: clobbers})
	}
	return pluginView{ID: d.ID, Version: d.Version, Path: path, Modules: modules}
}
