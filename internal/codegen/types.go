package codegen

import "github.com/indaco/cordovagen/internal/descriptor"

// PluginDirPrefix is prepended to every module source path in the export list.
const PluginDirPrefix = "plugins/"

// ExportRecord is one entry of the module.exports list.
// Field order is the serialized key order.
type ExportRecord struct {
	ID       string   `json:"id"`
	File     string   `json:"file"`
	Clobbers []string `json:"clobbers"`
}

// NewExportRecord derives the export record for a module of pluginID.
// Empty ids, names or sources are passed through unchanged.
func NewExportRecord(pluginID string, m descriptor.Module) ExportRecord {
	clobbers := make([]string, len(m.Clobbers))
	copy(clobbers, m.Clobbers)

	return ExportRecord{
		ID:       pluginID + "." + m.Name,
		File:     PluginDirPrefix + pluginID + "/" + m.Src,
		Clobbers: clobbers,
	}
}

// Metadata maps a plugin id to its declared version.
type Metadata map[string]string

// Aggregate accumulates export records and metadata across descriptors.
// The zero value is not usable; create one with NewAggregate.
type Aggregate struct {
	// Exports is ordered by descriptor, then by module document order.
	Exports []ExportRecord

	// Metadata holds one version per plugin id.
	Metadata Metadata
}

// NewAggregate returns an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		Exports:  make([]ExportRecord, 0),
		Metadata: make(Metadata),
	}
}

// Add appends the export records of d and records its version.
// A later descriptor with the same id overwrites the earlier version.
func (a *Aggregate) Add(d *descriptor.Descriptor) {
	for _, m := range d.Modules {
		a.Exports = append(a.Exports, NewExportRecord(d.ID, m))
	}
	a.Metadata[d.ID] = d.Version
}

// Merge builds an Aggregate from descriptors in the given order.
func Merge(descriptors []*descriptor.Descriptor) *Aggregate {
	agg := NewAggregate()
	for _, d := range descriptors {
		agg.Add(d)
	}
	return agg
}
