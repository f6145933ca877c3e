package discovery

import (
	"path/filepath"
	"strings"
)

// Fixed project layout. None of these are configurable.
const (
	// SourceDir is the project source directory.
	SourceDir = "src"

	// HTMLDir is the web assets directory inside SourceDir; the generated
	// module is written there.
	HTMLDir = "html"

	// MarkerFile signals that a project uses the Cordova bridge.
	MarkerFile = "cordova.js"

	// OutputFile is the name of the generated bootstrap module.
	OutputFile = "cordova_plugins.js"

	// DescriptorPrefix and DescriptorSuffix select descriptor file names.
	DescriptorPrefix = "cordova-plugin-"
	DescriptorSuffix = ".xml"
)

// libImplClsDir holds classes and resources contributed by installed libraries.
var libImplClsDir = filepath.Join("lib", "impl", "cls")

// Outcome is the result of the applicability gate.
type Outcome int

const (
	// Applicable means generation should proceed.
	Applicable Outcome = iota

	// SkippedNoTargetDir means the output directory does not exist.
	SkippedNoTargetDir

	// SkippedNotCordova means no cordova.js marker was found.
	SkippedNotCordova
)

// String returns a short machine-friendly name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Applicable:
		return "applicable"
	case SkippedNoTargetDir:
		return "skipped-no-target-dir"
	case SkippedNotCordova:
		return "skipped-not-cordova"
	default:
		return "unknown"
	}
}

// Skipped reports whether the gate decided not to generate.
func (o Outcome) Skipped() bool {
	return o == SkippedNoTargetDir || o == SkippedNotCordova
}

// Reason is the human-readable explanation for a skipped outcome.
func (o Outcome) Reason() string {
	switch o {
	case SkippedNoTargetDir:
		return "no html directory found"
	case SkippedNotCordova:
		return "this project is not a cordova project, no cordova.js file was found"
	default:
		return ""
	}
}

// Layout resolves the fixed project paths relative to a project root.
type Layout struct {
	Root string
}

// NewLayout returns the Layout for root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// OutputDir is the directory the generated module is written to.
func (l Layout) OutputDir() string {
	return filepath.Join(l.Root, SourceDir, HTMLDir)
}

// OutputPath is the full path of the generated module.
func (l Layout) OutputPath() string {
	return filepath.Join(l.OutputDir(), OutputFile)
}

// MarkerDirs lists the directories searched for the cordova.js marker.
func (l Layout) MarkerDirs() []string {
	return []string{
		filepath.Join(l.Root, SourceDir, HTMLDir),
		filepath.Join(l.Root, libImplClsDir, HTMLDir),
	}
}

// DescriptorDirs lists the directories searched for descriptors, in order.
func (l Layout) DescriptorDirs() []string {
	return []string{
		filepath.Join(l.Root, SourceDir),
		filepath.Join(l.Root, libImplClsDir),
	}
}

// IsDescriptorName reports whether a file name follows the descriptor
// naming convention. The match is case-sensitive.
func IsDescriptorName(name string) bool {
	return strings.HasPrefix(name, DescriptorPrefix) && strings.HasSuffix(name, DescriptorSuffix)
}

// Result is the outcome of gate and discovery for one project.
type Result struct {
	// Outcome is the applicability decision.
	Outcome Outcome

	// OutputPath is where the module is (or would be) written.
	OutputPath string

	// Descriptors lists descriptor paths in processing order. It is empty
	// when Outcome is not Applicable.
	Descriptors []string
}
