package descriptor

// Element and attribute names read from a descriptor document.
const (
	// ModuleTag declares one JavaScript entry point exposed by the plugin.
	ModuleTag = "js-module"

	// ClobbersTag names a global-namespace path a module binds itself to.
	ClobbersTag = "clobbers"

	AttrID      = "id"
	AttrVersion = "version"
	AttrName    = "name"
	AttrSrc     = "src"
	AttrTarget  = "target"
)

// Descriptor is the parsed form of one plugin descriptor file.
// It is built once by the parser and treated as read-only afterwards.
type Descriptor struct {
	// Path is the file the descriptor was read from.
	Path string

	// ID is the root element's id attribute ("" when absent).
	ID string

	// Version is the root element's version attribute ("" when absent).
	Version string

	// Modules lists the js-module declarations in document order.
	Modules []Module
}

// Module is one js-module declaration.
type Module struct {
	// Name is the module name; combined with the plugin id it forms the export id.
	Name string

	// Src is the module source path, relative to the plugin directory.
	Src string

	// Clobbers holds the target of every clobbers element below the
	// module, in document order.
	Clobbers []string
}

// ClobberCount returns the total number of clobbers targets across all modules.
func (d *Descriptor) ClobberCount() int {
	n := 0
	for _, m := range d.Modules {
		n += len(m.Clobbers)
	}
	return n
}
