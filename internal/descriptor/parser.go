package descriptor

import (
	"bytes"
	"context"

	"github.com/beevik/etree"
	"github.com/indaco/cordovagen/internal/core"
	rtvalidator "github.com/mattermost/xml-roundtrip-validator"
)

// Parser reads descriptor files through a core.FileSystem.
type Parser struct {
	fs core.FileSystem
}

// NewParser creates a Parser backed by fs.
func NewParser(fs core.FileSystem) *Parser {
	return &Parser{fs: fs}
}

// ParseFile reads and parses the descriptor at path.
// The file is fully read (and closed) before parsing starts.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Descriptor, error) {
	data, err := p.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse parses descriptor content. Path is only used for error reporting
// and is recorded on the returned Descriptor.
func Parse(path string, data []byte) (*Descriptor, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if err := rtvalidator.Validate(bytes.NewReader(data)); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := checkWellFormed(data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Path: path, Err: ErrNoRootElement}
	}

	d := &Descriptor{
		Path:    path,
		ID:      attr(root, AttrID),
		Version: attr(root, AttrVersion),
		Modules: make([]Module, 0),
	}

	// Only direct children of the root count; js-module elements nested
	// anywhere deeper (platform sections included) are ignored.
	for _, el := range root.ChildElements() {
		if el.FullTag() != ModuleTag {
			continue
		}
		d.Modules = append(d.Modules, Module{
			Name:     attr(el, AttrName),
			Src:      attr(el, AttrSrc),
			Clobbers: collectTargets(el, make([]string, 0)),
		})
	}

	return d, nil
}

// collectTargets appends the target of every clobbers element below el,
// at any depth, in document order.
func collectTargets(el *etree.Element, targets []string) []string {
	for _, child := range el.ChildElements() {
		if child.FullTag() == ClobbersTag {
			targets = append(targets, attr(child, AttrTarget))
		}
		targets = collectTargets(child, targets)
	}
	return targets
}

// attr returns the value of the unprefixed attribute key, or "" when absent.
// Prefixed attributes such as android:name never match.
func attr(el *etree.Element, key string) string {
	for _, a := range el.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value
		}
	}
	return ""
}
