package codegen

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Fixed pieces of the generated module. The runtime module loader matches
// on the exact cordova.define('cordova/plugin_list', ...) call.
const (
	moduleHeader    = "cordova.define('cordova/plugin_list', function(require, exports, module) {\n"
	exportsPrefix   = "module.exports ="
	metadataPrefix  = "module.exports.metadata ="
	statementSuffix = ";\n"
	moduleFooter    = "});"
)

// Render produces the cordova_plugins.js content for agg.
// The output depends only on agg, so equal inputs render byte-identical text.
func Render(agg *Aggregate) ([]byte, error) {
	exports := agg.Exports
	if exports == nil {
		exports = []ExportRecord{}
	}
	metadata := agg.Metadata
	if metadata == nil {
		metadata = Metadata{}
	}

	exportsJSON, err := marshalCompact(exports)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plugin export list: %w", err)
	}
	metadataJSON, err := marshalCompact(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plugin metadata: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(moduleHeader)
	buf.WriteString(exportsPrefix)
	buf.Write(exportsJSON)
	buf.WriteString(statementSuffix)
	buf.WriteString(metadataPrefix)
	buf.Write(metadataJSON)
	buf.WriteString(statementSuffix)
	buf.WriteString(moduleFooter)

	return buf.Bytes(), nil
}

// marshalCompact encodes v as compact JSON without HTML escaping.
// Map keys come out sorted, which keeps the metadata object stable.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
