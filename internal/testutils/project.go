package testutils

import (
	"os"
	"path/filepath"
	"testing"
)

// CameraDescriptor is a minimal single-module plugin descriptor.
const CameraDescriptor = `<?xml version="1.0" encoding="UTF-8"?>
<plugin id="camera" version="1.0">
    <js-module name="Camera" src="www/Camera.js">
        <clobbers target="navigator.camera" />
    </js-module>
</plugin>
`

// CameraModule is the module generated from CameraDescriptor alone.
const CameraModule = "cordova.define('cordova/plugin_list', function(require, exports, module) {\n" +
	`module.exports =[{"id":"camera.Camera","file":"plugins/camera/www/Camera.js","clobbers":["navigator.camera"]}];` + "\n" +
	`module.exports.metadata ={"camera":"1.0"};` + "\n" +
	"});"

// WriteTempFile writes content to root/rel, creating parent directories.
func WriteTempFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

// WriteCordovaProject creates an applicable project in a temp dir: src/html
// with a cordova.js marker plus the given descriptors, keyed by path
// relative to the project root.
func WriteCordovaProject(t *testing.T, descriptors map[string]string) string {
	t.Helper()
	root := t.TempDir()
	WriteTempFile(t, root, "src/html/cordova.js", "")
	for rel, content := range descriptors {
		WriteTempFile(t, root, rel, content)
	}
	return root
}

// ReadTempFile reads root/rel and fails the test when it is missing.
func ReadTempFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}
