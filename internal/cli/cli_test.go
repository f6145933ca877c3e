package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/indaco/cordovagen/internal/config"
	"github.com/indaco/cordovagen/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	app := New(cfg)
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(context.Background(), append([]string{"cordovagen"}, args...))
	return out.String(), err
}

func TestNew_DefaultActionGenerates(t *testing.T) {
	root := testutils.WriteCordovaProject(t, map[string]string{
		"src/cordova-plugin-camera.xml": testutils.CameraDescriptor,
	})

	out, err := run(t, config.Default(), "--project", root)
	require.NoError(t, err)

	assert.Contains(t, out, "was generated successfully.")
	assert.Equal(t, testutils.CameraModule, testutils.ReadTempFile(t, root, "src/html/cordova_plugins.js"))
}

func TestNew_ProjectFromConfig(t *testing.T) {
	root := testutils.WriteCordovaProject(t, map[string]string{
		"lib/impl/cls/cordova-plugin-camera.xml": testutils.CameraDescriptor,
	})

	cfg := config.Default()
	cfg.Project = root

	_, err := run(t, cfg, "generate")
	require.NoError(t, err)
	assert.Equal(t, testutils.CameraModule, testutils.ReadTempFile(t, root, "src/html/cordova_plugins.js"))
}

func TestNew_SkipsNonCordovaProject(t *testing.T) {
	root := t.TempDir()
	testutils.WriteTempFile(t, root, "src/html/index.html", "<html></html>")

	out, err := run(t, config.Default(), "-p", root, "gen")
	require.NoError(t, err)

	assert.Contains(t, out, "Skipping cordova_plugins.js generation: this project is not a cordova project, no cordova.js file was found.")
	assert.NoFileExists(t, filepath.Join(root, "src", "html", "cordova_plugins.js"))
}

func TestNew_MalformedDescriptorFails(t *testing.T) {
	root := testutils.WriteCordovaProject(t, map[string]string{
		"src/cordova-plugin-bad.xml": "<plugin id='x'><js-module name='a' src='a.js'></plugin>",
	})
	testutils.WriteTempFile(t, root, "src/html/cordova_plugins.js", "previous")

	_, err := run(t, config.Default(), "--project", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed")
	assert.Equal(t, "previous", testutils.ReadTempFile(t, root, "src/html/cordova_plugins.js"))
}

func TestNew_Subcommands(t *testing.T) {
	app := New(config.Default())

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"generate", "list", "check"}, names)
	assert.Equal(t, "cordovagen", app.Name)
}
