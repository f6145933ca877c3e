package list

import (
	"path/filepath"
	"testing"

	"github.com/indaco/cordovagen/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
)

func TestListCmd_JSON(t *testing.T) {
	root := testutils.WriteCordovaProject(t, map[string]string{
		"src/cordova-plugin-camera.xml": testutils.CameraDescriptor,
	})

	appCli, out := testutils.BuildCLIForTests([]*cli.Command{Run()})
	testutils.RunCLITest(t, appCli, []string{"cordovagen", "list", "--format", "json"}, root)

	doc := out.String()
	require.True(t, gjson.Valid(doc), "output must be valid JSON: %s", doc)
	assert.Equal(t, "applicable", gjson.Get(doc, "outcome").String())
	assert.Equal(t, filepath.Join("src", "html", "cordova_plugins.js"), gjson.Get(doc, "output").String())
	assert.Equal(t, int64(1), gjson.Get(doc, "plugins.#").Int())
	assert.Equal(t, "camera", gjson.Get(doc, "plugins.0.id").String())
	assert.Equal(t, "Camera", gjson.Get(doc, "plugins.0.modules.0.name").String())
	assert.Equal(t, "camera.Camera", gjson.Get(doc, "exports.0.id").String())
	assert.Equal(t, "1.0", gjson.Get(doc, "metadata.camera").String())
}

func TestListCmd_Text(t *testing.T) {
	root := testutils.WriteCordovaProject(t, map[string]string{
		"src/cordova-plugin-camera.xml": testutils.CameraDescriptor,
	})

	appCli, out := testutils.BuildCLIForTests([]*cli.Command{Run()})
	testutils.RunCLITest(t, appCli, []string{"cordovagen", "list"}, root)

	for _, want := range []string{
		"Cordova Plugins",
		"camera 1.0",
		"camera.Camera -> plugins/camera/www/Camera.js",
		"navigator.camera",
		"1 plugin descriptor(s), 1 module(s)",
	} {
		assert.Contains(t, out.String(), want)
	}
}

func TestListCmd_WritesNothing(t *testing.T) {
	root := testutils.WriteCordovaProject(t, map[string]string{
		"src/cordova-plugin-camera.xml": testutils.CameraDescriptor,
	})

	appCli, _ := testutils.BuildCLIForTests([]*cli.Command{Run()})
	testutils.RunCLITest(t, appCli, []string{"cordovagen", "list", "--format", "table"}, root)

	assert.NoFileExists(t, filepath.Join(root, "src", "html", "cordova_plugins.js"))
}

func TestListCmd_ParseError(t *testing.T) {
	root := testutils.WriteCordovaProject(t, map[string]string{
		"src/cordova-plugin-broken.xml": "<plugin",
	})

	appCli, _ := testutils.BuildCLIForTests([]*cli.Command{Run()})
	err := testutils.RunCLITestAllowError(t, appCli, []string{"cordovagen", "list"}, root)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list failed")
	assert.Contains(t, err.Error(), "cordova-plugin-broken.xml")
}
