package discovery

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/indaco/cordovagen/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CheckApplicability(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *core.MockFileSystem)
		want  Outcome
	}{
		{
			name:  "no html directory",
			setup: func(m *core.MockFileSystem) { m.SetDir("/p/src") },
			want:  SkippedNoTargetDir,
		},
		{
			name:  "html path is a file",
			setup: func(m *core.MockFileSystem) { m.SetFile("/p/src/html", []byte("x")) },
			want:  SkippedNoTargetDir,
		},
		{
			name:  "html directory without marker",
			setup: func(m *core.MockFileSystem) { m.SetFile("/p/src/html/index.html", nil) },
			want:  SkippedNotCordova,
		},
		{
			name: "marker in src/html",
			setup: func(m *core.MockFileSystem) {
				m.SetFile("/p/src/html/cordova.js", nil)
			},
			want: Applicable,
		},
		{
			name: "marker in lib/impl/cls/html only",
			setup: func(m *core.MockFileSystem) {
				m.SetDir("/p/src/html")
				m.SetFile("/p/lib/impl/cls/html/cordova.js", nil)
			},
			want: Applicable,
		},
		{
			name: "marker name is case-sensitive",
			setup: func(m *core.MockFileSystem) {
				m.SetFile("/p/src/html/Cordova.js", nil)
			},
			want: SkippedNotCordova,
		},
		{
			name: "marker in wrong directory",
			setup: func(m *core.MockFileSystem) {
				m.SetDir("/p/src/html")
				m.SetFile("/p/src/cordova.js", nil)
			},
			want: SkippedNotCordova,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := core.NewMockFileSystem()
			tt.setup(mfs)

			got, err := NewService(mfs, nil).CheckApplicability(context.Background(), "/p")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_CheckApplicability_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(core.NewMockFileSystem(), nil).CheckApplicability(ctx, "/p")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_FindDescriptors(t *testing.T) {
	mfs := core.NewMockFileSystem()
	mfs.SetFile("/p/src/cordova-plugin-file.xml", nil)
	mfs.SetFile("/p/src/cordova-plugin-camera.xml", nil)
	mfs.SetFile("/p/src/cordova-plugin-.xml", nil)
	mfs.SetFile("/p/src/Cordova-plugin-upper.xml", nil)
	mfs.SetFile("/p/src/cordova-plugin-notxml.XML", nil)
	mfs.SetFile("/p/src/plugin.xml", nil)
	mfs.SetFile("/p/src/nested/cordova-plugin-deep.xml", nil)
	mfs.SetDir("/p/src/cordova-plugin-dir.xml")
	mfs.SetFile("/p/lib/impl/cls/cordova-plugin-device.xml", nil)
	mfs.SetFile("/p/lib/impl/cls/cordova-plugin-battery.xml", nil)

	got, err := NewService(mfs, nil).FindDescriptors(context.Background(), "/p")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/p/src/cordova-plugin-.xml",
		"/p/src/cordova-plugin-camera.xml",
		"/p/src/cordova-plugin-file.xml",
		"/p/lib/impl/cls/cordova-plugin-battery.xml",
		"/p/lib/impl/cls/cordova-plugin-device.xml",
	}, got)
}

func TestService_FindDescriptors_MissingRoots(t *testing.T) {
	mfs := core.NewMockFileSystem()
	mfs.SetFile("/p/lib/impl/cls/cordova-plugin-device.xml", nil)

	got, err := NewService(mfs, nil).FindDescriptors(context.Background(), "/p")
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/lib/impl/cls/cordova-plugin-device.xml"}, got)

	got, err = NewService(core.NewMockFileSystem(), nil).FindDescriptors(context.Background(), "/p")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_FindDescriptors_UnreadableRoot(t *testing.T) {
	mfs := core.NewMockFileSystem()
	mfs.SetFile("/p/src/cordova-plugin-a.xml", nil)
	mfs.SetError("/p/src", errors.New("permission denied"))
	mfs.SetFile("/p/lib/impl/cls/cordova-plugin-b.xml", nil)

	got, err := NewService(mfs, nil).FindDescriptors(context.Background(), "/p")
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/lib/impl/cls/cordova-plugin-b.xml"}, got)
}

func TestService_Discover(t *testing.T) {
	ctx := context.Background()

	t.Run("skipped has no descriptors", func(t *testing.T) {
		mfs := core.NewMockFileSystem()
		mfs.SetFile("/p/src/cordova-plugin-camera.xml", nil)

		result, err := NewService(mfs, nil).Discover(ctx, "/p")
		require.NoError(t, err)
		assert.Equal(t, SkippedNoTargetDir, result.Outcome)
		assert.Empty(t, result.Descriptors)
		assert.Equal(t, "/p/src/html/cordova_plugins.js", result.OutputPath)
	})

	t.Run("applicable", func(t *testing.T) {
		mfs := core.NewMockFileSystem()
		mfs.SetFile("/p/src/html/cordova.js", nil)
		mfs.SetFile("/p/src/cordova-plugin-camera.xml", nil)

		result, err := NewService(mfs, nil).Discover(ctx, "/p")
		require.NoError(t, err)
		assert.Equal(t, Applicable, result.Outcome)
		assert.Equal(t, []string{"/p/src/cordova-plugin-camera.xml"}, result.Descriptors)
	})
}

func TestService_Discover_OSFileSystem(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "src", "html", "cordova.js"))
	mustWrite(t, filepath.Join(root, "src", "cordova-plugin-b.xml"))
	mustWrite(t, filepath.Join(root, "src", "cordova-plugin-a.xml"))

	result, err := NewService(core.NewOSFileSystem(), nil).Discover(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, Applicable, result.Outcome)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "cordova-plugin-a.xml"),
		filepath.Join(root, "src", "cordova-plugin-b.xml"),
	}, result.Descriptors)
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}
