package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dawnmagnet/mirrorgen/internal/cli"
	"github.com/dawnmagnet/mirrorgen/internal/distro"
	"github.com/dawnmagnet/mirrorgen/internal/models"
	"github.com/dawnmagnet/mirrorgen/internal/recipe"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestStdoutOutput(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "rockylinux:8", "--stdout")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "FROM quay.io/rockylinux/rockylinux:8\n"), "got: %s", out)

	// The stream carries exactly the rendered recipe, nothing else.
	cfg, err := distro.Lookup("rockylinux")
	require.NoError(t, err)
	assert.Equal(t, recipe.Render(cfg, "rockylinux", "8", ""), out)
}

func TestMirrorOverrideFlag(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "almalinux:9", "--stdout", "--mirror", "https://mirror.example.org")
	require.NoError(t, err)
	assert.Contains(t, out, "|baseurl=https://mirror.example.org|")
	assert.NotContains(t, out, "|baseurl=https://mirrors.aliyun.com|")
}

func TestWriteToFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "rocky.Dockerfile")
	stdout, err := execute(t, "rockylinux:9", "--out", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "FROM quay.io/rockylinux/rockylinux:9\n"))
}

func TestDefaultOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(wd) }()

	_, err = execute(t, "centos:7")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(tmpDir, "centos-7.Dockerfile"))
	require.NoError(t, err)
}

func TestUnknownDistro(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "debian:12", "--stdout")
	require.Error(t, err)

	var genErr *models.GenError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, models.ErrUnknownDistro, genErr.Type)
	assert.Contains(t, err.Error(), "rockylinux")
}

func TestMalformedImage(t *testing.T) {
	t.Parallel()

	for _, image := range []string{"nocolon", ":8", "rockylinux:"} {
		_, err := execute(t, image, "--stdout")
		require.Error(t, err, "image %q", image)

		var genErr *models.GenError
		require.ErrorAs(t, err, &genErr, "image %q", image)
		assert.Equal(t, models.ErrInvalidImage, genErr.Type, "image %q", image)
	}
}

func TestWriteFailure(t *testing.T) {
	t.Parallel()

	// A regular file in the middle of the output path makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := execute(t, "rockylinux:8", "--out", filepath.Join(blocker, "sub", "out.Dockerfile"))
	require.Error(t, err)

	var genErr *models.GenError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, models.ErrOutputWrite, genErr.Type)
}
