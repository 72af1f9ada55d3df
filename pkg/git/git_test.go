package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepositoryRootFromNestedDir(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))

	nested := filepath.Join(tmpDir, "pkg", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))

	require.Equal(t, tmpDir, RepositoryRoot(nested))
}

func TestRepositoryRootAtRepoRoot(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))

	require.Equal(t, tmpDir, RepositoryRoot(tmpDir))
}

func TestRepositoryRootWorktreePointerFile(t *testing.T) {
	tmpDir := t.TempDir()
	gitFile := filepath.Join(tmpDir, ".git")
	require.NoError(t, os.WriteFile(gitFile, []byte("gitdir: /elsewhere\n"), 0644))

	require.Equal(t, tmpDir, RepositoryRoot(tmpDir))
}

func TestRepositoryRootNotFound(t *testing.T) {
	require.Equal(t, "", RepositoryRoot(t.TempDir()))
}
