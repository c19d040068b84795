package io

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirFS(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	root := t.TempDir()
	dir := DirFS(root)

	require.NoError(dir.Mkdir("out", 0755))
	require.NoError(dir.Mkdir("out/each", 0755))

	sub, err := dir.Sub("out")
	require.NoError(err)

	file, err := sub.Create("each/trace.yaml")
	require.NoError(err)
	_, err = file.Write([]byte("pc: 1\n"))
	assert.NoError(err)
	assert.NoError(file.Close())

	data, err := os.ReadFile(filepath.Join(root, "out", "each", "trace.yaml"))
	require.NoError(err)
	assert.Equal("pc: 1\n", string(data))

	_, err = dir.Sub("missing")
	assert.ErrorIs(err, fs.ErrNotExist)

	_, err = sub.Sub("each/trace.yaml")
	assert.ErrorIs(err, fs.ErrInvalid)

	require.NoError(dir.RemoveAll("out"))
	_, err = os.Stat(filepath.Join(root, "out"))
	assert.ErrorIs(err, fs.ErrNotExist)

	assert.NoError(dir.RemoveAll("out"))
}

func TestDirFS_PathInvalid(t *testing.T) {
	assert := assert.New(t)

	dir := DirFS(t.TempDir())

	assert.ErrorIs(dir.Mkdir("../escape", 0755), ErrPathInvalid)
	assert.ErrorIs(dir.Mkdir("/abs", 0755), ErrPathInvalid)
	assert.ErrorIs(dir.RemoveAll("."), ErrPathInvalid)
	_, err := dir.Create("a/../../b")
	assert.ErrorIs(err, ErrPathInvalid)
}
