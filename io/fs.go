package io

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CreateFS defines a file system interface that supports creating files and directories.
// It extends basic file system operations with write capabilities for the
// debug trace output tree.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
	// RemoveAll removes a file or directory tree. Missing names are not an error.
	RemoveAll(name string) (err error)
}

// DirFS is a CreateFS rooted at a host directory.
type DirFS string

var _ CreateFS = DirFS("")

// path resolves a slash separated name below the root.
func (dir DirFS) path(name string) (path string, err error) {
	if !fs.ValidPath(name) || strings.Contains(name, `\`) {
		err = &fs.PathError{Op: "open", Path: name, Err: ErrPathInvalid}
		return
	}

	path = filepath.Join(string(dir), filepath.FromSlash(name))
	return
}

func (dir DirFS) Sub(name string) (sub CreateFS, err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: name, Err: fs.ErrInvalid}
		return
	}

	sub = DirFS(path)
	return
}

func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}

	file, err = os.Create(path)
	return
}

func (dir DirFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}

	err = os.Mkdir(path, filemode)
	return
}

func (dir DirFS) RemoveAll(name string) (err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}
	if name == "." {
		err = &fs.PathError{Op: "remove", Path: name, Err: ErrPathInvalid}
		return
	}

	err = os.RemoveAll(path)
	return
}
