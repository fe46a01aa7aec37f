// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fileutil discovers files and directories by extension.
package fileutil // import "github.com/cxdata/go-datautil/fileutil"

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Subdirs returns the paths of the immediate subdirectories of dir,
// joined with dir.
func Subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "fileutil: subdirs")
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(dir, e.Name()))
		}
	}
	return dirs, nil
}

// Files returns the paths of the files directly in dir whose
// extension is ext (e.g. ".csv"), joined with dir.
func Files(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "fileutil: files")
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ext {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	glog.V(1).Infof("found %d %s files in %s", len(files), ext, dir)
	return files, nil
}

// FileNames is like Files but returns base names with the extension
// stripped.
func FileNames(dir, ext string) ([]string, error) {
	files, err := Files(dir, ext)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = strings.TrimSuffix(filepath.Base(f), ext)
	}
	return names, nil
}

// FilesAll returns the paths of all files with extension ext in dir
// and, recursively, its subdirectories.
func FilesAll(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ext {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "fileutil: walk")
	}
	glog.V(1).Infof("found %d %s files under %s", len(files), ext, dir)
	return files, nil
}
