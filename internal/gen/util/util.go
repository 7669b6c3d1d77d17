// Package util locates the pystr source tree for the code generators.
package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModulePath is the import path of the pystr module.
const ModulePath = "github.com/charlievieth/pystr"

func modfilePath(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	file, err := modfile.Parse(name, data, nil)
	if err != nil {
		return "", err
	}
	if file == nil || file.Module == nil || file.Module.Mod.Path == "" {
		return "", errors.New("util: missing module path: " + name)
	}
	return file.Module.Mod.Path, nil
}

// findModfile walks up from child until it finds the go.mod of module
// pkgPath and returns its directory.
func findModfile(child, pkgPath string) (string, error) {
	if !filepath.IsAbs(child) {
		return child, errors.New("util: directory must be absolute: " + child)
	}
	var first error
	dir := filepath.Clean(child)
	for {
		path := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(path); err == nil {
			pkg, err := modfilePath(path)
			if err != nil {
				if first == nil {
					first = err
				}
			} else if pkg == pkgPath {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if len(parent) >= len(dir) {
			break
		}
		dir = parent
	}
	if first != nil {
		return child, fmt.Errorf("util: error finding go.mod for package %q "+
			"in directory: %q: %w", pkgPath, child, first)
	}
	return child, fmt.Errorf("util: failed to find go.mod for package %q "+
		"in directory: %q", pkgPath, child)
}

// ProjectRoot returns the root directory of the pystr module containing
// the working directory.
func ProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findModfile(wd, ModulePath)
}

// GenTablesRoot returns the directory of the table generator.
func GenTablesRoot() (string, error) {
	root, err := ProjectRoot()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, "internal", "gentables")
	if _, err := os.Stat(dir); err != nil {
		return "", err
	}
	return dir, nil
}
