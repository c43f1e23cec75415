// Package project locates the analysed project on disk
package project

import (
	"errors"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// ErrNoActiveProject is returned when no project encloses a path
var ErrNoActiveProject = errors.New("no active project")

// Project represents a detected project
type Project struct {
	RootPath string // Absolute path to the project root directory
	Type     string // Type of project (java, gradle, go, refd, git)
	Name     string // Name of the project (extracted from build files)
	GoModule *modfile.Module
}

// Relative returns path relative to the project root with forward slashes,
// paths outside of the project are returned unchanged
func (p *Project) Relative(path string) string {
	if p == nil || path == "" || !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	relative, err := filepath.Rel(p.RootPath, path)
	if err != nil || strings.HasPrefix(relative, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(relative)
}

// Absolute resolves a project relative path
func (p *Project) Absolute(path string) string {
	if p == nil || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.RootPath, filepath.FromSlash(path))
}
