package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

type marker struct {
	name        string
	projectType string
}

// Detector identifies project root folders
type Detector struct {
	markers []marker
	ceiling string
	fs      afs.Service
}

// NewDetector creates a project detector; markers are checked in order at each directory level
func NewDetector() *Detector {
	return &Detector{
		markers: []marker{
			{name: ".refd.yaml", projectType: "refd"},
			{name: "pom.xml", projectType: "java"},
			{name: "build.gradle", projectType: "gradle"},
			{name: "settings.gradle", projectType: "gradle"},
			{name: "go.mod", projectType: "go"},
			{name: ".git", projectType: "git"},
		},
		fs: afs.New(),
	}
}

// WithCeiling stops the upward search at dir
func (d *Detector) WithCeiling(dir string) *Detector {
	d.ceiling = filepath.Clean(dir)
	return d
}

// Detect returns the project enclosing path, or ErrNoActiveProject
func (d *Detector) Detect(ctx context.Context, path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoActiveProject, err)
	}
	startDir := absPath
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}
	rootPath, projectType := d.findProjectRoot(startDir)
	if rootPath == "" {
		return nil, fmt.Errorf("%w: no project marker above %v", ErrNoActiveProject, absPath)
	}
	result := &Project{RootPath: rootPath, Type: projectType, Name: filepath.Base(rootPath)}
	switch projectType {
	case "go":
		if module := d.goModule(ctx, filepath.Join(rootPath, "go.mod")); module != nil {
			result.GoModule = module
			result.Name = module.Mod.Path
		}
	case "java":
		if name := d.match(ctx, filepath.Join(rootPath, "pom.xml"), artifactID, parentBlock); name != "" {
			result.Name = name
		}
	case "gradle":
		if name := d.match(ctx, filepath.Join(rootPath, "settings.gradle"), gradleName); name != "" {
			result.Name = name
		}
	}
	return result, nil
}

// findProjectRoot searches up from the start directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, candidate := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, candidate.name)); err == nil {
				return dir, candidate.projectType
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir || dir == d.ceiling {
			return "", ""
		}
		dir = parent
	}
}

var (
	artifactID  = regexp.MustCompile(`<artifactId>([^<]+)</artifactId>`)
	parentBlock = regexp.MustCompile(`(?s)<parent>.*?</parent>`)
	gradleName  = regexp.MustCompile(`(?:rootProject|project)\.name\s*=\s*['"]([^'"]+)['"]`)
)

func (d *Detector) goModule(ctx context.Context, goModPath string) *modfile.Module {
	content, _ := d.fs.DownloadWithURL(ctx, goModPath)
	if len(content) == 0 {
		return nil
	}
	if mod, _ := modfile.Parse(goModPath, content, nil); mod != nil {
		return mod.Module
	}
	return nil
}

// match returns the first expr group once skipped blocks are removed
func (d *Detector) match(ctx context.Context, path string, expr *regexp.Regexp, skip ...*regexp.Regexp) string {
	content, _ := d.fs.DownloadWithURL(ctx, path)
	for _, block := range skip {
		content = block.ReplaceAll(content, nil)
	}
	if matches := expr.FindSubmatch(content); len(matches) >= 2 {
		return string(matches[1])
	}
	return ""
}
