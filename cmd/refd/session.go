package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/refd/analysis"
	"github.com/viant/refd/config"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
	"github.com/viant/refd/project"
	"github.com/viant/refd/report"
	"github.com/viant/refd/spec"
	"github.com/viant/refd/store"
)

type graphStore interface {
	store.Loader
	store.Exporter
}

func newStore(path, format string) (graphStore, error) {
	switch strings.ToLower(format) {
	case "", config.FormatYAML:
		return store.NewYAML(path), nil
	case config.FormatSQLite:
		return store.NewSQLite(path), nil
	}
	return nil, fmt.Errorf("unsupported graph format: %v", format)
}

// session is a loaded program graph within its project
type session struct {
	*options
	graph   *graph.Graph
	project *project.Project
	fs      afs.Service
}

// open resolves the project and loads the graph; no graph mutation happens before both succeed
func (o *options) open(ctx context.Context) (*session, error) {
	current, err := o.detectProject(ctx)
	if err != nil {
		return nil, err
	}
	source, err := newStore(current.Absolute(o.cfg.Graph.Path), o.cfg.Graph.Format)
	if err != nil {
		return nil, err
	}
	g, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	o.logger.Debug("graph loaded", "path", o.cfg.Graph.Path, "locations", g.Len())
	return &session{options: o, graph: g, project: current, fs: afs.New()}, nil
}

// detectProject fails only when the project root was configured explicitly
func (o *options) detectProject(ctx context.Context) (*project.Project, error) {
	root := o.cfg.Project.Root
	if root == "" {
		root = "."
	}
	result, err := project.NewDetector().Detect(ctx, root)
	switch {
	case err == nil:
		o.logger.Debug("project detected", "root", result.RootPath, "type", result.Type, "name", result.Name)
		return result, nil
	case errors.Is(err, project.ErrNoActiveProject) && o.cfg.Project.Root == "":
		o.logger.Warn("no active project, source paths are reported as recorded", "error", err)
		return nil, nil
	}
	return nil, err
}

// analyse runs the refactoring on a background goroutine and waits for it to finish;
// the run mutates the session graph and cannot be interrupted part way
func (s *session) analyse(refactoring analysis.Refactoring) ([]*location.LabeledSet, error) {
	type outcome struct {
		dangers []*location.LabeledSet
		err     error
	}
	done := make(chan outcome, 1)
	analyser := analysis.New(s.graph, refactoring, analysis.WithLogger(s.logger.Named("analysis")))
	go func() {
		dangers, err := analyser.Analyse()
		done <- outcome{dangers: dangers, err: err}
	}()
	result := <-done
	return result.dangers, result.err
}

// run analyses the refactoring and writes its report
func (s *session) run(cmd *cobra.Command, refactoring analysis.Refactoring) error {
	dangers, err := s.analyse(refactoring)
	if err != nil {
		return fmt.Errorf("failed to analyse %v: %w", refactoring, err)
	}
	result, err := report.New(refactoring.String(), dangers, report.WithProject(s.project))
	if err != nil {
		return err
	}
	s.logger.Info("analysis finished", "refactoring", refactoring.String(), "run", result.RunID, "findings", len(result.Findings))
	buffer := &bytes.Buffer{}
	if err = result.Write(buffer, s.cfg.Report.Format); err != nil {
		return err
	}
	return s.write(cmd, buffer)
}

func (s *session) write(cmd *cobra.Command, buffer *bytes.Buffer) error {
	if s.cfg.Report.Output == "" {
		_, err := cmd.OutOrStdout().Write(buffer.Bytes())
		return err
	}
	if err := s.fs.Upload(cmd.Context(), s.cfg.Report.Output, file.DefaultFileOsMode, buffer); err != nil {
		return fmt.Errorf("failed to write report %v: %w", s.cfg.Report.Output, err)
	}
	return nil
}

// findClass resolves "package,visibility,name" or a bare class name to an existing class
func (s *session) findClass(text string) (*spec.Class, error) {
	probe, err := spec.ParseClass(text)
	if err != nil {
		return nil, err
	}
	class, err := probe.Resolve(s.graph)
	if err != nil {
		return nil, fmt.Errorf("failed to find class %v: %w", text, err)
	}
	return spec.ClassFromLocation(s.graph, class)
}

func (s *session) findMethods(references []string) ([]*spec.Method, error) {
	var result []*spec.Method
	for _, reference := range references {
		method, err := spec.FindMethod(s.graph, reference)
		if err != nil {
			return nil, fmt.Errorf("failed to find method %v: %w", reference, err)
		}
		result = append(result, method)
	}
	return result, nil
}
