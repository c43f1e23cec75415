package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/refd/graph"
	"gopkg.in/yaml.v3"
)

// YAML stores a graph snapshot as a YAML document at any afs supported URL
type YAML struct {
	URL string
	fs  afs.Service
}

// Option configures a store
type Option func(*YAML)

// WithFS sets the storage service
func WithFS(fs afs.Service) Option {
	return func(y *YAML) {
		y.fs = fs
	}
}

// NewYAML creates a YAML store
func NewYAML(URL string, opts ...Option) *YAML {
	result := &YAML{URL: URL, fs: afs.New()}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// Load downloads and decodes the snapshot
func (y *YAML) Load(ctx context.Context) (*graph.Graph, error) {
	data, err := y.fs.DownloadWithURL(ctx, y.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download graph %v: %w", y.URL, err)
	}
	snapshot := &Snapshot{}
	if err = yaml.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode graph %v: %w", y.URL, err)
	}
	return snapshot.Graph()
}

// Export encodes and uploads the snapshot
func (y *YAML) Export(ctx context.Context, g *graph.Graph) error {
	data, err := yaml.Marshal(NewSnapshot(g))
	if err != nil {
		return err
	}
	if err = y.fs.Upload(ctx, y.URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload graph %v: %w", y.URL, err)
	}
	return nil
}
