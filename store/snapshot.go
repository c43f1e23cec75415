// Package store persists program graphs as YAML snapshots or SQLite databases
package store

import (
	"context"
	"fmt"

	"github.com/viant/refd/graph"
)

// Node represents a persisted program location
type Node struct {
	ID             graph.ID      `yaml:"id"`
	Tags           []graph.Tag   `yaml:"tags,flow"`
	Name           string        `yaml:"name,omitempty"`
	ParameterIndex *int          `yaml:"parameterIndex,omitempty"`
	Source         *graph.Source `yaml:"source,omitempty"`
}

// Edge represents a persisted relation
type Edge struct {
	From graph.ID        `yaml:"from"`
	To   graph.ID        `yaml:"to"`
	Tags []graph.EdgeTag `yaml:"tags,flow"`
}

// Snapshot holds the nodes and edges of a program graph
type Snapshot struct {
	Nodes []Node `yaml:"nodes"`
	Edges []Edge `yaml:"edges"`
}

// Loader loads a program graph from a storage backend
type Loader interface {
	Load(ctx context.Context) (*graph.Graph, error)
}

// Exporter exports a program graph to a storage backend
type Exporter interface {
	Export(ctx context.Context, g *graph.Graph) error
}

// NewSnapshot captures graph locations and relations in id order
func NewSnapshot(g *graph.Graph) *Snapshot {
	result := &Snapshot{}
	for _, location := range g.Locations(g.Universe()) {
		node := Node{ID: location.ID, Tags: location.Tags.List(), Name: location.Name(), Source: location.Source()}
		if index, err := location.ParameterIndex(); err == nil {
			node.ParameterIndex = &index
		}
		result.Nodes = append(result.Nodes, node)
	}
	for _, relation := range g.Relations() {
		result.Edges = append(result.Edges, Edge{From: relation.From, To: relation.To, Tags: relation.Tags.List()})
	}
	return result
}

// Graph builds a program graph from the snapshot
func (s *Snapshot) Graph() (*graph.Graph, error) {
	result := graph.New()
	for _, node := range s.Nodes {
		location, err := result.AddLocation(node.ID, node.Tags...)
		if err != nil {
			return nil, err
		}
		if node.Name != "" {
			if err = location.SetAttribute(graph.AttrName, node.Name); err != nil {
				return nil, err
			}
		}
		if node.ParameterIndex != nil {
			if err = location.SetAttribute(graph.AttrParameterIndex, *node.ParameterIndex); err != nil {
				return nil, err
			}
		}
		if node.Source != nil {
			if err = location.SetAttribute(graph.AttrSource, *node.Source); err != nil {
				return nil, err
			}
		}
	}
	for i, edge := range s.Edges {
		if _, err := result.CreateRelation(edge.From, edge.To, edge.Tags...); err != nil {
			return nil, fmt.Errorf("invalid edge %d: %w", i, err)
		}
	}
	return result, nil
}
