package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/viant/refd/graph"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// SQLite stores a graph in nodes and edges tables of a SQLite database file
type SQLite struct {
	Path string
}

// NewSQLite creates a SQLite store
func NewSQLite(path string) *SQLite {
	return &SQLite{Path: path}
}

const schema = `
CREATE TABLE nodes (
    id TEXT PRIMARY KEY,
    tags TEXT NOT NULL,
    name TEXT NOT NULL,
    parameter_index INTEGER NOT NULL DEFAULT -1,
    source_path TEXT NOT NULL DEFAULT '',
    source_offset INTEGER NOT NULL DEFAULT 0,
    source_length INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE edges (
    source TEXT NOT NULL,
    target TEXT NOT NULL,
    tags TEXT NOT NULL
);

CREATE INDEX idx_edges_source ON edges(source);
CREATE INDEX idx_edges_target ON edges(target);
`

// Export replaces the database with the graph
func (s *SQLite) Export(_ context.Context, g *graph.Graph) (err error) {
	_ = os.Remove(s.Path)
	conn, err := sqlite.OpenConn(s.Path, sqlite.OpenCreate, sqlite.OpenReadWrite, sqlite.OpenWAL)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer func() { _ = conn.Close() }()
	if err = sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer endFn(&err)
	snapshot := NewSnapshot(g)
	if err = insertNodes(conn, snapshot.Nodes); err != nil {
		return err
	}
	return insertEdges(conn, snapshot.Edges)
}

func insertNodes(conn *sqlite.Conn, nodes []Node) error {
	stmt, err := conn.Prepare(`INSERT INTO nodes (id, tags, name, parameter_index, source_path, source_offset, source_length) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare nodes: %w", err)
	}
	defer func() { _ = stmt.Finalize() }()
	for _, node := range nodes {
		stmt.BindText(1, string(node.ID))
		stmt.BindText(2, joinTags(node.Tags))
		stmt.BindText(3, node.Name)
		index := int64(-1)
		if node.ParameterIndex != nil {
			index = int64(*node.ParameterIndex)
		}
		stmt.BindInt64(4, index)
		source := graph.Source{}
		if node.Source != nil {
			source = *node.Source
		}
		stmt.BindText(5, source.Path)
		stmt.BindInt64(6, int64(source.Offset))
		stmt.BindInt64(7, int64(source.Length))
		if _, err := stmt.Step(); err != nil {
			return fmt.Errorf("insert node %v: %w", node.ID, err)
		}
		_ = stmt.Reset()
	}
	return nil
}

func insertEdges(conn *sqlite.Conn, edges []Edge) error {
	stmt, err := conn.Prepare(`INSERT INTO edges (source, target, tags) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare edges: %w", err)
	}
	defer func() { _ = stmt.Finalize() }()
	for _, edge := range edges {
		stmt.BindText(1, string(edge.From))
		stmt.BindText(2, string(edge.To))
		stmt.BindText(3, joinEdgeTags(edge.Tags))
		if _, err := stmt.Step(); err != nil {
			return fmt.Errorf("insert edge %v->%v: %w", edge.From, edge.To, err)
		}
		_ = stmt.Reset()
	}
	return nil
}

// Load reads the graph from the database
func (s *SQLite) Load(_ context.Context) (*graph.Graph, error) {
	conn, err := sqlite.OpenConn(s.Path, sqlite.OpenReadOnly)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer func() { _ = conn.Close() }()
	snapshot := &Snapshot{}
	err = sqlitex.ExecuteTransient(conn,
		`SELECT id, tags, name, parameter_index, source_path, source_offset, source_length FROM nodes ORDER BY id`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				tags, err := splitTags(stmt.ColumnText(1))
				if err != nil {
					return err
				}
				node := Node{ID: graph.ID(stmt.ColumnText(0)), Tags: tags, Name: stmt.ColumnText(2)}
				if index := int(stmt.ColumnInt64(3)); index >= 0 {
					node.ParameterIndex = &index
				}
				if path := stmt.ColumnText(4); path != "" {
					node.Source = &graph.Source{Path: path, Offset: int(stmt.ColumnInt64(5)), Length: int(stmt.ColumnInt64(6))}
				}
				snapshot.Nodes = append(snapshot.Nodes, node)
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("read nodes: %w", err)
	}
	err = sqlitex.ExecuteTransient(conn,
		`SELECT source, target, tags FROM edges ORDER BY rowid`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				tags, err := splitEdgeTags(stmt.ColumnText(2))
				if err != nil {
					return err
				}
				snapshot.Edges = append(snapshot.Edges, Edge{From: graph.ID(stmt.ColumnText(0)), To: graph.ID(stmt.ColumnText(1)), Tags: tags})
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("read edges: %w", err)
	}
	return snapshot.Graph()
}

func joinTags(tags []graph.Tag) string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	return strings.Join(names, ",")
}

func joinEdgeTags(tags []graph.EdgeTag) string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	return strings.Join(names, ",")
}

func splitTags(text string) ([]graph.Tag, error) {
	var result []graph.Tag
	for _, name := range strings.Split(text, ",") {
		if name == "" {
			continue
		}
		tag, err := graph.ParseTag(name)
		if err != nil {
			return nil, err
		}
		result = append(result, tag)
	}
	return result, nil
}

func splitEdgeTags(text string) ([]graph.EdgeTag, error) {
	var result []graph.EdgeTag
	for _, name := range strings.Split(text, ",") {
		if name == "" {
			continue
		}
		tag, err := graph.ParseEdgeTag(name)
		if err != nil {
			return nil, err
		}
		result = append(result, tag)
	}
	return result, nil
}
