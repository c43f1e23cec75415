package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns highwayhash 64 bit digest
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint returns a digest of graph structure, tags and names.
// Two graphs with equal fingerprints describe the same program model.
func (g *Graph) Fingerprint() (uint64, error) {
	builder := &strings.Builder{}
	for _, location := range g.Locations(g.Universe()) {
		fmt.Fprintf(builder, "L|%v|%x|%v", location.ID, uint64(location.Tags), location.Name())
		if index, err := location.ParameterIndex(); err == nil {
			fmt.Fprintf(builder, "|%d", index)
		}
		builder.WriteByte('\n')
	}
	var edges []string
	for _, relation := range g.Relations() {
		edges = append(edges, fmt.Sprintf("E|%v|%v|%x", relation.From, relation.To, uint32(relation.Tags)))
	}
	sort.Strings(edges)
	for _, edge := range edges {
		builder.WriteString(edge)
		builder.WriteByte('\n')
	}
	return Hash([]byte(builder.String()))
}
