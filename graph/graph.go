package graph

import (
	"fmt"
	"sort"
)

// Graph represents a tagged, attributed directed multigraph of program locations.
// A graph is not safe for concurrent use, use Clone to give every analysis run its own copy.
type Graph struct {
	locations map[ID]*Location
	relations map[int]*Relation
	nextID    int
	nextEdge  int
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		locations: map[ID]*Location{},
		relations: map[int]*Relation{},
	}
}

// Location returns a location by id
func (g *Graph) Location(id ID) (*Location, bool) {
	location, ok := g.locations[id]
	return location, ok
}

// MustLocation returns a location or an error naming the missing id
func (g *Graph) MustLocation(id ID) (*Location, error) {
	location, ok := g.locations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrLocationNotFound, id)
	}
	return location, nil
}

// Len returns number of locations
func (g *Graph) Len() int {
	return len(g.locations)
}

// Universe returns ids of all locations
func (g *Graph) Universe() Set {
	result := make(Set, len(g.locations))
	for id := range g.locations {
		result[id] = struct{}{}
	}
	return result
}

// Locations returns locations of a set in id order, unknown ids are skipped
func (g *Graph) Locations(set Set) []*Location {
	var result []*Location
	for _, id := range set.IDs() {
		if location, ok := g.locations[id]; ok {
			result = append(result, location)
		}
	}
	return result
}

// Relations returns all relations in creation order
func (g *Graph) Relations() []*Relation {
	result := make([]*Relation, 0, len(g.relations))
	for _, relation := range g.relations {
		result = append(result, relation)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// AddLocation adds a location with a caller supplied id
func (g *Graph) AddLocation(id ID, tags ...Tag) (*Location, error) {
	if _, ok := g.locations[id]; ok {
		return nil, fmt.Errorf("duplicate location: %v", id)
	}
	location := &Location{ID: id, Tags: TagsOf(tags...)}
	g.locations[id] = location
	return location, nil
}

// CreateLocation adds a location with a generated id
func (g *Graph) CreateLocation(tags ...Tag) *Location {
	var id ID
	for {
		g.nextID++
		id = ID(fmt.Sprintf("#%d", g.nextID))
		if _, ok := g.locations[id]; !ok {
			break
		}
	}
	location, _ := g.AddLocation(id, tags...)
	return location
}

// CreateRelation adds a relation between two existing locations
func (g *Graph) CreateRelation(from, to ID, tags ...EdgeTag) (*Relation, error) {
	source, err := g.MustLocation(from)
	if err != nil {
		return nil, err
	}
	target, err := g.MustLocation(to)
	if err != nil {
		return nil, err
	}
	g.nextEdge++
	relation := &Relation{ID: g.nextEdge, From: from, To: to, Tags: EdgeTagsOf(tags...)}
	g.relations[relation.ID] = relation
	source.out = append(source.out, relation)
	target.in = append(target.in, relation)
	return relation, nil
}

// RemoveRelation removes a relation
func (g *Graph) RemoveRelation(relation *Relation) {
	if _, ok := g.relations[relation.ID]; !ok {
		return
	}
	delete(g.relations, relation.ID)
	if source, ok := g.locations[relation.From]; ok {
		source.out = withoutRelation(source.out, relation)
	}
	if target, ok := g.locations[relation.To]; ok {
		target.in = withoutRelation(target.in, relation)
	}
}

// RemoveLocation removes a location with all incident relations
func (g *Graph) RemoveLocation(id ID) error {
	location, err := g.MustLocation(id)
	if err != nil {
		return err
	}
	for _, relation := range append(location.Out(), location.In()...) {
		g.RemoveRelation(relation)
	}
	delete(g.locations, id)
	return nil
}

// Clone returns an independent snapshot of the graph
func (g *Graph) Clone() *Graph {
	result := &Graph{
		locations: make(map[ID]*Location, len(g.locations)),
		relations: make(map[int]*Relation, len(g.relations)),
		nextID:    g.nextID,
		nextEdge:  g.nextEdge,
	}
	for id, location := range g.locations {
		clone := &Location{ID: id, Tags: location.Tags}
		if len(location.attributes) > 0 {
			clone.attributes = make(map[Attribute]interface{}, len(location.attributes))
			for key, value := range location.attributes {
				clone.attributes[key] = value
			}
		}
		result.locations[id] = clone
	}
	for _, relation := range g.Relations() {
		clone := *relation
		result.relations[clone.ID] = &clone
		result.locations[clone.From].out = append(result.locations[clone.From].out, &clone)
		result.locations[clone.To].in = append(result.locations[clone.To].in, &clone)
	}
	return result
}

func withoutRelation(relations []*Relation, relation *Relation) []*Relation {
	for i, candidate := range relations {
		if candidate == relation {
			return append(relations[:i:i], relations[i+1:]...)
		}
	}
	return relations
}
