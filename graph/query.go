package graph

// Successors returns locations one step forward along relations with any of tags
func (g *Graph) Successors(from Set, tags ...EdgeTag) Set {
	result := Set{}
	for id := range from {
		location, ok := g.locations[id]
		if !ok {
			continue
		}
		for _, relation := range location.out {
			if len(tags) == 0 || relation.Tags.HasAny(tags...) {
				result[relation.To] = struct{}{}
			}
		}
	}
	return result
}

// Predecessors returns locations one step backward along relations with any of tags
func (g *Graph) Predecessors(from Set, tags ...EdgeTag) Set {
	result := Set{}
	for id := range from {
		location, ok := g.locations[id]
		if !ok {
			continue
		}
		for _, relation := range location.in {
			if len(tags) == 0 || relation.Tags.HasAny(tags...) {
				result[relation.From] = struct{}{}
			}
		}
	}
	return result
}

// Forward returns the transitive forward closure including the start locations
func (g *Graph) Forward(from Set, tags ...EdgeTag) Set {
	return g.closure(from, tags, g.Successors)
}

// Reverse returns the transitive backward closure including the start locations
func (g *Graph) Reverse(from Set, tags ...EdgeTag) Set {
	return g.closure(from, tags, g.Predecessors)
}

// Descendants returns locations reachable in at least one forward step
func (g *Graph) Descendants(from Set, tags ...EdgeTag) Set {
	return g.Forward(g.Successors(from, tags...), tags...)
}

// Ancestors returns locations reaching the start in at least one step
func (g *Graph) Ancestors(from Set, tags ...EdgeTag) Set {
	return g.Reverse(g.Predecessors(from, tags...), tags...)
}

// ForwardDifference returns locations forward reachable along tags, excluding the start locations
func (g *Graph) ForwardDifference(from Set, tags ...EdgeTag) Set {
	return g.Forward(from, tags...).Difference(from)
}

// Contained returns the containment closure including the start locations
func (g *Graph) Contained(from Set) Set {
	return g.Forward(from, Contains)
}

// Parent returns direct containers
func (g *Graph) Parent(from Set) Set {
	return g.Predecessors(from, Contains)
}

// Tagged keeps locations carrying any of tags
func (g *Graph) Tagged(from Set, tags ...Tag) Set {
	result := Set{}
	for id := range from {
		if location, ok := g.locations[id]; ok && location.Tags.HasAny(tags...) {
			result[id] = struct{}{}
		}
	}
	return result
}

// Untagged keeps locations carrying none of tags
func (g *Graph) Untagged(from Set, tags ...Tag) Set {
	result := Set{}
	for id := range from {
		if location, ok := g.locations[id]; ok && !location.Tags.HasAny(tags...) {
			result[id] = struct{}{}
		}
	}
	return result
}

// Named keeps locations with matching name attribute
func (g *Graph) Named(from Set, name string) Set {
	result := Set{}
	for id := range from {
		if location, ok := g.locations[id]; ok && location.Name() == name {
			result[id] = struct{}{}
		}
	}
	return result
}

// Select keeps locations with matching attribute value
func (g *Graph) Select(from Set, key Attribute, value interface{}) Set {
	result := Set{}
	for id := range from {
		location, ok := g.locations[id]
		if !ok {
			continue
		}
		if actual, ok := location.attributes[key]; ok && actual == value {
			result[id] = struct{}{}
		}
	}
	return result
}

func (g *Graph) closure(from Set, tags []EdgeTag, step func(Set, ...EdgeTag) Set) Set {
	result := from.Clone()
	frontier := from
	for len(frontier) > 0 {
		next := Set{}
		for id := range step(frontier, tags...) {
			if !result.Has(id) {
				result[id] = struct{}{}
				next[id] = struct{}{}
			}
		}
		frontier = next
	}
	return result
}
