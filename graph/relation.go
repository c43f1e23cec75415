package graph

// Relation represents a directed tagged edge between two locations
type Relation struct {
	ID   int
	From ID
	To   ID
	Tags EdgeTags
}

// Tagged returns true when the relation carries all tags
func (r *Relation) Tagged(tags ...EdgeTag) bool {
	for _, tag := range tags {
		if !r.Tags.Has(tag) {
			return false
		}
	}
	return true
}
