package database

// ListFilter narrows collection queries. The zero value returns the full
// ordered collection.
type ListFilter struct {
	// FeaturedOnly keeps rows flagged for the homepage preview.
	FeaturedOnly bool
	// Limit truncates the result when positive.
	Limit int
}

// PostFilter narrows blog post queries.
type PostFilter struct {
	// PublishedOnly hides drafts; the public surface always sets it.
	PublishedOnly bool
	Limit         int
}
