package domain

// Category is a named, ordered list of keyword phrases.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy drives relevance scoring. Category order is declaration order.
type Taxonomy []Category

// Names lists the category names in declaration order.
func (t Taxonomy) Names() []string {
	names := make([]string, 0, len(t))
	for _, c := range t {
		names = append(names, c.Name)
	}
	return names
}
