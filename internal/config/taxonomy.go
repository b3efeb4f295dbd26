package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"FeedHarvester/internal/domain"
)

// Taxonomy decodes a YAML mapping of category -> keywords while keeping the
// declaration order of the categories.
type Taxonomy domain.Taxonomy

// UnmarshalYAML walks the mapping node pairwise.
func (t *Taxonomy) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("keywords: line %d: expected a mapping of category to keyword list", node.Line)
	}

	out := make(Taxonomy, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var keywords []string
		if err := valNode.Decode(&keywords); err != nil {
			return fmt.Errorf("keywords: category %q: %w", keyNode.Value, err)
		}
		out = append(out, domain.Category{Name: keyNode.Value, Keywords: keywords})
	}

	*t = out
	return nil
}
