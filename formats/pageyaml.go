package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arc-workspace/pagekit/types"
)

// PageDoc is the YAML export envelope for one page's snapshot.
type PageDoc[T any] struct {
	Scope    string `yaml:"scope"`
	Page     string `yaml:"page"`
	Template string `yaml:"template"`
	Records  T      `yaml:"records"`
}

// EncodePage serializes a page snapshot as YAML.
func EncodePage[T any](key types.PageKey, template string, records T) ([]byte, error) {
	doc := PageDoc[T]{
		Scope:    key.Scope,
		Page:     key.Page,
		Template: template,
		Records:  records,
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode page: %w", err)
	}
	return out, nil
}

// DecodePage parses a YAML page export.
func DecodePage[T any](raw []byte) (PageDoc[T], error) {
	var doc PageDoc[T]
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return PageDoc[T]{}, fmt.Errorf("failed to decode page: %w", err)
	}
	return doc, nil
}
