package config

import (
	"slices"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// unknownKeys returns the top-level mapping keys of doc that RawConfig
// does not define, in file order.
func unknownKeys(doc *yaml.Node) []string {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil
	}
	var out []string
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if !slices.Contains(knownKeys, key) {
			out = append(out, key)
		}
	}
	return out
}

// suggestKey returns the closest known key when it is near enough to be a
// plausible typo.
func suggestKey(key string) (string, bool) {
	best, bestDist := "", -1
	for _, k := range knownKeys {
		d := levenshtein.ComputeDistance(key, k)
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(key)/3) {
		return "", false
	}
	return best, true
}
