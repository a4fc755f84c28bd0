package utils

import "strings"

// NormalizeTags applies the tag input rules: trim, lowercase, strip commas,
// drop empties and duplicates. Order of first appearance is kept.
// The result is never nil so it encodes as [] rather than null.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		t := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), ",", "")
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
