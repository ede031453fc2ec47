package rdfio

import (
	"regexp"
	"sort"

	"github.com/owlkit/owlkit/voc"
)

var (
	turtlePrefix = regexp.MustCompile(`@prefix\s+([a-zA-Z0-9_-]*)\s*:\s*<([^>]+)>\s*\.`)
	sparqlPrefix = regexp.MustCompile(`(?mi)^\s*PREFIX\s+([a-zA-Z0-9_-]*)\s*:\s*<([^>]+)>`)
)

// ExtractPrefixes scans Turtle or N3 text for prefix declarations.
// The empty prefix is reported as voc.DefaultPrefix and sorts first, the rest
// are sorted by name. Later declarations of the same prefix win.
func ExtractPrefixes(data []byte) []voc.Binding {
	found := make(map[string]string)
	for _, re := range []*regexp.Regexp{turtlePrefix, sparqlPrefix} {
		for _, m := range re.FindAllSubmatch(data, -1) {
			prefix := string(m[1])
			if prefix == "" {
				prefix = voc.DefaultPrefix
			}
			found[prefix] = string(m[2])
		}
	}
	out := make([]voc.Binding, 0, len(found))
	for p, ns := range found {
		out = append(out, voc.Binding{Prefix: p, Namespace: ns})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Prefix, out[j].Prefix
		if (a == voc.DefaultPrefix) != (b == voc.DefaultPrefix) {
			return a == voc.DefaultPrefix
		}
		return a < b
	})
	return out
}
