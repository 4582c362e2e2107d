package license

import (
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/cargolicense/pkg/deps"
)

// Group is the set of dependencies sharing one resolved license string.
type Group struct {
	License      string
	Dependencies []deps.Dependency // Input order
}

// Names returns the dependency names in group order.
func (g Group) Names() []string {
	names := make([]string, len(g.Dependencies))
	for i, d := range g.Dependencies {
		names[i] = d.Name
	}
	return names
}

// Authors returns the sorted, deduplicated union of all authors in the group.
func (g Group) Authors() []string {
	var authors []string
	for _, d := range g.Dependencies {
		authors = append(authors, d.Authors...)
	}
	slices.Sort(authors)
	return slices.Compact(authors)
}

// GroupByLicense buckets dependencies by [deps.Dependency.LicenseOrNA].
// Groups are ordered by license string (plain byte comparison); within a
// group, dependencies keep their input order.
func GroupByLicense(all []deps.Dependency) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, d := range all {
		lic := d.LicenseOrNA()
		i, ok := index[lic]
		if !ok {
			i = len(groups)
			index[lic] = i
			groups = append(groups, Group{License: lic})
		}
		groups[i].Dependencies = append(groups[i].Dependencies, d)
	}
	slices.SortFunc(groups, func(a, b Group) int { return strings.Compare(a.License, b.License) })
	return groups
}

// WriteGrouped writes one block per license group:
//
//	MIT (2): alpha, beta
//
// or, when displayAuthors is set,
//
//	MIT (2)
//	alpha, beta
//	by Ann, Bob
func WriteGrouped(w io.Writer, all []deps.Dependency, displayAuthors bool, s Styles) error {
	p := &printer{w: w}
	for _, g := range GroupByLicense(all) {
		names := strings.Join(g.Names(), ", ")
		heading := s.paint(s.License, g.License)
		if displayAuthors {
			p.printf("%s (%d)\n%s\n%s %s\n", heading, len(g.Dependencies), names,
				s.paint(s.Label, "by"), strings.Join(g.Authors(), ", "))
		} else {
			p.printf("%s (%d): %s\n", heading, len(g.Dependencies), names)
		}
	}
	return p.result()
}
