package license

import (
	"io"
	"strings"

	"github.com/matzehuels/cargolicense/pkg/deps"
)

// WriteOnePerLine writes `name: version, "license", source` for every
// dependency in input order, followed by `, by "author, ..."` when
// displayAuthors is set.
func WriteOnePerLine(w io.Writer, all []deps.Dependency, displayAuthors bool, s Styles) error {
	p := &printer{w: w}
	for _, d := range all {
		p.printf("%s: %s, \"%s\", %s", s.paint(s.Name, d.Name), d.Version, d.LicenseOrNA(), d.Source)
		if displayAuthors {
			p.printf(", %s \"%s\"", s.paint(s.Label, "by"), strings.Join(d.Authors, ", "))
		}
		p.printf("\n")
	}
	return p.result()
}
