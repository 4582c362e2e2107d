package license

import (
	"encoding/csv"
	"io"

	"github.com/matzehuels/cargolicense/pkg/deps"
)

var fullHeader = []string{"library", "license", "license-text"}

// WriteFull writes a CSV table of (library, license, license-text) rows.
// Each license text of a dependency gets its own row; a dependency without
// texts gets one row with "N/A".
func WriteFull(w io.Writer, all []deps.Dependency) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fullHeader); err != nil {
		return outputError(err)
	}
	for _, d := range all {
		for _, text := range licenseTexts(d) {
			if err := cw.Write([]string{d.Name, d.LicenseOrNA(), text}); err != nil {
				return outputError(err)
			}
		}
	}
	cw.Flush()
	return outputError(cw.Error())
}

func licenseTexts(d deps.Dependency) []string {
	if len(d.LicenseTexts) == 0 {
		return []string{deps.NotAvailable}
	}
	return d.LicenseTexts
}
