// Package license renders dependency records as license reports.
//
// # Modes
//
// Exactly one [Mode] is active per report:
//
//   - [ModeFull]: CSV with header library,license,license-text and one row
//     per bundled license text
//   - [ModeOnePerLine]: one line per dependency in input order
//   - [ModeGrouped]: dependencies grouped by license, groups in ascending
//     byte order of the license string
//
// [SelectMode] applies the command-line precedence full > one-per-line >
// grouped.
//
// # Missing Data
//
// An unknown license renders as "N/A" in every mode. A dependency without
// license texts yields a single full-mode row whose text is "N/A".
//
// # Example
//
//	cfg := license.Config{Mode: license.ModeGrouped, DisplayAuthors: true}
//	if err := license.Write(os.Stdout, all, cfg); err != nil {
//	    return err // write failures are fatal
//	}
package license
