package license

import (
	"fmt"
	"io"

	"github.com/matzehuels/cargolicense/pkg/deps"
	"github.com/matzehuels/cargolicense/pkg/errors"
)

// Mode selects the report layout.
type Mode int

const (
	ModeGrouped    Mode = iota // Dependencies bundled by license (default)
	ModeOnePerLine             // One line per dependency
	ModeFull                   // CSV with full license texts
)

func (m Mode) String() string {
	switch m {
	case ModeGrouped:
		return "grouped"
	case ModeOnePerLine:
		return "one-per-line"
	case ModeFull:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SelectMode maps the --full and --do-not-bundle flags to a mode.
// Full wins over one-per-line, which wins over the grouped default.
func SelectMode(full, doNotBundle bool) Mode {
	switch {
	case full:
		return ModeFull
	case doNotBundle:
		return ModeOnePerLine
	default:
		return ModeGrouped
	}
}

// Config is the immutable formatter configuration.
type Config struct {
	Mode           Mode
	DisplayAuthors bool   // Ignored by ModeFull
	Styles         Styles // Zero value renders plain text
}

// Write renders all to w in the configured mode. Any write failure aborts the
// report and is returned with code [errors.ErrCodeOutput].
func Write(w io.Writer, all []deps.Dependency, cfg Config) error {
	switch cfg.Mode {
	case ModeFull:
		return WriteFull(w, all)
	case ModeOnePerLine:
		return WriteOnePerLine(w, all, cfg.DisplayAuthors, cfg.Styles)
	case ModeGrouped:
		return WriteGrouped(w, all, cfg.DisplayAuthors, cfg.Styles)
	default:
		return errors.New(errors.ErrCodeInternal, "unknown report mode %s", cfg.Mode)
	}
}

// printer keeps the first write error and turns later writes into no-ops.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) result() error {
	return outputError(p.err)
}

func outputError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(errors.ErrCodeOutput, err, "write report")
}
