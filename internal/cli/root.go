package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargolicense/pkg/buildinfo"
	"github.com/matzehuels/cargolicense/pkg/deps"
	"github.com/matzehuels/cargolicense/pkg/deps/metadata"
	"github.com/matzehuels/cargolicense/pkg/errors"
	"github.com/matzehuels/cargolicense/pkg/httputil"
	"github.com/matzehuels/cargolicense/pkg/integrations/crates"
	"github.com/matzehuels/cargolicense/pkg/license"
)

// options holds the command-line flags.
type options struct {
	authors      bool   // display crate authors
	doNotBundle  bool   // one license per line
	full         bool   // CSV with license texts
	manifestPath string // Cargo.toml or directory to search from
	online       bool   // fill gaps from crates.io
	refresh      bool   // bypass HTTP cache
	verbose      bool   // debug logging
}

// RootCommand creates the cargo-license command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   appName + " [options]",
		Short: "List the licenses of a Cargo project's dependencies",
		Long: `cargo-license reads Cargo.lock and reports the license of every locked package.

By default packages are bundled by license. Use --do-not-bundle for one line
per package, or --full for a CSV listing with the full license texts.

Examples:
  cargo-license                 # Bundle dependencies by license
  cargo-license -d -a           # One line per crate, with authors
  cargo-license -f > licenses.csv
  cargo license --manifest-path ../other/Cargo.toml`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(cmd, fmt.Errorf("unexpected argument %q", args[0]))
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
				installDebugHooks(c.Logger)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.report(cmd.Context(), &opts)
		},
	}

	root.SetOut(c.Out)
	root.SetErr(c.Err)
	root.SetVersionTemplate(buildinfo.Template())
	root.SetFlagErrorFunc(usageError)

	flags := root.Flags()
	flags.BoolVarP(&opts.authors, "authors", "a", false, "display crate authors")
	flags.BoolVarP(&opts.doNotBundle, "do-not-bundle", "d", false, "output one license per line")
	flags.BoolVarP(&opts.full, "full", "f", false, "display full licenses (CSV)")
	flags.StringVar(&opts.manifestPath, "manifest-path", "", "path to Cargo.toml or the project directory (default: current directory)")
	flags.BoolVar(&opts.online, "online", false, "fill in missing licenses and authors from crates.io")
	flags.BoolVar(&opts.refresh, "refresh", false, "bypass the crates.io response cache")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// usageError prints the usage text to the command's output and marks err as
// a usage error.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
	return errors.Wrap(errors.ErrCodeUsage, err, "invalid arguments")
}

// report resolves the dependencies once and writes the selected report.
func (c *CLI) report(ctx context.Context, opts *options) error {
	logger := loggerFromContext(ctx)
	if opts.refresh && !opts.online {
		printWarning(c.Err, "--refresh has no effect without --online")
	}

	src := c.NewSource()
	logger.Debugf("Resolving dependencies from %s", src.Name())

	prog := newProgress(logger)
	all, err := src.Dependencies(ctx, c.resolveOptions(ctx, opts))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d packages", len(all)))

	cfg := license.Config{
		Mode:           license.SelectMode(opts.full, opts.doNotBundle),
		DisplayAuthors: opts.authors,
		Styles:         reportStyles(c.Out),
	}
	logger.Debugf("Writing %s report", cfg.Mode)
	return license.Write(c.Out, all, cfg)
}

// resolveOptions converts flags into deps.Options. If the HTTP cache cannot
// be created, --online continues uncached.
func (c *CLI) resolveOptions(ctx context.Context, opts *options) deps.Options {
	logger := loggerFromContext(ctx)
	ro := deps.Options{
		ManifestPath: opts.manifestPath,
		Refresh:      opts.refresh,
		CacheTTL:     deps.DefaultCacheTTL,
		Logger:       func(msg string, args ...any) { logger.Debugf(msg, args...) },
	}
	if opts.online {
		cache, err := httputil.NewCache(c.CacheDir, ro.CacheTTL)
		if err != nil {
			logger.Warnf("Response cache disabled: %v", err)
		}
		ro.MetadataProviders = []deps.MetadataProvider{metadata.NewCrates(crates.NewClient(cache))}
	}
	return ro
}
