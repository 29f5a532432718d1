// Package cmd — normalize command.
// This is the main command that orchestrates the pipeline for a single post
// or, with --all, for every post discovered below a blog index.
//
// It handles flag validation, config overrides, and renderer selection.
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/postpipe/core/fetch"
	"github.com/gaurav-prasanna/postpipe/core/output"
	"github.com/gaurav-prasanna/postpipe/crawl"
	"github.com/gaurav-prasanna/postpipe/internal/config"
	"github.com/gaurav-prasanna/postpipe/internal/logger"
	"github.com/spf13/cobra"
)

type normalizeOptions struct {
	*globalOptions

	all      bool
	html     bool
	markdown bool
	json     bool
	pdf      bool
	strict   bool
	sanitize bool
	stdout   bool

	outputDir  string
	postPrefix string
}

func newNormalizeCmd(global *globalOptions) *cobra.Command {
	opts := &normalizeOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "normalize <source>",
		Short: "Normalize a blog post body and write it in the chosen format",
		Long: `Normalize loads a post from a URL, a file, or stdin ("-"), extracts the post
body, wraps loose text and inline markup in paragraphs, and renders the result.

Examples:
  postpipe normalize post.html --stdout
  postpipe normalize - --json --stdout < body.html
  postpipe normalize https://shop.example.com/blog/vinyl-care --markdown
  postpipe normalize https://shop.example.com/blog --all --output_dir ./posts
  postpipe normalize post.html --strict --sanitize --pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, opts, args[0])
		},
	}

	// Mode flags.
	cmd.Flags().BoolVar(&opts.all, "all", false, "Treat the source as a blog index and normalize every post")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the result instead of writing a file")

	// Output format flags (mutually exclusive; default from config).
	cmd.Flags().BoolVar(&opts.html, "html", false, "Output normalized HTML")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Output Markdown")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output structured JSON")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "Output PDF")

	// Normalization flags.
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Wrap loose text even when block elements are present")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "Sanitize the normalized HTML for display")

	cmd.Flags().StringVar(&opts.outputDir, "output_dir", "", "Output directory (default: current directory)")
	cmd.Flags().StringVar(&opts.postPrefix, "post_prefix", "", "URL path prefix of blog posts for --all (default /blog/)")

	return cmd
}

func runNormalize(cmd *cobra.Command, opts *normalizeOptions, source string) error {
	format, err := validateFlags(opts)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(cmd, opts, cfg, format)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewFromString(cmd.ErrOrStderr(), cfg.LogLevel)
	log.ConfigLoaded(opts.configPath, cfg.Format, cfg.StrictBlocks)

	renderer, err := selectRenderer(cfg.Format, cfg.ExcerptWords)
	if err != nil {
		return err
	}
	p := newPipeline(cfg, renderer)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.all {
		if !fetch.IsURL(source) {
			return fmt.Errorf("--all needs a blog index URL, got %s", source)
		}
		writer, err := output.New(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
		return runAll(ctx, cmd, source, cfg, p, writer, log)
	}

	return runOne(ctx, cmd, source, cfg, p, opts.stdout, log)
}

// runOne processes a single source.
func runOne(
	ctx context.Context,
	cmd *cobra.Command,
	source string,
	cfg *config.Config,
	p *pipeline,
	stdout bool,
	log *logger.Logger,
) error {
	start := time.Now()
	res, err := p.process(ctx, source)
	if err != nil {
		log.PostFailed(source, err)
		return err
	}

	if stdout {
		if _, err := cmd.OutOrStdout().Write(res.Data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		log.PostNormalized(source, "stdout", res.Changed, time.Since(start))
		return nil
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.WriteOne(res.Meta.Slug, res.Data, p.renderer.Extension())
	if err != nil {
		return err
	}
	log.PostNormalized(source, path, res.Changed, time.Since(start))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// runAll discovers every post below the index and processes each one.
// A failing post does not stop the run; the failures are reported at the end.
func runAll(
	ctx context.Context,
	cmd *cobra.Command,
	index string,
	cfg *config.Config,
	p *pipeline,
	writer *output.Writer,
	log *logger.Logger,
) error {
	urls, err := crawl.DiscoverPosts(ctx, index, cfg.PostPrefix, p.fetcher)
	if err != nil {
		return fmt.Errorf("discovering posts: %w", err)
	}
	log.Discovered(index, len(urls))

	var errCount int
	for i, postURL := range urls {
		start := time.Now()
		log.Debug("processing post", "n", i+1, "of", len(urls), "url", postURL)

		res, err := p.process(ctx, postURL)
		if err != nil {
			log.PostFailed(postURL, err)
			errCount++
			continue
		}

		path, err := writer.WriteAll(postURL, res.Data, p.renderer.Extension())
		if err != nil {
			log.PostFailed(postURL, err)
			errCount++
			continue
		}
		log.PostNormalized(postURL, path, res.Changed, time.Since(start))
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d posts failed", errCount, len(urls))
	}
	return nil
}

// validateFlags checks that at most one output format is chosen and that
// the mode flags are compatible. It returns the chosen format, or "" to use
// the configured one.
func validateFlags(opts *normalizeOptions) (string, error) {
	var formats []string
	if opts.html {
		formats = append(formats, "html")
	}
	if opts.markdown {
		formats = append(formats, "markdown")
	}
	if opts.json {
		formats = append(formats, "json")
	}
	if opts.pdf {
		formats = append(formats, "pdf")
	}

	if len(formats) > 1 {
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(formats))
	}
	if opts.all && opts.stdout {
		return "", fmt.Errorf("--all and --stdout are mutually exclusive")
	}

	if len(formats) == 0 {
		return "", nil
	}
	return formats[0], nil
}

// applyOverrides copies explicitly set flags over the loaded config.
func applyOverrides(cmd *cobra.Command, opts *normalizeOptions, cfg *config.Config, format string) {
	if format != "" {
		cfg.Format = format
	}
	if cmd.Flags().Changed("strict") {
		cfg.StrictBlocks = opts.strict
	}
	if cmd.Flags().Changed("sanitize") {
		cfg.Sanitize = opts.sanitize
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.postPrefix != "" {
		cfg.PostPrefix = opts.postPrefix
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
}
