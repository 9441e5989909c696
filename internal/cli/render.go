package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/io"
	"github.com/matzehuels/reeldesigner/pkg/pipeline"
	"github.com/matzehuels/reeldesigner/pkg/reel"
)

// defaultBase names the output files when no design file is given.
const defaultBase = "reel"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string             // output directory; empty writes next to each design file
	view        string             // side, front or both
	noDrumRing  bool               // omit the drum band from the side view
	noCache     bool               // bypass the render cache
	refresh     bool               // skip cache lookups, still store results
	watch       bool               // re-render when a design file changes
	clipboard   bool               // copy the rendered markup to the clipboard
	concurrency int                // designs rendered in parallel
	dims        map[string]float64 // dimension flag values, applied when set
}

// renderJob is one design to render. An empty source means the configured
// default record.
type renderJob struct {
	source string
	base   string
}

// renderOutcome is the result of one job.
type renderOutcome struct {
	job    renderJob
	result *pipeline.Result
	files  []string
	err    error
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		concurrency: runtime.NumCPU(),
		dims:        map[string]float64{},
	}
	dimFlags := map[string]*float64{}

	cmd := &cobra.Command{
		Use:   "render [design files...]",
		Short: "Render side and front SVG diagrams",
		Long: `Render writes <name>_side.svg and <name>_front.svg for every design file.

Design files are TOML, YAML or JSON tables of the six dimension fields;
missing fields keep their default value. Without a file the default record
is rendered to reel_side.svg and reel_front.svg. Dimension flags override
the values of every file.`,
		Example: `  reeldesigner render reel.toml
  reeldesigner render designs/*.yaml -o out/ --view front
  reeldesigner render --flange-diameter 1600 --clipboard --view side`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for name, v := range dimFlags {
				if cmd.Flags().Changed(dimFlagName(name)) {
					opts.dims[name] = *v
				}
			}
			if !cmd.Flags().Changed("view") {
				opts.view = c.Config.Render.View
			}
			if err := errors.ValidateView(opts.view); err != nil {
				return err
			}
			if opts.clipboard && (opts.view == pipeline.ViewBoth || len(args) > 1) {
				return errors.New(errors.ErrCodeInvalidInput, "--clipboard needs a single view and at most one design file")
			}
			if opts.watch && len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--watch needs at least one design file")
			}
			return c.runRender(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: next to each design file)")
	cmd.Flags().StringVar(&opts.view, "view", pipeline.ViewBoth, "views to render: side, front, both")
	cmd.Flags().BoolVar(&opts.noDrumRing, "no-drum-ring", false, "omit the drum band from the side view")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached diagrams")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when a design file changes")
	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "copy the rendered SVG to the clipboard")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", opts.concurrency, "designs rendered in parallel")

	defaults := reel.Default()
	for _, spec := range reel.Fields() {
		v, _ := defaults.Get(spec.Name)
		p := new(float64)
		dimFlags[spec.Name] = p
		cmd.Flags().Float64Var(p, dimFlagName(spec.Name), v,
			fmt.Sprintf("%s in mm, overrides design files", spec.Label))
	}

	return cmd
}

// dimFlagName converts a wire field name to a flag name
// ("flangeDiameter" becomes "flange-diameter").
func dimFlagName(field string) string {
	var b strings.Builder
	for _, r := range field {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (c *CLI) runRender(ctx context.Context, files []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	jobs := renderJobs(files, opts.output)
	prog := newProgress(logger)
	outcomes, err := c.renderAll(ctx, runner, jobs, opts)
	if err != nil {
		return err
	}
	failed := reportOutcomes(outcomes)
	prog.done(fmt.Sprintf("Rendered %d of %d designs", len(outcomes)-failed, len(outcomes)))

	if opts.clipboard && failed == 0 {
		if err := copyToClipboard(outcomes[0].result); err != nil {
			printWarning("Clipboard access failed: %v", err)
		} else {
			printInfo("Copied %s view to clipboard", opts.view)
		}
	}

	if opts.watch {
		return c.watchDesigns(ctx, runner, jobs, opts)
	}
	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "%d of %d designs failed", failed, len(outcomes))
	}
	return nil
}

// renderJobs maps design files to output bases.
func renderJobs(files []string, outputDir string) []renderJob {
	if len(files) == 0 {
		return []renderJob{{base: filepath.Join(outputDir, defaultBase)}}
	}
	jobs := make([]renderJob, len(files))
	for i, f := range files {
		base := f
		if outputDir != "" {
			base = filepath.Join(outputDir, filepath.Base(f))
		}
		jobs[i] = renderJob{source: f, base: base}
	}
	return jobs
}

// renderAll renders jobs concurrently. Per-design failures are returned in
// the outcomes; only cancellation aborts the batch.
func (c *CLI) renderAll(ctx context.Context, runner *pipeline.Runner, jobs []renderJob, opts *renderOpts) ([]renderOutcome, error) {
	outcomes := make([]renderOutcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if opts.concurrency > 0 {
		g.SetLimit(opts.concurrency)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = c.renderOne(gctx, runner, job, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (c *CLI) renderOne(ctx context.Context, runner *pipeline.Runner, job renderJob, opts *renderOpts) renderOutcome {
	out := renderOutcome{job: job}

	d, err := c.loadDesign(job.source, opts.dims)
	if err != nil {
		out.err = err
		return out
	}

	out.result, out.files, out.err = c.renderDesign(ctx, runner, d, job.base, opts)
	return out
}

// renderDesign renders d and writes the requested views next to base.
func (c *CLI) renderDesign(ctx context.Context, runner *pipeline.Runner, d reel.Dimensions, base string, opts *renderOpts) (*pipeline.Result, []string, error) {
	popts := c.Config.PipelineOptions()
	popts.View = opts.view
	popts.NoDrumRing = popts.NoDrumRing || opts.noDrumRing
	popts.Refresh = opts.refresh

	result, err := runner.Execute(ctx, d, popts)
	if err != nil {
		return result, nil, err
	}

	var files []string
	sidePath, frontPath := io.OutputPaths(base)
	for _, f := range []struct {
		path string
		svg  []byte
	}{{sidePath, result.Side}, {frontPath, result.Front}} {
		if f.svg == nil {
			continue
		}
		if err := io.ExportSVG(f.path, f.svg); err != nil {
			return result, files, err
		}
		files = append(files, f.path)
	}
	return result, files, nil
}

// loadDesign reads source over the configured defaults and applies flag
// overrides.
func (c *CLI) loadDesign(source string, overrides map[string]float64) (reel.Dimensions, error) {
	d := c.Config.Defaults
	if source != "" {
		var err error
		if d, err = io.ImportDesignOver(source, d); err != nil {
			return d, err
		}
	}
	for name, v := range overrides {
		if err := d.Set(name, v); err != nil {
			return d, err
		}
	}
	return d, nil
}

// reportOutcomes prints written files and failures in job order and
// returns the number of failed jobs.
func reportOutcomes(outcomes []renderOutcome) int {
	var failed int
	var invalid []fileReport
	for _, o := range outcomes {
		name := o.job.source
		if name == "" {
			name = "(defaults)"
		}
		switch {
		case errors.Is(o.err, errors.ErrCodeInvalidDimensions) && o.result != nil:
			failed++
			invalid = append(invalid, fileReport{Path: name, Result: o.result.Validation})
		case o.err != nil:
			failed++
			printError("%s: %s", name, errors.UserMessage(o.err))
		default:
			printSuccess("%s", name)
			for _, f := range o.files {
				printFile(f, cachedFile(o.result, f))
			}
		}
	}
	if len(invalid) > 0 {
		printError("%d designs have invalid dimensions", len(invalid))
		fmt.Println(violationsTable(invalid))
	}
	return failed
}

func cachedFile(r *pipeline.Result, path string) bool {
	if strings.HasSuffix(path, "_side.svg") {
		return r.CacheInfo.SideHit
	}
	return r.CacheInfo.FrontHit
}

func copyToClipboard(r *pipeline.Result) error {
	svg := r.Side
	if svg == nil {
		svg = r.Front
	}
	return clipboard.WriteAll(string(svg))
}
