package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/reel"
)

func (c *CLI) validateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate <design files...>",
		Short: "Check design files and list every violation",
		Long: `Validate reads each design file, checks the range of every dimension and
that the core is smaller than the flange, and prints all violations found.
The command exits non-zero when any file is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func (c *CLI) runValidate(ctx context.Context, files []string, asJSON bool) error {
	logger := loggerFromContext(ctx)

	reports := make([]fileReport, len(files))
	var bad int
	for i, path := range files {
		reports[i].Path = path
		d, err := c.loadDesign(path, nil)
		if err != nil {
			reports[i].Err = err
			bad++
			continue
		}
		reports[i].Result = reel.Validate(d)
		if !reports[i].Result.OK() {
			bad++
		}
		logger.Debug("validated", "file", path, "violations", len(reports[i].Result.Violations))
	}

	if asJSON {
		if err := writeReportsJSON(c.out, reports); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(c.out, violationsTable(reports))
	}

	if bad > 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "%d of %d design files are invalid", bad, len(files))
	}
	return nil
}

type reportJSON struct {
	File       string           `json:"file"`
	Valid      bool             `json:"valid"`
	Error      string           `json:"error,omitempty"`
	Violations []reel.Violation `json:"violations"`
}

func writeReportsJSON(w io.Writer, reports []fileReport) error {
	out := make([]reportJSON, len(reports))
	for i, r := range reports {
		out[i] = reportJSON{
			File:       r.Path,
			Valid:      r.Err == nil && r.Result.OK(),
			Violations: r.Result.Violations,
		}
		if out[i].Violations == nil {
			out[i].Violations = []reel.Violation{}
		}
		if r.Err != nil {
			out[i].Error = errors.UserMessage(r.Err)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
