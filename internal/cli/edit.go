package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/io"
	"github.com/matzehuels/reeldesigner/pkg/pipeline"
	"github.com/matzehuels/reeldesigner/pkg/reel"
)

var (
	editSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	editDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// EditModel is the bubbletea model behind the edit command: one numeric
// input per dimension, revalidated on every keystroke.
type EditModel struct {
	Fields []reel.FieldSpec
	Inputs []string
	Cursor int

	// Saved is set when the user confirmed a valid record with enter.
	Saved bool

	dims      reel.Dimensions
	result    reel.Result
	parseErrs map[string]string
}

// NewEditModel creates an edit model seeded with d.
func NewEditModel(d reel.Dimensions) EditModel {
	fields := reel.Fields()
	inputs := make([]string, len(fields))
	for i, f := range fields {
		v, _ := d.Get(f.Name)
		inputs[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	m := EditModel{Fields: fields, Inputs: inputs, dims: d}
	m.revalidate()
	return m
}

// Dimensions returns the record as currently typed.
func (m EditModel) Dimensions() reel.Dimensions { return m.dims }

// Valid reports whether every input parses and the record passes validation.
func (m EditModel) Valid() bool { return len(m.parseErrs) == 0 && m.result.OK() }

func (m EditModel) Init() tea.Cmd {
	return nil
}

func (m EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "shift+tab":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "tab":
		if m.Cursor < len(m.Fields)-1 {
			m.Cursor++
		}
	case "enter":
		if m.Valid() {
			m.Saved = true
			return m, tea.Quit
		}
	case "backspace":
		in := m.Inputs[m.Cursor]
		if in != "" {
			m.setInput(in[:len(in)-1])
		}
	case "ctrl+u":
		m.setInput("")
	default:
		if key.Type == tea.KeyRunes {
			s := string(key.Runes)
			if strings.Trim(s, "0123456789.") == "" {
				m.setInput(m.Inputs[m.Cursor] + s)
			}
		}
	}
	return m, nil
}

// setInput replaces the focused input and revalidates. The inputs slice is
// copied so earlier model values stay untouched.
func (m *EditModel) setInput(s string) {
	inputs := make([]string, len(m.Inputs))
	copy(inputs, m.Inputs)
	inputs[m.Cursor] = s
	m.Inputs = inputs
	m.revalidate()
}

func (m *EditModel) revalidate() {
	m.parseErrs = map[string]string{}
	for i, f := range m.Fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(m.Inputs[i]), 64)
		if err != nil {
			m.parseErrs[f.Name] = f.Label + " must be a number"
			continue
		}
		_ = m.dims.Set(f.Name, v)
	}
	m.result = reel.Validate(m.dims)
}

func (m EditModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Reel Dimensions"))
	b.WriteString("\n")
	b.WriteString(editDimStyle.Render("↑/↓ field  0-9 . edit  ⌫ delete  ⏎ render  esc quit"))
	b.WriteString("\n\n")

	msgs := m.result.Messages()
	for i, f := range m.Fields {
		cursor := "  "
		style := editNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = editSelectedStyle
		}
		fmt.Fprintf(&b, "%s%-22s %s %s\n", cursor, style.Render(f.Label),
			StyleValue.Render(m.Inputs[i]), editDimStyle.Render("mm"))

		if msg, ok := m.parseErrs[f.Name]; ok {
			fmt.Fprintf(&b, "    %s %s\n", styleIconError.Render(iconError), StyleError.Render(msg))
			continue
		}
		for _, msg := range msgs[f.Name] {
			fmt.Fprintf(&b, "    %s %s\n", styleIconError.Render(iconError), StyleError.Render(msg))
		}
	}

	b.WriteString("\n")
	if m.Valid() {
		b.WriteString(StyleSuccess.Render(iconSuccess + " valid"))
	} else {
		b.WriteString(StyleWarning.Render(iconWarning + " fix the highlighted fields to render"))
	}
	b.WriteString("\n")
	return b.String()
}

type editOpts struct {
	output     string
	view       string
	noDrumRing bool
	noCache    bool
}

func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit [design file]",
		Short: "Edit a design interactively",
		Long: `Edit opens a terminal form with one input per dimension. Violations are
shown as you type; enter renders the diagrams once the record is valid.

When a design file is given it is loaded first and saved back on enter.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("view") {
				opts.view = c.Config.Render.View
			}
			if err := errors.ValidateView(opts.view); err != nil {
				return err
			}
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			return c.runEdit(cmd.Context(), file, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base name (default: design file name or reel)")
	cmd.Flags().StringVar(&opts.view, "view", pipeline.ViewBoth, "views to render: side, front, both")
	cmd.Flags().BoolVar(&opts.noDrumRing, "no-drum-ring", false, "omit the drum band from the side view")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, file string, opts *editOpts) error {
	d := c.Config.Defaults
	if file != "" {
		if _, err := os.Stat(file); err == nil {
			if d, err = io.ImportDesignOver(file, d); err != nil {
				return err
			}
		} else if _, err := io.FormatFromPath(file); err != nil {
			return err
		}
	}

	final, err := tea.NewProgram(NewEditModel(d), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("edit form: %w", err)
	}
	m := final.(EditModel)
	if !m.Saved {
		printInfo("Edit cancelled")
		return nil
	}
	d = m.Dimensions()

	if file != "" {
		if err := saveDesign(file, d); err != nil {
			return err
		}
		printSuccess("Saved %s", file)
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	ropts := &renderOpts{view: opts.view, noDrumRing: opts.noDrumRing}
	_, files, err := c.renderDesign(ctx, runner, d, editBase(file, opts.output), ropts)
	if err != nil {
		return err
	}
	for _, f := range files {
		printFile(f, false)
	}
	return nil
}

// editBase picks the output base: the -o flag, then the design file, then
// the default name.
func editBase(file, output string) string {
	switch {
	case output != "":
		return output
	case file != "":
		return file
	default:
		return defaultBase
	}
}

// saveDesign writes d to path in the format implied by its extension.
func saveDesign(path string, d reel.Dimensions) error {
	format, err := io.FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := io.WriteDesign(&buf, d, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
