// Package replay holds the `grid replay` command, which runs an action
// script against a fresh store and prints the resulting board.
package replay

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/grid/internal/cli"
	"github.com/thenoetrevino/grid/internal/cli/styles"
	"github.com/thenoetrevino/grid/internal/config"
	"github.com/thenoetrevino/grid/internal/idgen"
	"github.com/thenoetrevino/grid/internal/script"
	"github.com/thenoetrevino/grid/internal/store"
)

// ReplayCmd returns the replay command
func ReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Run an action script and print the resulting board",
		Long: `Run a YAML (or JSON) action script against an empty board and print the result.

Each step names an action type and its fields. An ADD_* step can bind the
generated id with "as", and later steps refer to it as "$name":

  steps:
    - type: ADD_PROJECT
      name: Website
      as: site
    - type: ADD_COLUMN
      name: Todo
      project: $site

Examples:
  # Human-readable tree
  grid replay board.yaml

  # JSON output for scripts
  grid replay board.yaml --json

  # Stable ids, one line per dispatch on stderr
  grid replay board.yaml --deterministic --trace
`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ids only)")
	cmd.Flags().Bool("trace", false, "Print every dispatched action to stderr")
	cmd.Flags().Bool("deterministic", false, "Generate sequential ids (id1, id2, ...) instead of random ones")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	trace, _ := cmd.Flags().GetBool("trace")
	deterministic, _ := cmd.Flags().GetBool("deterministic")

	formatter := &cli.OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("falling back to default colors", "error", err)
		cfg = config.Default()
	}
	styles.Init(cfg.ColorScheme)

	opts := []store.Option{store.WithLogger(slog.Default())}
	if deterministic {
		opts = append(opts, store.WithIDGenerator(idgen.NewSequence("id")))
	}
	s := store.New(opts...)

	if trace {
		unsubscribe := s.Subscribe(traceListener(cmd.ErrOrStderr()))
		defer unsubscribe()
	}

	runner := script.NewRunner(s, slog.Default())
	res, err := runner.RunFile(cmd.Context(), args[0])
	if err != nil {
		return formatter.Fail(err, suggestionFor(err))
	}

	return formatter.Success(newResult(res))
}

// traceListener prints one line per dispatch
func traceListener(w io.Writer) store.Listener {
	return func(next store.State, a store.Action, version uint64) {
		fmt.Fprintln(w, traceLine(version, a, next))
	}
}

// traceLine renders a dispatch as `#n KIND field=value ... -> counts`
func traceLine(n uint64, a store.Action, next store.State) string {
	step := script.FromAction(a)

	var fields []string
	add := func(key, value string) {
		if value != "" {
			fields = append(fields, fmt.Sprintf("%s=%q", key, value))
		}
	}
	add("id", step.ID)
	add("name", step.Name)
	add("description", step.Description)
	add("project", step.Project)
	add("column", step.Column)

	line := fmt.Sprintf("#%d %s", n, step.Type)
	if len(fields) > 0 {
		line += " " + strings.Join(fields, " ")
	}
	return fmt.Sprintf("%s -> projects=%d columns=%d cards=%d",
		line, len(next.Projects), len(next.Columns), len(next.Cards))
}

func suggestionFor(err error) string {
	switch cli.Classify(err) {
	case cli.ExitNotFound:
		return "Check the script path"
	case cli.ExitValidation:
		return `Bind ids with "as: name" on an ADD_* step before referring to "$name"`
	case cli.ExitDataErr:
		return "A script is a list of steps, or a mapping with a steps list"
	}
	return ""
}

// result is the printed outcome of a replay
type result struct {
	Script  string            `json:"script,omitempty"`
	Steps   int               `json:"steps"`
	Ignored []string          `json:"ignored,omitempty"`
	Refs    map[string]string `json:"refs,omitempty"`
	Board   store.State       `json:"board"`
}

func newResult(res script.Result) result {
	return result{
		Script:  res.Name,
		Steps:   res.Steps,
		Ignored: res.Ignored,
		Refs:    res.Refs,
		Board:   res.State,
	}
}

// IDs lists every id on the board: projects, then columns, then cards
func (r result) IDs() []string {
	var ids []string
	for _, p := range r.Board.Projects {
		ids = append(ids, p.ID.String())
	}
	for _, c := range r.Board.Columns {
		ids = append(ids, c.ID.String())
	}
	for _, c := range r.Board.Cards {
		ids = append(ids, c.ID.String())
	}
	return ids
}

// Human renders the board tree followed by a summary line
func (r result) Human() string {
	var b strings.Builder
	if r.Script != "" {
		b.WriteString(styles.TitleStyle.Render(r.Script))
		b.WriteString("\n")
	}
	b.WriteString(styles.RenderBoardTree(r.Board))
	b.WriteString("\n\n")
	b.WriteString(styles.RenderSummary(r.Board))
	if len(r.Ignored) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.WarningStyle.Render(fmt.Sprintf("%d unknown steps ignored: %s",
			len(r.Ignored), strings.Join(r.Ignored, ", "))))
	}
	return b.String()
}
