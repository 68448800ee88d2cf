package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/pseudocode/completion"
	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
	"github.com/teranos/pseudocode/sym"
)

// CompleteCmd answers one completion request from the command line
var CompleteCmd = &cobra.Command{
	Use:   "complete [file]",
	Short: sym.Complete + " Completion suggestions for a document and cursor",
	Long: sym.Complete + ` complete — Completion suggestions for a document and cursor

Reads the document from a file, --text or stdin. The cursor defaults to the
end of the document; set it with --line/--character (UTF-16, zero-based)
or a byte --offset.

Examples:
  pseudocode complete algo.tex --line 3 --character 9
  printf '$x = \\' | pseudocode complete --json
  pseudocode complete --text '\' --limit 5`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: stderrLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := completeOpts
		opts.lineSet = cmd.Flags().Changed("line") || cmd.Flags().Changed("character")
		opts.textSet = cmd.Flags().Changed("text")
		opts.verbosity, _ = cmd.Flags().GetCount("verbose")
		if len(args) == 1 {
			opts.file = args[0]
		}

		_, provider, err := loadProvider()
		if err != nil {
			return err
		}
		return runComplete(cmd.OutOrStdout(), cmd.InOrStdin(), provider, opts)
	},
}

type completeOptions struct {
	file      string
	text      string
	textSet   bool
	line      int
	character int
	lineSet   bool
	offset    int
	limit     int
	json      bool
	verbosity int
}

var completeOpts = completeOptions{offset: -1}

func init() {
	CompleteCmd.Flags().StringVar(&completeOpts.text, "text", "", "Document text (instead of a file or stdin)")
	CompleteCmd.Flags().IntVar(&completeOpts.line, "line", 0, "Cursor line (zero-based)")
	CompleteCmd.Flags().IntVar(&completeOpts.character, "character", 0, "Cursor character in UTF-16 code units (zero-based)")
	CompleteCmd.Flags().IntVar(&completeOpts.offset, "offset", -1, "Cursor byte offset (overrides --line/--character)")
	CompleteCmd.Flags().IntVar(&completeOpts.limit, "limit", 0, "Show at most this many suggestions (0 = all)")
	CompleteCmd.Flags().BoolVarP(&completeOpts.json, "json", "j", false, "Output the result as JSON")
}

// completeOutput is the --json shape
type completeOutput struct {
	Mode        string             `json:"mode,omitempty"`
	Context     string             `json:"context"`
	Offset      int                `json:"offset"`
	Total       int                `json:"total"`
	Suggestions []completion.Entry `json:"suggestions"`
}

func runComplete(out io.Writer, in io.Reader, provider *completion.Provider, opts completeOptions) error {
	text, err := readDocument(in, opts)
	if err != nil {
		return err
	}

	offset := len(text)
	switch {
	case opts.offset >= 0:
		if opts.offset > len(text) {
			return errors.NewInvalidRequestError("offset %d is past the end of the document (%d bytes)", opts.offset, len(text))
		}
		offset = opts.offset
	case opts.lineSet:
		if opts.line < 0 || opts.character < 0 {
			return errors.NewInvalidRequestError("line and character must be non-negative")
		}
		offset = completion.Offset(text, completion.Position{Line: opts.line, Character: opts.character})
	}

	start := time.Now()
	res := provider.CompleteAt(text, offset)
	total := len(res.Suggestions)

	if logger.ShouldOutput(opts.verbosity, logger.OutputClassification) {
		logger.Debugw("Cursor classified",
			logger.FieldContext, res.Context.String(),
			logger.FieldMode, string(res.Mode),
			logger.FieldLength, len(text))
	}
	if logger.ShouldOutput(opts.verbosity, logger.OutputTiming) {
		logger.Debugw("Completion computed",
			logger.FieldCount, total,
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	}
	suggestions := res.Suggestions
	if opts.limit > 0 && opts.limit < total {
		suggestions = suggestions[:opts.limit]
	}

	if opts.json {
		data, err := json.MarshalIndent(completeOutput{
			Mode:        string(res.Mode),
			Context:     res.Context.String(),
			Offset:      offset,
			Total:       total,
			Suggestions: suggestions,
		}, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode result")
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if total == 0 {
		fmt.Fprintf(out, "%s no suggestions (context: %s)\n", sym.Complete, res.Context)
		return nil
	}

	fmt.Fprintf(out, "%s %s %s (context: %s): %d suggestions\n",
		sym.Complete, sym.ModeGlyph(string(res.Mode)), res.Mode, res.Context, total)

	data := pterm.TableData{{"Label", "Kind", "Insert"}}
	for _, e := range suggestions {
		data = append(data, []string{e.Label, string(e.Kind), displayInsert(e.InsertText)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	fmt.Fprintln(out, table)
	if len(suggestions) < total {
		fmt.Fprintf(out, "… %d more (use --limit 0 to show all)\n", total-len(suggestions))
	}
	return nil
}

// readDocument takes --text, then the file argument, then stdin
func readDocument(in io.Reader, opts completeOptions) (string, error) {
	if opts.textSet {
		return opts.text, nil
	}
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read %s", opts.file)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "failed to read stdin")
	}
	return string(data), nil
}

// displayInsert shows snippet whitespace on one table line
func displayInsert(s string) string {
	return strings.NewReplacer("\n", "⏎", "\t", "→").Replace(s)
}
