package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/completion"
	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/sym"
)

// CatalogCmd lists the commands offered in each mode
var CatalogCmd = &cobra.Command{
	Use:   "catalog [pseudocode|math]",
	Short: sym.Catalog + " List the commands offered in each mode",
	Long: sym.Catalog + ` catalog — List the commands offered in each mode

Without arguments, summarizes both modes by category. With a mode, lists
every command of that mode. Custom macros from render.macros_file appear
under math.

Examples:
  pseudocode catalog                 # Category summary
  pseudocode catalog math --json     # Math completion entries as JSON
  pseudocode catalog --name frac     # Where \frac is defined`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: stderrLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, provider, err := loadProvider()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if catalogName != "" {
			return runCatalogLookup(out, catalogName, catalogJSON)
		}
		if len(args) == 0 {
			return runCatalogSummary(out, provider.Bundle(), catalogJSON)
		}
		mode, err := catalog.ParseMode(args[0])
		if err != nil {
			return errors.WithHint(err, "modes: pseudocode, math")
		}
		return runCatalogList(out, provider.Bundle(), mode, catalogJSON)
	},
}

var (
	catalogName string
	catalogJSON bool
)

func init() {
	CatalogCmd.Flags().StringVar(&catalogName, "name", "", "Look up one command, with or without the backslash")
	CatalogCmd.Flags().BoolVarP(&catalogJSON, "json", "j", false, "Output as JSON")
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode JSON")
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func renderTable(out io.Writer, data pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	fmt.Fprintln(out, table)
	return nil
}

func runCatalogLookup(out io.Writer, name string, asJSON bool) error {
	symbols := catalog.Lookup(name)
	if len(symbols) == 0 {
		return errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "unknown command %s%s", catalog.EscapeChar, strings.TrimPrefix(name, catalog.EscapeChar)),
			"run 'pseudocode catalog' to list categories")
	}
	if asJSON {
		return writeJSON(out, symbols)
	}

	data := pterm.TableData{{"Mode", "Command", "Category", "Shape", "Arity"}}
	for _, s := range symbols {
		data = append(data, []string{
			sym.ModeGlyph(string(s.Mode)) + " " + string(s.Mode),
			s.Label(), s.Category, s.Shape, strconv.Itoa(s.Arity),
		})
	}
	return renderTable(out, data)
}

// categorySummary is one row of the summary
type categorySummary struct {
	Mode     string `json:"mode"`
	Category string `json:"category"`
	Shape    string `json:"shape"`
	Commands int    `json:"commands"`
}

func runCatalogSummary(out io.Writer, bundle *completion.Bundle, asJSON bool) error {
	var rows []categorySummary
	for _, mode := range catalog.Modes() {
		for _, g := range catalog.Groups(mode) {
			n := len(g.Names)
			if g.Shape == catalog.ShapeEnvironment {
				n = 1
			}
			rows = append(rows, categorySummary{Mode: string(mode), Category: g.Category, Shape: g.Shape.String(), Commands: n})
		}
	}
	if len(bundle.Macros) > 0 {
		rows = append(rows, categorySummary{Mode: string(catalog.ModeMath), Category: "Custom Macros", Shape: catalog.ShapeArgs.String(), Commands: len(bundle.Macros)})
	}

	if asJSON {
		return writeJSON(out, rows)
	}

	data := pterm.TableData{{"Mode", "Category", "Shape", "Commands"}}
	for _, r := range rows {
		data = append(data, []string{sym.ModeGlyph(r.Mode) + " " + r.Mode, r.Category, r.Shape, strconv.Itoa(r.Commands)})
	}
	if err := renderTable(out, data); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %d pseudocode entries, %d math entries\n", sym.Catalog, bundle.Pseudocode.Len(), bundle.Math.Len())
	return nil
}

func runCatalogList(out io.Writer, bundle *completion.Bundle, mode catalog.Mode, asJSON bool) error {
	set := bundle.Set(mode)
	if asJSON {
		return writeJSON(out, set)
	}

	data := pterm.TableData{{"Label", "Kind", "Insert"}}
	for _, e := range set.Entries() {
		data = append(data, []string{e.Label, string(e.Kind), displayInsert(e.InsertText)})
	}
	if err := renderTable(out, data); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s %d entries\n", sym.Catalog, sym.ModeGlyph(string(mode)), set.Len())
	return nil
}
