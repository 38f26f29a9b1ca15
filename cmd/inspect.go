package cmd

import (
	"fmt"
	"sort"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
	"github.com/kamal-hamza/lbl-cli/pkg/config"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

var (
	inspectPick bool
	inspectSave bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.csv|input.xlsx>",
	Short: "Show how catalog columns map onto label fields",
	Long: `Resolve the input's column names against the alias dictionary and show
the resulting mapping, without generating anything.

Use --pick to interactively choose a column for each unresolved field;
the command prints a config snippet you can paste into lbl.yaml, or
writes it directly with --save.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectPick, "pick", false, "interactively map unresolved fields")
	inspectCmd.Flags().BoolVar(&inspectSave, "save", false, "with --pick, persist the chosen aliases to the config")
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	table, err := tableReader.Read(ctx, args[0])
	if err != nil {
		return err
	}

	schema := resolverService.Resolve(table.Columns)

	fmt.Println(ui.FormatTitle("Column Mapping"))
	fmt.Println()
	printMapping(schema)

	missing := schema.MissingRequired()
	if len(missing) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatError((&domain.SchemaError{Missing: missing}).Error()))
	}

	if !inspectPick {
		if len(missing) > 0 {
			fmt.Println(ui.FormatMuted("Run with --pick to map them manually."))
		}
		return nil
	}

	picked, err := pickColumns(schema, table.Columns)
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		fmt.Println(ui.FormatMuted("Nothing picked."))
		return nil
	}

	snippet := aliasSnippet(picked)
	fmt.Println()
	fmt.Println(ui.FormatInfo("Add this to your lbl.yaml:"))
	fmt.Println()
	fmt.Println(snippet)

	if inspectSave {
		return saveAliases(picked)
	}
	return nil
}

func printMapping(schema domain.ResolvedSchema) {
	table := ui.NewTable([]ui.TableColumn{
		{Header: "FIELD", MinWidth: 14},
		{Header: "COLUMN", MinWidth: 20},
		{Header: "STATUS", MinWidth: 10},
	})
	for _, f := range domain.AllFields() {
		col, ok := schema.Column(f)
		status := "resolved"
		if !ok {
			col = ui.Placeholder
			if f.Required() {
				status = "MISSING"
			} else {
				status = "absent"
			}
		}
		table.AddRow([]string{f.Label(), col, status})
	}
	fmt.Print(table.Render())
}

// pickColumns walks every unresolved field and lets the user fuzzy-pick
// the real column for it. Skipping a field (ctrl-c / esc) leaves it
// unmapped.
func pickColumns(schema domain.ResolvedSchema, columns []string) (map[domain.LogicalField]string, error) {
	picked := make(map[domain.LogicalField]string)
	for _, f := range domain.AllFields() {
		if _, ok := schema.Column(f); ok {
			continue
		}
		fmt.Println(ui.FormatInfo("Pick a column for " + f.Label() + " (esc to skip)"))
		idx, err := fuzzyfinder.Find(
			columns,
			func(i int) string { return columns[i] },
		)
		if err != nil {
			if err == fuzzyfinder.ErrAbort {
				continue
			}
			return nil, err
		}
		picked[f] = columns[idx]
	}
	return picked, nil
}

// aliasSnippet renders manual picks as a yaml aliases block.
func aliasSnippet(picked map[domain.LogicalField]string) string {
	fields := make([]string, 0, len(picked))
	for f := range picked {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("aliases:\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s:\n", f)
		fmt.Fprintf(&b, "    - %q\n", picked[domain.LogicalField(f)])
	}
	return b.String()
}

func saveAliases(picked map[domain.LogicalField]string) error {
	path := config.FindPath(cfgFile)
	if path == "" {
		path = config.FileName
	}
	if appConfig.Aliases == nil {
		appConfig.Aliases = map[string][]string{}
	}
	for f, col := range picked {
		appConfig.Aliases[string(f)] = append(appConfig.Aliases[string(f)], col)
	}
	if err := appConfig.Save(path); err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess("Saved aliases to " + path))
	return nil
}
