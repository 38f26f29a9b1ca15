package cmd

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/internal/core/services"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

var statsChart string

var statsCmd = &cobra.Command{
	Use:   "stats <input.csv|input.xlsx>",
	Short: "Show catalog coverage and value distributions",
	Long: `Analyze the catalog before printing: how many rows carry each field,
and how part types, statuses and bin types are distributed.

With --chart, also write an interactive HTML chart of the distributions.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsChart, "chart", "", "write distribution charts to this HTML file")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	table, err := tableReader.Read(ctx, args[0])
	if err != nil {
		return err
	}
	schema := resolverService.Resolve(table.Columns)
	stats := statsService.Execute(table, schema)

	fmt.Println(ui.FormatRocket(fmt.Sprintf("Analyzed %d rows", stats.Rows)))
	fmt.Println()

	fmt.Println(ui.FormatTitle("Field Coverage"))
	coverage := ui.NewTable([]ui.TableColumn{
		{Header: "FIELD", MinWidth: 14},
		{Header: "COLUMN", MinWidth: 20},
		{Header: "ROWS", MinWidth: 6, Numeric: true},
	})
	for _, c := range stats.Coverage {
		col := c.Column
		if col == "" {
			col = ui.Placeholder
		}
		coverage.AddRow([]string{c.Field.Label(), col, fmt.Sprintf("%d", c.NonEmpty)})
	}
	fmt.Print(coverage.Render())

	printDistribution("Part Types", stats.TypeDist)
	printDistribution("Part Statuses", stats.StatusDist)
	printDistribution("Bin Types", stats.BinDist)

	if statsChart != "" {
		if err := writeChart(statsChart, stats); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		fmt.Println()
		fmt.Println(ui.FormatSuccess("Chart written to " + statsChart))
	}
	return nil
}

func printDistribution(title string, dist []services.ValueCount) {
	if len(dist) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(ui.FormatTitle(title))
	table := ui.NewTable([]ui.TableColumn{
		{Header: "VALUE", MinWidth: 20},
		{Header: "COUNT", MinWidth: 6, Numeric: true},
	})
	for _, vc := range dist {
		table.AddRow([]string{vc.Value, fmt.Sprintf("%d", vc.Count)})
	}
	fmt.Print(table.Render())
}

// writeChart renders the three distributions as bar charts on one HTML
// page.
func writeChart(path string, stats *services.Stats) error {
	page := components.NewPage()
	page.PageTitle = "Catalog Distributions"

	bars := []*charts.Bar{
		distributionBar("Part Types", stats.TypeDist),
		distributionBar("Part Statuses", stats.StatusDist),
		distributionBar("Bin Types", stats.BinDist),
	}
	for _, c := range bars {
		if c != nil {
			page.AddCharts(c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

func distributionBar(title string, dist []services.ValueCount) *charts.Bar {
	if len(dist) == 0 {
		return nil
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	labels := make([]string, len(dist))
	values := make([]opts.BarData, len(dist))
	for i, vc := range dist {
		labels[i] = vc.Value
		values[i] = opts.BarData{Value: vc.Count}
	}
	bar.SetXAxis(labels).AddSeries("parts", values)
	return bar
}
