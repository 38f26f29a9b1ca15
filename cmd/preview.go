package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
	"github.com/kamal-hamza/lbl-cli/internal/core/services"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

// previewWidth is the character width the label mock is scaled to.
const previewWidth = 72

var previewCmd = &cobra.Command{
	Use:   "preview <input.csv|input.xlsx>",
	Short: "Browse composed labels in the terminal",
	Long: `Interactively step through the catalog and see a textual mock of each
composed label: the five panels with their real cell splits and values.

Useful for sanity-checking the mapping and the location split before
printing a 500-row batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	table, err := tableReader.Read(ctx, args[0])
	if err != nil {
		return err
	}
	schema, err := resolverService.ResolveStrict(table.Columns)
	if err != nil {
		return err
	}
	if table.RowCount() == 0 {
		fmt.Println(ui.FormatWarning("No rows in input, nothing to preview."))
		return nil
	}

	layout, err := appConfig.LayoutConfig()
	if err != nil {
		return err
	}
	composer, err := services.NewComposer(layout, qrEncoder, nil)
	if err != nil {
		return err
	}

	model := previewModel{
		table:     table,
		extractor: services.NewExtractor(schema),
		composer:  composer,
		date:      time.Now().Format(appConfig.DateFormat),
		keys:      defaultPreviewKeys(),
		help:      help.New(),
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type previewKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultPreviewKeys() previewKeyMap {
	return previewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next row"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

type previewModel struct {
	table     *domain.Table
	extractor *services.Extractor
	composer  *services.Composer
	date      string
	cursor    int
	keys      previewKeyMap
	help      help.Model
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.table.RowCount()-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	data := m.extractor.Extract(m.table, m.cursor)
	label, _ := m.composer.Compose(data, m.date, m.cursor)

	var b strings.Builder
	b.WriteString(ui.FormatTitle(fmt.Sprintf("Label %d of %d", m.cursor+1, m.table.RowCount())))
	b.WriteString("\n\n")
	b.WriteString(renderLabelMock(&label))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderLabelMock draws the descriptor's panels as character boxes with
// widths proportional to the real column splits.
func renderLabelMock(label *domain.LabelDescriptor) string {
	cellStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1)

	var panels []string
	for pi := range label.Panels {
		panel := &label.Panels[pi]
		imageTag := "[QR]"
		if panel.Name == "identity" {
			imageTag = "[LOGO]"
		}
		var rows []string
		for ri, row := range panel.Cells {
			var boxes []string
			for ci := range row {
				if panel.Covered(ri, ci) {
					continue
				}
				width := int(panel.ColWidths[ci] * previewWidth)
				if span, ok := panel.SpanAt(ri, ci); ok {
					width = 0
					for c := ci; c < ci+span.ColSpan; c++ {
						width += int(panel.ColWidths[c] * previewWidth)
					}
				}
				boxes = append(boxes, cellStyle.Width(width).Render(cellText(&row[ci], imageTag)))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
		}
		panels = append(panels, strings.Join(rows, "\n"))
	}
	return strings.Join(panels, "\n")
}

func cellText(cell *domain.Cell, imageTag string) string {
	if cell.Image != nil {
		return imageTag
	}
	var parts []string
	for _, run := range cell.Runs {
		text := run.Text
		if text == "" {
			continue
		}
		if run.Bold {
			text = ui.StyleBold.Render(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "")
}
