package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/internal/core/services"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

var (
	generateOutput     string
	generateLogo       string
	generateNoProgress bool
	generateOpen       bool
)

var generateCmd = &cobra.Command{
	Use:     "generate <input.csv|input.xlsx>",
	Aliases: []string{"gen"},
	Short:   "Generate sticker labels from a catalog file (alias: gen)",
	Long: `Generate a print-ready PDF of sticker labels, one 10x15 cm page per
catalog row.

Column names are matched against the built-in alias dictionary, so exports
with headers like "Assy Name", "PARTNO." or "Line_Location" work as-is.
Run 'lbl inspect' first to see how columns will be mapped.

Rows whose QR payload cannot be encoded get a textual placeholder instead;
the run still succeeds and reports the degraded rows.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output PDF path (default from config)")
	generateCmd.Flags().StringVar(&generateLogo, "logo", "", "branding image for the identity panel (default from config)")
	generateCmd.Flags().BoolVar(&generateNoProgress, "no-progress", false, "disable the progress bar")
	generateCmd.Flags().BoolVar(&generateOpen, "open", false, "open the PDF when done")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	output := generateOutput
	if output == "" {
		output = appConfig.Output
	}
	logo := generateLogo
	if logo == "" {
		logo = appConfig.Logo
	}
	layout, err := appConfig.LayoutConfig()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	req := services.GenerateRequest{
		InputPath: args[0],
		LogoPath:  logo,
		Layout:    layout,
		Date:      time.Now().Format(appConfig.DateFormat),
		Output:    &buf,
	}

	var resp *services.GenerateResponse
	if generateNoProgress {
		resp, err = generateService.Execute(ctx, req)
	} else {
		resp, err = runWithProgress(req)
	}
	if err != nil {
		return err
	}

	if resp.Empty {
		fmt.Println(ui.FormatWarning("No rows in input, nothing to do."))
		return nil
	}

	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	printGenerateSummary(resp, output)

	if generateOpen {
		if err := OpenFile(output, appConfig.PDFViewer); err != nil {
			fmt.Println(ui.FormatWarning(err.Error()))
		}
	}
	return nil
}

// runWithProgress runs the pipeline behind a progress bar. The
// generation happens in a goroutine and streams row completions into
// the bubbletea program. The goroutine is always joined before this
// returns, so resp/genErr are never read concurrently.
func runWithProgress(req services.GenerateRequest) (*services.GenerateResponse, error) {
	ctx, cancel := context.WithCancel(getContext())
	defer cancel()

	p := tea.NewProgram(newGenerateModel())

	var resp *services.GenerateResponse
	var genErr error
	req.OnRow = func(done, total int) {
		p.Send(rowDoneMsg{done: done, total: total})
	}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		resp, genErr = generateService.Execute(ctx, req)
		p.Send(generateDoneMsg{})
	}()

	final, err := p.Run()
	if err != nil {
		cancel()
		<-finished
		return nil, fmt.Errorf("progress display failed: %w", err)
	}
	if m, ok := final.(generateModel); ok && m.aborted {
		// User quit before the pipeline finished; stop it and
		// discard whatever it produced.
		cancel()
		<-finished
		return nil, fmt.Errorf("generation aborted")
	}

	<-finished
	return resp, genErr
}

func printGenerateSummary(resp *services.GenerateResponse, output string) {
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Generated %d labels (%d pages)", resp.Rows, resp.Pages)))
	fmt.Println(ui.FormatMuted("Output: " + output))

	for _, warning := range resp.Warnings {
		fmt.Println(ui.FormatWarning(warning))
	}
	for _, issue := range resp.Issues {
		fmt.Println(ui.FormatWarning(issue.String()))
	}
}

type rowDoneMsg struct {
	done, total int
}

type generateDoneMsg struct{}

type generateModel struct {
	bar         progress.Model
	done, total int
	finished    bool
	aborted     bool
}

func newGenerateModel() generateModel {
	return generateModel{bar: progress.New(progress.WithDefaultGradient())}
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rowDoneMsg:
		m.done, m.total = msg.done, msg.total
		return m, m.bar.SetPercent(float64(msg.done) / float64(msg.total))

	case generateDoneMsg:
		m.finished = true
		return m, tea.Quit

	case progress.FrameMsg:
		model, cmd := m.bar.Update(msg)
		m.bar = model.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = !m.finished
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m generateModel) View() string {
	if m.total == 0 {
		return ui.FormatRocket("Composing labels...") + "\n"
	}
	return fmt.Sprintf("%s\n%s %d/%d\n",
		ui.FormatRocket("Composing labels..."),
		m.bar.View(), m.done, m.total)
}
