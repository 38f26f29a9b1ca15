package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/internal/core/services"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

var (
	watchOutput string
	watchQuiet  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <input.csv|input.xlsx>",
	Short: "Regenerate labels whenever the catalog file changes",
	Long: `Watch the catalog file and regenerate the PDF on every save.

Pair this with a PDF viewer that reloads on change (Skim, SumatraPDF,
Zathura) while iterating on a catalog.

Use --quiet to suppress per-rebuild notifications.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output PDF path (default from config)")
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "suppress rebuild notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := watchOutput
	if output == "" {
		output = appConfig.Output
	}
	layout, err := appConfig.LayoutConfig()
	if err != nil {
		return err
	}

	regenerate := func() {
		var buf bytes.Buffer
		resp, err := generateService.Execute(getContext(), services.GenerateRequest{
			InputPath: input,
			LogoPath:  appConfig.Logo,
			Layout:    layout,
			Date:      time.Now().Format(appConfig.DateFormat),
			Output:    &buf,
		})
		if err != nil {
			fmt.Println(ui.FormatError("Rebuild failed: " + err.Error()))
			return
		}
		if resp.Empty {
			if !watchQuiet {
				fmt.Println(ui.FormatWarning("No rows in input, nothing to do."))
			}
			return
		}
		if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
			fmt.Println(ui.FormatError("Rebuild failed: " + err.Error()))
			return
		}
		if !watchQuiet {
			msg := fmt.Sprintf("Rebuilt %s (%d pages)", output, resp.Pages)
			if n := len(resp.Issues); n > 0 {
				msg += fmt.Sprintf(", %d degraded rows", n)
			}
			fmt.Println(ui.FormatSuccess(msg))
		}
	}

	// Build once up front so the watcher starts from a current PDF.
	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors and spreadsheet tools
	// replace files on save, which drops a direct file watch.
	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatRocket("Watching " + input))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	// Debounce timer to avoid rebuilding on every partial write
	var debounceTimer *time.Timer
	debounceDuration := 500 * time.Millisecond
	target := filepath.Base(input)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Rename) {

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, regenerate)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(ui.FormatWarning("Watcher error: " + err.Error()))
		}
	}
}
