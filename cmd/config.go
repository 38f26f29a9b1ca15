package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/pkg/config"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the lbl configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FindPath(cfgFile)
		if path == "" {
			return fmt.Errorf("no config file found, run 'lbl init' first")
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}
