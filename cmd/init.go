package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/pkg/config"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

var initGlobal bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default lbl.yaml",
	Long: `Write a default configuration file with the stock location panel
widths, date format and output path, ready to edit.

By default the file is written to the current directory; use --global
for a user-level config at ~/.config/lbl/lbl.yaml.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initGlobal, "global", "g", false, "write the user-level config instead of ./lbl.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.FileName
	if initGlobal {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Println(ui.FormatWarning("Config already exists: " + path))
		return nil
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Wrote " + path))
	fmt.Println(ui.FormatMuted("Edit it to set your logo, output path and location box widths."))
	return nil
}
