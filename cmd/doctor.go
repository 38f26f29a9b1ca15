package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
	"github.com/kamal-hamza/lbl-cli/pkg/config"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the configuration for problems",
	Long: `Run sanity checks against the active configuration:

  - location panel widths are positive and sum to 1.0
  - the date format round-trips a reference date
  - the configured logo exists and can be prepared for the label
  - custom aliases reference known logical fields`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	problems := 0
	check := func(name string, err error) {
		if err != nil {
			problems++
			fmt.Println(ui.FormatError(name + ": " + err.Error()))
			return
		}
		fmt.Println(ui.FormatSuccess(name))
	}

	if path := config.FindPath(cfgFile); path != "" {
		fmt.Println(ui.FormatMuted("Config: " + path))
	} else {
		fmt.Println(ui.FormatMuted("Config: built-in defaults (no lbl.yaml found)"))
	}
	fmt.Println()

	_, widthErr := appConfig.LayoutConfig()
	check("location widths", widthErr)

	check("date format", appConfig.Validate())

	_, aliasErr := appConfig.AliasTable()
	check("aliases", aliasErr)

	if appConfig.Logo != "" {
		logoErr := func() error {
			if _, err := os.Stat(appConfig.Logo); err != nil {
				return err
			}
			_, err := logoLoader.Fit(appConfig.Logo,
				domain.ContentWidthCm*domain.LogoWidthFraction, domain.LogoHeightCm)
			return err
		}()
		check("logo", logoErr)
	} else {
		fmt.Println(ui.FormatMuted("  logo: not configured (labels print without branding)"))
	}

	fmt.Println()
	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Println(ui.FormatSuccess("Everything looks good"))
	return nil
}
