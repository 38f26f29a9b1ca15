package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/internal/adapters/branding"
	"github.com/kamal-hamza/lbl-cli/internal/adapters/pdf"
	"github.com/kamal-hamza/lbl-cli/internal/adapters/qr"
	"github.com/kamal-hamza/lbl-cli/internal/adapters/tabular"
	"github.com/kamal-hamza/lbl-cli/internal/core/services"
	"github.com/kamal-hamza/lbl-cli/pkg/config"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

var (
	cfgFile   string
	appConfig *config.Config

	// Adapters
	tableReader *tabular.Reader
	qrEncoder   *qr.Encoder
	logoLoader  *branding.Loader
	pdfRenderer *pdf.Renderer

	// Services
	resolverService *services.SchemaResolver
	generateService *services.GenerateService
	statsService    *services.StatsService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lbl",
	Short: "LBL - Sticker label generator",
	Long: ui.StyleTitle.Render("LBL") + " - Sticker Label Generator\n\n" +
		"Turn part-catalog spreadsheets into print-ready 10x15 cm sticker labels\n" +
		"with QR codes. Column names are matched fuzzily, so real-world exports\n" +
		"work without manual remapping.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./lbl.yaml, then ~/.config/lbl/lbl.yaml)")
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// init must work before any config exists
	if cmd.Name() == "init" {
		return nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(cfg.Theme)

	tableReader = tabular.NewReader()
	qrEncoder = qr.NewEncoder()
	logoLoader = branding.NewLoader()
	pdfRenderer = pdf.NewRenderer()

	aliases, err := cfg.AliasTable()
	if err != nil {
		return err
	}
	resolverService = services.NewSchemaResolver(aliases)
	generateService = services.NewGenerateService(tableReader, qrEncoder, logoLoader, pdfRenderer, resolverService)
	statsService = services.NewStatsService()

	return nil
}

func getContext() context.Context {
	return context.Background()
}
