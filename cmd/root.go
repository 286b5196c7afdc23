package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/berggren/turbinia/cmd/version"
	"github.com/berggren/turbinia/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "turbinia [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Turbinia runs forensic evidence processing tasks.",
		Long: `Turbinia runs forensic feature extraction against evidence with bulk_extractor,
	collects the generated artifacts, and renders the tool's report into findings
	for operators and downstream analysis.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
}

func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.NewConfig(cfgFile)
	if err != nil {
		fmt.Printf("initializing config file function is crashed - %v \n", err)
		os.Exit(1)
	}
}
