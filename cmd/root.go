package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Alijeyrad/psyassist_backend/cmd/http"
	systemcmd "github.com/Alijeyrad/psyassist_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "psyassist",
	Short: "PsyAssist backend for educational psychology assessments.",
	Long: `PsyAssist helps educational psychologists record diagnostic assessments
of children, interpret standardized scores, compose CHC ability passages and
generate Hebrew assessment reports.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
