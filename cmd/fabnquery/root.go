package fabnquery

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timoth-y/fabnquery/cmd/fabnquery/query"
	"github.com/timoth-y/fabnquery/cmd/fabnquery/shared"
	"github.com/timoth-y/fabnquery/cmd/fabnquery/wallet"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fabnquery",
	Short: "Tool for querying smart contracts deployed on the Hyperledger Fabric network",
	Long: `Tool for querying smart contracts deployed on the Hyperledger Fabric network

Examples:
  # Query assets of type 'asset' with local wallet 'admin' identity:
  fabnquery query

  # Import identity to the wallet:
  fabnquery wallet import admin --msp-id Org1MSP --msp-dir ./msp`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, shared.ErrReported) {
			rootCmd.PrintErrln(viper.GetString("cli.error_emoji"), "Error:", err)
		}

		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(shared.InitConfig)

	shared.AddGlobalFlags(rootCmd)

	query.AddTo(rootCmd)
	wallet.AddTo(rootCmd)
}
