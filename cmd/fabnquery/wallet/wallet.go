package wallet

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timoth-y/fabnquery/cmd/fabnquery/shared"
	"github.com/timoth-y/fabnquery/pkg/fabric"
)

// cmd represents the wallet command.
var cmd = &cobra.Command{
	Use:   "wallet",
	Short: "Provides methods for managing identities of the file system wallet",
	Long: `Provides methods for managing identities of the file system wallet

Examples:
  # List identities:
  fabnquery wallet list

  # Import identity from MSP directory:
  fabnquery wallet import admin --msp-id Org1MSP --msp-dir ./msp

  # Remove identity:
  fabnquery wallet remove admin`,
}

func openWallet(cmd *cobra.Command) (*fabric.WalletManager, error) {
	return fabric.NewWalletManager(
		fabric.WithWalletPath(viper.GetString("fabric.wallet_path")),
		fabric.WithLogger(shared.NewLogger(cmd)),
	)
}

// AddTo adds wallet commands to `root` cobra.Command.
func AddTo(root *cobra.Command) {
	root.AddCommand(cmd)
}
