package shared

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(
		"wallet", "w",
		viper.GetString("fabric.wallet_path"),
		"File system wallet directory",
	)

	cmd.PersistentFlags().String(
		"logging",
		viper.GetString("logging"),
		"Diagnostic logging level (debug, info, warning, error)",
	)

	_ = viper.BindPFlag("fabric.wallet_path", cmd.PersistentFlags().Lookup("wallet"))
	_ = viper.BindPFlag("logging", cmd.PersistentFlags().Lookup("logging"))
}
