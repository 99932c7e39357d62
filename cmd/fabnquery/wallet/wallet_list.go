package wallet

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timoth-y/fabnquery/cmd/fabnquery/shared"
)

// listCmd represents the wallet list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists identities stored in the wallet",
	Args:  cobra.NoArgs,
	RunE:  shared.WithHandleErrors(listIdentities),
}

func init() {
	cmd.AddCommand(listCmd)
}

func listIdentities(cmd *cobra.Command, _ []string) error {
	wallet, err := openWallet(cmd)
	if err != nil {
		return err
	}

	labels, err := wallet.List()
	if err != nil {
		return err
	}

	if len(labels) == 0 {
		cmd.Printf("%s Wallet %s has no identities\n", viper.GetString("cli.info_emoji"), wallet.Path())
		return nil
	}

	for _, label := range labels {
		cmd.Println(label)
	}

	return nil
}
