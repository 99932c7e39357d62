package wallet

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timoth-y/fabnquery/cmd/fabnquery/shared"
	"github.com/timoth-y/fabnquery/pkg/term"
)

// removeCmd represents the wallet remove command.
var removeCmd = &cobra.Command{
	Use:   "remove [label]",
	Short: "Removes identity from the wallet",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.Errorf(
				"%q requires exactly 1 argument: [label]", cmd.CommandPath(),
			)
		}
		return nil
	},
	RunE: shared.WithHandleErrors(removeIdentity),
}

// confirm asks whether the action should proceed.
var confirm = term.PromptConfirm

func init() {
	cmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolP("yes", "y", false, "Skip removal confirmation")
}

func removeIdentity(cmd *cobra.Command, args []string) error {
	var label = args[0]

	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return errors.WithMessage(term.ErrInvalidArgs, "failed to parse 'yes' parameter")
	}

	wallet, err := openWallet(cmd)
	if err != nil {
		return err
	}

	if !yes && !confirm(fmt.Sprintf("Remove '%s' identity from %s?", label, wallet.Path())) {
		cmd.Printf("%s Identity '%s' kept\n", viper.GetString("cli.info_emoji"), label)
		return nil
	}

	return wallet.Remove(label)
}
