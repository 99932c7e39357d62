package wallet

import (
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/timoth-y/fabnquery/cmd/fabnquery/shared"
	"github.com/timoth-y/fabnquery/pkg/fabric"
	"github.com/timoth-y/fabnquery/pkg/term"
)

// importCmd represents the wallet import command.
var importCmd = &cobra.Command{
	Use:   "import [label]",
	Short: "Imports X.509 identity into the wallet",
	Long: `Imports X.509 identity into the wallet

Examples:
  # Import identity from MSP directory (signcerts and keystore):
  fabnquery wallet import admin --msp-id Org1MSP --msp-dir ./msp

  # Import identity from certificate and private key files:
  fabnquery wallet import admin --msp-id Org1MSP --cert ./cert.pem --key ./priv_sk`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.Errorf(
				"%q requires exactly 1 argument: [label]", cmd.CommandPath(),
			)
		}
		return nil
	},
	RunE: shared.WithHandleErrors(importIdentity),
}

func init() {
	cmd.AddCommand(importCmd)

	importCmd.Flags().String("msp-id", "", "Organization MSP ID (required)")
	importCmd.Flags().String("msp-dir", "", "MSP directory containing 'signcerts' and 'keystore'")
	importCmd.Flags().String("cert", "", "PEM encoded certificate path")
	importCmd.Flags().String("key", "", "PEM encoded private key path")
	importCmd.Flags().Bool("force", false, "Replace identity with the same label")

	_ = importCmd.MarkFlagRequired("msp-id")
}

func importIdentity(cmd *cobra.Command, args []string) error {
	var (
		err      error
		mspID    string
		mspDir   string
		certPath string
		keyPath  string
		force    bool
		identity *gateway.X509Identity
	)

	// Parsing flags:
	if mspID, err = cmd.Flags().GetString("msp-id"); err != nil {
		return errors.WithMessage(term.ErrInvalidArgs, "failed to parse required 'msp-id' parameter")
	}

	if mspDir, err = cmd.Flags().GetString("msp-dir"); err != nil {
		return errors.WithMessage(term.ErrInvalidArgs, "failed to parse 'msp-dir' parameter")
	}

	if certPath, err = cmd.Flags().GetString("cert"); err != nil {
		return errors.WithMessage(term.ErrInvalidArgs, "failed to parse 'cert' parameter")
	}

	if keyPath, err = cmd.Flags().GetString("key"); err != nil {
		return errors.WithMessage(term.ErrInvalidArgs, "failed to parse 'key' parameter")
	}

	if force, err = cmd.Flags().GetBool("force"); err != nil {
		return errors.WithMessage(term.ErrInvalidArgs, "failed to parse 'force' parameter")
	}

	switch {
	case len(mspDir) != 0:
		identity, err = fabric.ReadMSPIdentity(mspID, mspDir)
	case len(certPath) != 0 && len(keyPath) != 0:
		identity, err = fabric.ReadX509Identity(mspID, certPath, keyPath)
	default:
		return errors.WithMessage(term.ErrInvalidArgs, "either 'msp-dir' or both 'cert' and 'key' must be specified")
	}

	if err != nil {
		return err
	}

	wallet, err := openWallet(cmd)
	if err != nil {
		return err
	}

	return wallet.Import(args[0], identity, force)
}
