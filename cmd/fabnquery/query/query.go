package query

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timoth-y/fabnquery/cmd/fabnquery/shared"
	"github.com/timoth-y/fabnquery/pkg/fabric"
	"github.com/timoth-y/fabnquery/pkg/ledger"
	"github.com/timoth-y/fabnquery/pkg/profile"
	"github.com/timoth-y/fabnquery/pkg/ssh"
)

// cmd represents the query command.
var cmd = &cobra.Command{
	Use:   "query [function] [args...]",
	Short: "Evaluates read-only query on the contract deployed on the network",
	Long: `Evaluates read-only query on the contract deployed on the network.
Query is never submitted for ordering, so ledger state remains unchanged.

Examples:
  # Query assets by type with defaults (queryByField assetType asset):
  fabnquery query

  # Query with another identity, channel and contract:
  fabnquery query -u auditor -c supply-channel -n assets queryByOwner Org2MSP

  # Use connection profile stored on the remote host:
  fabnquery query --ssh-host fabric.example.com --ssh-user ubuntu -f /srv/gateway/connection.json

  # Render result with template:
  fabnquery query -t '{{ range .JSON }}{{ .Key }}{{ "\n" }}{{ end }}'`,
	RunE: shared.WithHandleErrors(runQuery),
}

// newConnector provides ledger client used by the query.
var newConnector = func() ledger.Connector {
	return ledger.NewSDKConnector()
}

func init() {
	cmd.Flags().StringP("identity", "u", viper.GetString("fabric.identity"), "Wallet identity label")
	cmd.Flags().StringP("profile", "f", viper.GetString("fabric.connection_profile"),
		"Connection profile path (JSON or YAML)",
	)
	cmd.Flags().StringP("channel", "c", viper.GetString("fabric.channel"), "Network channel name")
	cmd.Flags().StringP("contract", "n", viper.GetString("fabric.contract"), "Contract (chaincode) name")
	cmd.Flags().Bool("discovery", viper.GetBool("fabric.discovery.enabled"), "Enable gateway service discovery")
	cmd.Flags().Bool("as-localhost", viper.GetBool("fabric.discovery.as_localhost"),
		"Map discovered network endpoints to localhost",
	)
	cmd.Flags().Duration("timeout", viper.GetDuration("fabric.timeout"), "Gateway evaluation timeout")
	cmd.Flags().StringP("template", "t", "", "Go template for result rendering (sprig functions available)")

	cmd.Flags().String("ssh-host", "", "Remote host to read connection profile from over SFTP")
	cmd.Flags().Int("ssh-port", viper.GetInt("ssh.port"), "Remote host SSH port")
	cmd.Flags().String("ssh-user", "", "Remote host SSH user (default is $USER)")
	cmd.Flags().String("ssh-key", "", "Private key used for SSH authentication")
	cmd.Flags().String("ssh-known-hosts", "", "known_hosts file to verify remote host key against")

	for key, flag := range map[string]string{
		"fabric.identity":               "identity",
		"fabric.connection_profile":     "profile",
		"fabric.channel":                "channel",
		"fabric.contract":               "contract",
		"fabric.discovery.enabled":      "discovery",
		"fabric.discovery.as_localhost": "as-localhost",
		"fabric.timeout":                "timeout",
		"ssh.host":                      "ssh-host",
		"ssh.port":                      "ssh-port",
		"ssh.user":                      "ssh-user",
		"ssh.key_path":                  "ssh-key",
		"ssh.known_hosts":               "ssh-known-hosts",
	} {
		_ = viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

func runQuery(cmd *cobra.Command, args []string) error {
	var (
		logger   = shared.NewLogger(cmd)
		function = viper.GetString("fabric.query.function")
		fnArgs   = viper.GetStringSlice("fabric.query.args")
	)

	if len(args) > 0 {
		function, fnArgs = args[0], args[1:]
	}

	source, closeSource, err := profileSource()
	if err != nil {
		return err
	}
	defer closeSource()

	runner, err := fabric.NewQueryRunner(
		fabric.WithIdentity(viper.GetString("fabric.identity")),
		fabric.WithChannel(viper.GetString("fabric.channel")),
		fabric.WithContract(viper.GetString("fabric.contract")),
		fabric.WithFunction(function, fnArgs...),
		fabric.WithDiscovery(
			viper.GetBool("fabric.discovery.enabled"),
			viper.GetBool("fabric.discovery.as_localhost"),
		),
		fabric.WithTimeout(viper.GetDuration("fabric.timeout")),
		fabric.WithTemplateFlag(cmd.Flags(), "template"),
		fabric.WithProfile(source),
		fabric.WithConnector(newConnector()),
		fabric.WithSharedOptionsForQuery(
			fabric.WithWalletPath(viper.GetString("fabric.wallet_path")),
			fabric.WithLogger(logger),
		),
	)
	if err != nil {
		return err
	}

	shared.Logger.Debugf("evaluating '%s' %v on '%s/%s' as '%s'", function, fnArgs,
		viper.GetString("fabric.channel"), viper.GetString("fabric.contract"), viper.GetString("fabric.identity"),
	)

	if _, err = runner.Run(); err != nil {
		err = shared.Report(logger, err, "Error processing query.")
		logger.Failf("transaction exception.")
		return err
	}

	logger.Info("transaction complete.")

	return nil
}

// profileSource resolves connection profile source, which is remote when SSH host is specified.
func profileSource() (profile.Source, func(), error) {
	var (
		path = viper.GetString("fabric.connection_profile")
		host = viper.GetString("ssh.host")
	)

	if len(host) == 0 {
		return profile.FromFile(path), func() {}, nil
	}

	var options = []ssh.Option{
		ssh.WithHost(host),
		ssh.WithPort(viper.GetInt("ssh.port")),
		ssh.WithUser(viper.GetString("ssh.user")),
	}

	if keyPath := viper.GetString("ssh.key_path"); len(keyPath) != 0 {
		options = append(options, ssh.WithPrivateKeyPath(keyPath))
	}

	if knownHosts := viper.GetString("ssh.known_hosts"); len(knownHosts) != 0 {
		options = append(options, ssh.WithKnownHosts(knownHosts))
	}

	operator, err := ssh.New(options...)
	if err != nil {
		return nil, nil, errors.Wrapf(fabric.ErrConfig, "failed to connect to %s: %v", host, err)
	}

	closeFn := func() {
		if err := operator.Close(); err != nil {
			shared.Logger.Warningf("failed to close SSH connection to %s: %v", host, err)
		}
	}

	return profile.FromRemote(operator, operator.Host(), filepath.ToSlash(path)), closeFn, nil
}

// AddTo adds query command to `root` cobra.Command.
func AddTo(root *cobra.Command) {
	root.AddCommand(cmd)
}
