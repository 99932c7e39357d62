package fabric

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/timoth-y/fabnquery/pkg/ledger"
	"github.com/timoth-y/fabnquery/pkg/profile"
	"github.com/timoth-y/fabnquery/pkg/term"
)

// QueryRunner evaluates single read-only query against contract deployed on the network.
type QueryRunner struct {
	*queryArgs
}

// NewQueryRunner constructs new QueryRunner instance.
func NewQueryRunner(options ...QueryOption) (*QueryRunner, error) {
	var args = &queryArgs{
		identity: DefaultIdentity,
		channel:  DefaultChannel,
		contract: DefaultContract,
		function: DefaultFunction,
		args:     DefaultArgs(),
		discovery: ledger.Discovery{
			Enabled:     false,
			AsLocalhost: true,
		},
		profile:    profile.FromFile(DefaultProfilePath),
		sharedArgs: defaultSharedArgs(),
	}

	for i := range options {
		options[i](args)
	}

	if len(args.initErrors) > 0 {
		return nil, args.Error()
	}

	if args.connector == nil {
		args.connector = ledger.NewSDKConnector()
	}

	return &QueryRunner{
		queryArgs: args,
	}, nil
}

// Run loads connection profile, connects to the gateway and evaluates the query.
// Result is written to the logger stdout and returned as text.
//
// Gateway session, once obtained, is disconnected exactly once before Run returns.
func (r *QueryRunner) Run() (string, error) {
	prof, err := profile.Load(r.profile)
	if err != nil {
		return "", newRunError(ErrConfig, err)
	}

	if len(prof.Channels) != 0 && !prof.HasChannel(r.channel) {
		r.logger.Warningf("Channel '%s' isn't defined in '%s' connection profile", r.channel, prof.Name)
	}

	var session ledger.Session

	defer func() {
		if session != nil {
			r.logger.Info("Disconnect from Fabric gateway.")
			session.Disconnect()
		}
	}()

	if err = r.logger.Stream(func() error {
		var connErr error
		session, connErr = r.connector.Connect(prof.Raw, r.connectOptions())
		return connErr
	}, fmt.Sprintf("Connecting to '%s' gateway as '%s'", prof.Name, r.identity),
		fmt.Sprintf("Connected to '%s' gateway", prof.Name),
	); err != nil {
		return "", newRunError(ErrConnection, err)
	}

	if session == nil {
		return "", newRunError(ErrConnection, errors.New("gateway returned no session"))
	}

	r.logger.Infof("Use network channel: %s.", r.channel)

	network, err := session.GetNetwork(r.channel)
	if err != nil {
		return "", newRunError(ErrResolution,
			errors.Wrapf(err, "failed to get network channel '%s'", r.channel),
		)
	}

	contract, err := network.GetContract(r.contract)
	if err != nil {
		return "", newRunError(ErrResolution,
			errors.Wrapf(err, "failed to get contract '%s' on channel '%s'", r.contract, r.channel),
		)
	}

	payload, err := contract.EvaluateTransaction(r.function, r.args...)
	if err != nil {
		return "", newRunError(ErrQuery,
			errors.Wrapf(err, "failed to evaluate '%s' on contract '%s'", r.function, r.contract),
		)
	}

	if err = r.print(payload); err != nil {
		return "", err
	}

	return string(payload), nil
}

func (r *QueryRunner) connectOptions() ledger.ConnectOptions {
	return ledger.ConnectOptions{
		Identity:   r.identity,
		WalletPath: r.walletPath,
		Discovery:  r.discovery,
		Timeout:    r.timeout,
	}
}

func (r *QueryRunner) print(payload []byte) error {
	if r.template == nil {
		r.logger.Info(string(payload))
		return nil
	}

	if err := term.RenderTemplate(r.logger, r.template, payload); err != nil {
		return err
	}

	r.logger.NewLine()

	return nil
}
