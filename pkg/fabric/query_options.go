package fabric

import (
	"fmt"
	"text/template"
	"time"

	"github.com/spf13/pflag"
	"github.com/timoth-y/fabnquery/pkg/ledger"
	"github.com/timoth-y/fabnquery/pkg/profile"
	"github.com/timoth-y/fabnquery/pkg/term"
)

// Defaults of the QueryRunner.
const (
	DefaultIdentity    = "admin"
	DefaultProfilePath = "../gateway/connection.json"
	DefaultChannel     = "mychannel"
	DefaultContract    = "asset-tracking"
	DefaultFunction    = "queryByField"
)

// DefaultArgs returns query arguments used when none are specified.
func DefaultArgs() []string {
	return []string{"assetType", "asset"}
}

type (
	QueryOption func(args *queryArgs)

	queryArgs struct {
		identity  string
		channel   string
		contract  string
		function  string
		args      []string
		discovery ledger.Discovery
		timeout   time.Duration
		profile   profile.Source
		connector ledger.Connector
		template  *template.Template
		*sharedArgs
	}
)

// WithIdentity can be used to specify wallet identity label used for the connection.
//
// Default is: admin.
func WithIdentity(identity string) QueryOption {
	return func(args *queryArgs) {
		if len(identity) != 0 {
			args.identity = identity
		}
	}
}

// WithChannel can be used to specify network channel name.
//
// Default is: mychannel.
func WithChannel(channel string) QueryOption {
	return func(args *queryArgs) {
		if len(channel) != 0 {
			args.channel = channel
		}
	}
}

// WithContract can be used to specify contract (chaincode) name.
//
// Default is: asset-tracking.
func WithContract(contract string) QueryOption {
	return func(args *queryArgs) {
		if len(contract) != 0 {
			args.contract = contract
		}
	}
}

// WithFunction can be used to specify query function and its positional arguments.
//
// Default is: queryByField assetType asset.
func WithFunction(function string, fnArgs ...string) QueryOption {
	return func(args *queryArgs) {
		if len(function) == 0 {
			args.initErrors = append(args.initErrors,
				fmt.Errorf("query function name must not be empty"),
			)
			return
		}

		args.function = function
		args.args = append([]string{}, fnArgs...)
	}
}

// WithDiscovery can be used to specify gateway service discovery settings.
//
// Default is: disabled, as localhost.
func WithDiscovery(enabled, asLocalhost bool) QueryOption {
	return func(args *queryArgs) {
		args.discovery = ledger.Discovery{
			Enabled:     enabled,
			AsLocalhost: asLocalhost,
		}
	}
}

// WithTimeout can be used to specify gateway commit and evaluation timeout.
// Zero leaves the timeout to the connector.
func WithTimeout(timeout time.Duration) QueryOption {
	return func(args *queryArgs) {
		if timeout < 0 {
			args.initErrors = append(args.initErrors,
				fmt.Errorf("timeout must not be negative, got %s", timeout),
			)
			return
		}

		args.timeout = timeout
	}
}

// WithProfile can be used to specify source of the connection profile.
//
// Default is: ../gateway/connection.json file.
func WithProfile(source profile.Source) QueryOption {
	return func(args *queryArgs) {
		if source != nil {
			args.profile = source
		}
	}
}

// WithConnector can be used to pass custom ledger.Connector.
//
// Default is: ledger.SDKConnector.
func WithConnector(connector ledger.Connector) QueryOption {
	return func(args *queryArgs) {
		if connector != nil {
			args.connector = connector
		}
	}
}

// WithTemplate can be used to render query result with Go template instead of printing it as is.
func WithTemplate(text string) QueryOption {
	return func(args *queryArgs) {
		if len(text) == 0 {
			return
		}

		tpl, err := term.ParseTemplate(text)
		if err != nil {
			args.initErrors = append(args.initErrors, err)
			return
		}

		args.template = tpl
	}
}

// WithTemplateFlag reads result template from `flags`.
func WithTemplateFlag(flags *pflag.FlagSet, name string) QueryOption {
	return func(args *queryArgs) {
		text, err := flags.GetString(name)
		if err != nil {
			args.initErrors = append(args.initErrors,
				fmt.Errorf("failed to parse parameter '%s' (result template): %s", name, err),
			)
			return
		}

		WithTemplate(text)(args)
	}
}

// WithSharedOptionsForQuery applies SharedOption to QueryRunner.
func WithSharedOptionsForQuery(options ...SharedOption) QueryOption {
	return func(args *queryArgs) {
		for i := range options {
			options[i](args.sharedArgs)
		}
	}
}
