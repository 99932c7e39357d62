package ledger

import (
	"os"
	"strconv"

	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

// localhostEnvVar is read by the SDK gateway to map discovered endpoints to localhost.
const localhostEnvVar = "DISCOVERY_AS_LOCALHOST"

var logger = logging.MustGetLogger("fabnquery")

// SDKConnector implements Connector with github.com/hyperledger/fabric-sdk-go gateway.
type SDKConnector struct{}

// NewSDKConnector constructs new SDKConnector instance.
func NewSDKConnector() *SDKConnector {
	return &SDKConnector{}
}

func (c *SDKConnector) Connect(profile []byte, options ConnectOptions) (Session, error) {
	wallet, err := gateway.NewFileSystemWallet(options.WalletPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open wallet on path %s", options.WalletPath)
	}

	if options.Discovery.Enabled {
		logger.Debugf("discovery can't be toggled on SDK gateway, endpoints are resolved by its selection service")
	}

	if err = os.Setenv(localhostEnvVar, strconv.FormatBool(options.Discovery.AsLocalhost)); err != nil {
		return nil, errors.Wrapf(err, "failed to set %s", localhostEnvVar)
	}

	gw, err := gateway.Connect(
		gateway.WithConfig(config.FromRaw(profile, "json")),
		gateway.WithIdentity(wallet, options.Identity),
		gatewayOptions(options)...,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to gateway as '%s'", options.Identity)
	}

	return &sdkSession{gw: gw}, nil
}

// gatewayOptions maps ConnectOptions to optional gateway settings.
func gatewayOptions(options ConnectOptions) []gateway.Option {
	var gwOptions []gateway.Option

	if options.Timeout > 0 {
		gwOptions = append(gwOptions, gateway.WithTimeout(options.Timeout))
	}

	return gwOptions
}

type sdkSession struct {
	gw *gateway.Gateway
}

func (s *sdkSession) GetNetwork(channel string) (Network, error) {
	network, err := s.gw.GetNetwork(channel)
	if err != nil {
		return nil, err
	}

	return &sdkNetwork{network: network}, nil
}

func (s *sdkSession) Disconnect() {
	s.gw.Close()
}

// contractProvider is the part of *gateway.Network used to resolve contracts.
type contractProvider interface {
	Name() string
	GetContract(chaincodeID string) *gateway.Contract
}

type sdkNetwork struct {
	network contractProvider
}

func (n *sdkNetwork) GetContract(name string) (Contract, error) {
	if contract := n.network.GetContract(name); contract != nil {
		return contract, nil
	}

	return nil, errors.Errorf("contract '%s' isn't available on '%s' channel", name, n.network.Name())
}
