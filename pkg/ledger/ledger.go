// Package ledger defines the contract of the ledger network client used by queries,
// along with its implementation backed by the Fabric Go SDK gateway.
package ledger

import "time"

type (
	// Connector opens gateway sessions to the ledger network.
	Connector interface {
		// Connect opens gateway session using `profile` connection configuration (JSON encoded).
		// A non-nil Session may be returned along with an error, in which case it still
		// must be disconnected.
		Connect(profile []byte, options ConnectOptions) (Session, error)
	}

	// Session is a live gateway connection.
	Session interface {
		GetNetwork(channel string) (Network, error)
		Disconnect()
	}

	// Network is a channel resolved within Session.
	Network interface {
		GetContract(name string) (Contract, error)
	}

	// Contract is a chaincode deployed on Network.
	//
	// Only the read-only evaluation path is exposed.
	Contract interface {
		EvaluateTransaction(function string, args ...string) ([]byte, error)
	}
)

// Discovery defines service discovery settings of the gateway connection.
type Discovery struct {
	Enabled     bool
	AsLocalhost bool
}

// ConnectOptions defines identity and connection settings for Connector.Connect.
type ConnectOptions struct {
	Identity   string
	WalletPath string
	Discovery  Discovery
	Timeout    time.Duration
}
