package ledger

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalProfile = `{"name":"local_fabric","version":"1.0.0","client":{"organization":"Org1"}}`

func restoreEnv(t *testing.T, key string) {
	t.Helper()

	value, ok := os.LookupEnv(key)
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, value)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func TestSDKConnector_MissingIdentity(t *testing.T) {
	restoreEnv(t, localhostEnvVar)

	for _, asLocalhost := range []bool{true, false} {
		session, err := NewSDKConnector().Connect([]byte(minimalProfile), ConnectOptions{
			Identity:   "admin",
			WalletPath: filepath.Join(t.TempDir(), "wallet"),
			Discovery:  Discovery{AsLocalhost: asLocalhost},
		})

		require.Error(t, err)
		assert.Nil(t, session)
		assert.Contains(t, err.Error(), "failed to connect to gateway as 'admin'")

		if asLocalhost {
			assert.Equal(t, "true", os.Getenv(localhostEnvVar))
		} else {
			assert.Equal(t, "false", os.Getenv(localhostEnvVar))
		}
	}
}

func TestSDKConnector_WalletUnavailable(t *testing.T) {
	walletPath := filepath.Join(t.TempDir(), "wallet")
	require.NoError(t, ioutil.WriteFile(walletPath, []byte("not a directory"), 0644))

	_, err := NewSDKConnector().Connect([]byte(minimalProfile), ConnectOptions{
		Identity:   "admin",
		WalletPath: filepath.Join(walletPath, "nested"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open wallet on path")
}

func TestGatewayOptions_Timeout(t *testing.T) {
	assert.Empty(t, gatewayOptions(ConnectOptions{}))
	assert.Len(t, gatewayOptions(ConnectOptions{Timeout: 30 * time.Second}), 1)
}

type stubNetwork struct {
	contracts map[string]*gateway.Contract
}

func (n stubNetwork) Name() string {
	return "mychannel"
}

func (n stubNetwork) GetContract(chaincodeID string) *gateway.Contract {
	return n.contracts[chaincodeID]
}

func TestSDKNetwork_GetContract(t *testing.T) {
	network := &sdkNetwork{network: stubNetwork{contracts: map[string]*gateway.Contract{
		"asset-tracking": {},
	}}}

	contract, err := network.GetContract("asset-tracking")
	require.NoError(t, err)
	assert.NotNil(t, contract)

	_, err = network.GetContract("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract 'missing' isn't available on 'mychannel' channel")
}
