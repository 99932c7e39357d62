package query

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timoth-y/fabnquery/cmd/fabnquery/shared"
	"github.com/timoth-y/fabnquery/pkg/fabric"
	"github.com/timoth-y/fabnquery/pkg/ledger"
)

type stubLedger struct {
	connectErr error
	result     []byte

	connects    int
	disconnects int
	function    string
	args        []string
}

func (s *stubLedger) Connect([]byte, ledger.ConnectOptions) (ledger.Session, error) {
	s.connects++
	if s.connectErr != nil {
		return nil, s.connectErr
	}

	return s, nil
}

func (s *stubLedger) GetNetwork(string) (ledger.Network, error) {
	return s, nil
}

func (s *stubLedger) GetContract(string) (ledger.Contract, error) {
	return s, nil
}

func (s *stubLedger) EvaluateTransaction(function string, args ...string) ([]byte, error) {
	s.function, s.args = function, args
	return s.result, nil
}

func (s *stubLedger) Disconnect() {
	s.disconnects++
}

func execute(t *testing.T, stub *stubLedger, args ...string) (string, string, error) {
	t.Helper()

	profilePath := filepath.Join(t.TempDir(), "connection.json")
	require.NoError(t, ioutil.WriteFile(profilePath, []byte(`{"name":"local_fabric"}`), 0644))

	original := newConnector
	newConnector = func() ledger.Connector { return stub }
	defer func() { newConnector = original }()

	var stdout, stderr bytes.Buffer
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--profile", profilePath}, args...))

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestQueryCmd_Success(t *testing.T) {
	stub := &stubLedger{result: []byte("B")}

	stdout, _, err := execute(t, stub, "queryByField", "assetType", "asset")
	require.NoError(t, err)

	assert.Equal(t,
		"Use network channel: mychannel.\nB\nDisconnect from Fabric gateway.\ntransaction complete.\n",
		stdout,
	)
	assert.Equal(t, "queryByField", stub.function)
	assert.Equal(t, []string{"assetType", "asset"}, stub.args)
	assert.Equal(t, 1, stub.disconnects)
	assert.NotContains(t, stdout, "Usage:")
}

func TestQueryCmd_ConnectFailure(t *testing.T) {
	stub := &stubLedger{connectErr: errors.New("E")}

	stdout, stderr, err := execute(t, stub)
	require.Error(t, err)

	assert.True(t, errors.Is(err, shared.ErrReported))
	assert.True(t, errors.Is(err, fabric.ErrConnection))
	assert.Contains(t, stdout, "Error processing query. connection error: E")
	assert.Contains(t, stdout, "(*QueryRunner).Run")
	assert.Contains(t, stdout, "transaction exception.")
	assert.NotContains(t, stdout, "transaction complete.")
	assert.NotContains(t, stdout, "Usage:")
	assert.Empty(t, stderr)
	assert.Equal(t, 1, stub.connects)
	assert.Zero(t, stub.disconnects)
}
