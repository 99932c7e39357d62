package wallet

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMSP(t *testing.T) string {
	t.Helper()

	mspDir := t.TempDir()
	for dir, file := range map[string]string{"signcerts": "cert.pem", "keystore": "priv_sk"} {
		require.NoError(t, os.MkdirAll(filepath.Join(mspDir, dir), 0755))
		require.NoError(t, ioutil.WriteFile(filepath.Join(mspDir, dir, file), []byte("-----BEGIN-----\n"), 0600))
	}

	return mspDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestWalletCmd(t *testing.T) {
	viper.Set("fabric.wallet_path", filepath.Join(t.TempDir(), "wallet"))
	defer viper.Set("fabric.wallet_path", nil)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "has no identities")

	_, err = execute(t, "import", "admin", "--msp-id", "Org1MSP", "--msp-dir", writeMSP(t))
	require.NoError(t, err)

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "admin\n", out)

	original := confirm
	confirm = func(string) bool { return false }
	defer func() { confirm = original }()

	out, err = execute(t, "remove", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "Identity 'admin' kept")

	_, err = execute(t, "remove", "admin", "--yes")
	require.NoError(t, err)

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "has no identities")
}

func TestWalletCmd_ImportRequiresCredentials(t *testing.T) {
	viper.Set("fabric.wallet_path", filepath.Join(t.TempDir(), "wallet"))
	defer viper.Set("fabric.wallet_path", nil)

	_, err := execute(t, "import", "admin", "--msp-id", "Org1MSP", "--msp-dir", "")
	assert.Error(t, err)
}
