package fabric

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"
)

var (
	// ErrIdentityNotFound is returned when identity label isn't present in the wallet.
	ErrIdentityNotFound = errors.New("identity not found in wallet")
	// ErrIdentityExists is returned on attempt to import identity under taken label.
	ErrIdentityExists = errors.New("identity already exists in wallet")
)

// WalletManager manages identities stored in the file system wallet.
type WalletManager struct {
	wallet *gateway.Wallet
	*sharedArgs
}

// NewWalletManager opens file system wallet, creating its directory if it doesn't exist yet.
func NewWalletManager(options ...SharedOption) (*WalletManager, error) {
	var args = defaultSharedArgs()

	for i := range options {
		options[i](args)
	}

	if len(args.initErrors) > 0 {
		return nil, args.Error()
	}

	wallet, err := gateway.NewFileSystemWallet(args.walletPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open wallet on path %s", args.walletPath)
	}

	return &WalletManager{
		wallet:     wallet,
		sharedArgs: args,
	}, nil
}

// Path returns wallet directory path.
func (m *WalletManager) Path() string {
	return m.walletPath
}

// List returns sorted labels of identities stored in the wallet.
func (m *WalletManager) List() ([]string, error) {
	labels, err := m.wallet.List()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wallet identities")
	}

	sort.Strings(labels)

	return labels, nil
}

// Exists determines whether identity with `label` is stored in the wallet.
func (m *WalletManager) Exists(label string) bool {
	return m.wallet.Exists(label)
}

// Import stores X.509 `identity` in the wallet under `label`.
// Existing identity is replaced only when `overwrite` is set.
func (m *WalletManager) Import(label string, identity *gateway.X509Identity, overwrite bool) error {
	if m.wallet.Exists(label) && !overwrite {
		return errors.Wrapf(ErrIdentityExists, "label '%s'", label)
	}

	if err := m.wallet.Put(label, identity); err != nil {
		return errors.Wrapf(err, "failed to store '%s' identity", label)
	}

	m.logger.Successf("Identity '%s' of '%s' stored in wallet %s", label, identity.MspID, m.walletPath)

	return nil
}

// Remove deletes identity with `label` from the wallet.
func (m *WalletManager) Remove(label string) error {
	if !m.wallet.Exists(label) {
		return errors.Wrapf(ErrIdentityNotFound, "label '%s'", label)
	}

	if err := m.wallet.Remove(label); err != nil {
		return errors.Wrapf(err, "failed to remove '%s' identity", label)
	}

	m.logger.Successf("Identity '%s' removed from wallet %s", label, m.walletPath)

	return nil
}

// ReadX509Identity reads PEM encoded certificate and private key files into X.509 identity of `mspID`.
func ReadX509Identity(mspID, certPath, keyPath string) (*gateway.X509Identity, error) {
	if len(mspID) == 0 {
		return nil, errors.New("MSP ID must not be empty")
	}

	cert, err := ioutil.ReadFile(certPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read certificate from path: %s", certPath)
	}

	key, err := ioutil.ReadFile(keyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read private key from path: %s", keyPath)
	}

	return gateway.NewX509Identity(mspID, string(cert), string(key)), nil
}

// ReadMSPIdentity reads X.509 identity from MSP directory structure
// with single certificate in 'signcerts' and single key in 'keystore'.
func ReadMSPIdentity(mspID, mspDir string) (*gateway.X509Identity, error) {
	certPath, err := singleFile(filepath.Join(mspDir, "signcerts"))
	if err != nil {
		return nil, err
	}

	keyPath, err := singleFile(filepath.Join(mspDir, "keystore"))
	if err != nil {
		return nil, err
	}

	return ReadX509Identity(mspID, certPath, keyPath)
}

func singleFile(dir string) (string, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var files []os.FileInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry)
		}
	}

	if len(files) != 1 {
		return "", errors.Errorf("expected exactly one file in %s, found %d", dir, len(files))
	}

	return filepath.Join(dir, files[0].Name()), nil
}
