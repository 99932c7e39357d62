package ssh

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"net"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/term"
)

func sshAgentAuthMethod() (ssh.AuthMethod, error) {
	ag, err := net.Dial("unix", os.Getenv("SSH_AUTH_SOCK"))
	if err != nil {
		return nil, err
	}
	return ssh.PublicKeysCallback(agent.NewClient(ag).Signers), nil
}

func publicKeyAuthMethod(path string) (ssh.AuthMethod, context.CancelFunc, error) {
	noopCloseFunc := func() {}

	key, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, noopCloseFunc, errors.Wrapf(err, "unable to read private key file %s", path)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		if _, ok := err.(*ssh.PassphraseMissingError); !ok {
			return nil, noopCloseFunc, errors.Wrapf(err, "unable to parse private key %s", path)
		}

		agentAuth, closeAgent := sshAgent(path + ".pub")
		if agentAuth != nil {
			return agentAuth, closeAgent, nil
		}

		defer closeAgent()

		fmt.Fprintf(os.Stderr, "Enter passphrase for '%s': ", path)
		passphrase, _ := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)

		signer, err = ssh.ParsePrivateKeyWithPassphrase(key, passphrase)
		if err != nil {
			return nil, noopCloseFunc, errors.Wrap(err, "parse private key with passphrase failed")
		}
	}

	return ssh.PublicKeys(signer), noopCloseFunc, nil
}

// sshAgent looks up public key on `publicKeyPath` in the running SSH agent
// and returns auth method backed by the agent if it holds that key.
func sshAgent(publicKeyPath string) (ssh.AuthMethod, context.CancelFunc) {
	conn, err := net.Dial("unix", os.Getenv("SSH_AUTH_SOCK"))
	if err != nil {
		return nil, func() {}
	}

	closeConn := func() {
		_ = conn.Close()
	}

	sshAgent := agent.NewClient(conn)

	keys, _ := sshAgent.List()
	if len(keys) == 0 {
		return nil, closeConn
	}

	pubKey, err := ioutil.ReadFile(publicKeyPath)
	if err != nil {
		return nil, closeConn
	}

	authKey, _, _, _, err := ssh.ParseAuthorizedKey(pubKey)
	if err != nil {
		return nil, closeConn
	}
	parsedKey := authKey.Marshal()

	for _, key := range keys {
		if bytes.Equal(key.Blob, parsedKey) {
			return ssh.PublicKeysCallback(sshAgent.Signers), closeConn
		}
	}

	return nil, closeConn
}
