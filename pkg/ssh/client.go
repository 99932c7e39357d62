package ssh

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
	"k8s.io/kubectl/pkg/cmd/util"
)

// RemoteOperator is a connected SSH client of the remote host.
type RemoteOperator struct {
	*ssh.Client
	*clientArgs
}

// New creates new RemoteOperator instance connected to the remote host.
func New(options ...Option) (*RemoteOperator, error) {
	var args = &clientArgs{
		host: "127.0.0.1",
		port: 22,
		ClientConfig: ssh.ClientConfig{
			User:            os.Getenv("USER"),
			HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		},
	}

	if os.Getenv("SSH_AUTH_SOCK") != "" {
		if method, err := sshAgentAuthMethod(); err == nil {
			args.Auth = append(args.Auth, method)
		}
	}

	for i := range options {
		options[i](args)
	}

	var op = &RemoteOperator{
		clientArgs: args,
	}

	if len(args.initErrors) > 0 {
		op.closeAuth()
		return nil, errors.New(strings.TrimSpace(util.MultipleErrors("invalid SSH option: ", args.initErrors)))
	}

	var err error
	if op.Client, err = ssh.Dial("tcp",
		fmt.Sprintf("%s:%d", args.host, args.port),
		&args.ClientConfig,
	); err != nil {
		op.closeAuth()
		return nil, errors.Wrapf(err, "failed to connect to %s:%d", args.host, args.port)
	}

	return op, nil
}

// Host returns address of the remote host.
func (o *RemoteOperator) Host() string {
	return o.host
}

// Close closes SSH connection and other allocated resources.
func (o *RemoteOperator) Close() error {
	o.closeAuth()

	return o.Client.Close()
}

func (o *RemoteOperator) closeAuth() {
	for i := range o.closers {
		o.closers[i]()
	}

	o.closers = nil
}
