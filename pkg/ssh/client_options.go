package ssh

import (
	"context"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

type (
	// Option configures SSH operator package.
	Option func(*clientArgs)

	clientArgs struct {
		ssh.ClientConfig
		host       string
		port       int
		closers    []context.CancelFunc
		initErrors []error
	}
)

// WithHost can be used to specify SSH host of device from which files would be read.
//
// Default is: 127.0.0.1.
func WithHost(addr string) Option {
	return func(args *clientArgs) {
		args.host = addr
	}
}

// WithPort can be used to specify SSH port.
//
// Default is: 22.
func WithPort(port int) Option {
	return func(args *clientArgs) {
		args.port = port
	}
}

// WithUser can be used to specify user under which remote session would be opened.
//
// Default is: $USER local environmental variable.
func WithUser(user string) Option {
	return func(args *clientArgs) {
		if len(user) != 0 {
			args.User = user
		}
	}
}

// WithPassword can be used to use password as SSH auth method.
//
// Disabled by default.
func WithPassword(password string) Option {
	return func(args *clientArgs) {
		args.Auth = append(args.Auth, ssh.Password(password))
	}
}

// WithPrivateKeyPath can be used to authenticate with private key stored on `path`.
func WithPrivateKeyPath(path string) Option {
	return func(args *clientArgs) {
		am, closeFunc, err := publicKeyAuthMethod(path)
		if err != nil {
			args.initErrors = append(args.initErrors, err)
			return
		}

		args.closers = append(args.closers, closeFunc)
		args.Auth = append(args.Auth, am)
	}
}

// WithKnownHosts can be used to verify remote host key against known_hosts file on `path`.
//
// Default is to accept any host key.
func WithKnownHosts(path string) Option {
	return func(args *clientArgs) {
		callback, err := knownhosts.New(path)
		if err != nil {
			args.initErrors = append(args.initErrors, err)
			return
		}

		args.HostKeyCallback = callback
	}
}
