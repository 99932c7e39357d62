package fabric

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/timoth-y/fabnquery/pkg/term"
	"k8s.io/kubectl/pkg/cmd/util"
)

type (
	SharedOption func(*sharedArgs)

	sharedArgs struct {
		walletPath string
		logger     *term.Logger
		initErrors []error
	}
)

// DefaultWalletPath returns location of the local Fabric wallet managed by the IBM Blockchain Platform extension.
func DefaultWalletPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	return filepath.Join(home, ".fabric-vscode", "wallets", "local_fabric_wallet") + string(filepath.Separator)
}

func defaultSharedArgs() *sharedArgs {
	return &sharedArgs{
		walletPath: DefaultWalletPath(),
		logger:     term.NewLogger(),
	}
}

// WithWalletPath can be used to specify file system wallet directory.
//
// Default is: $HOME/.fabric-vscode/wallets/local_fabric_wallet/
func WithWalletPath(path string) SharedOption {
	return func(args *sharedArgs) {
		if len(path) != 0 {
			args.walletPath = path
		}
	}
}

// WithLogger can be used to pass custom logger for displaying commands output.
func WithLogger(logger *term.Logger, options ...term.LoggerOption) SharedOption {
	return func(args *sharedArgs) {
		if logger != nil {
			args.logger = logger
			return
		}

		args.logger = term.NewLogger(options...)
	}
}

func (a *sharedArgs) Error() error {
	return errors.WithMessage(term.ErrInvalidArgs, strings.TrimSpace(util.MultipleErrors("", a.initErrors)))
}
