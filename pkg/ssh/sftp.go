package ssh

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/pkg/sftp"
)

// ReadFile reads file on remote `path` over SFTP protocol.
func (o *RemoteOperator) ReadFile(path string) ([]byte, error) {
	sftpClient, err := sftp.NewClient(o.Client)
	if err != nil {
		return nil, errors.Wrap(err, "failed create SFTP client")
	}

	defer func() {
		_ = sftpClient.Close()
	}()

	file, err := sftpClient.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening remote file %s", path)
	}

	defer func() {
		_ = file.Close()
	}()

	return ioutil.ReadAll(file)
}
