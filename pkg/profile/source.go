package profile

import (
	"fmt"
	"io/ioutil"
)

// Source provides raw connection profile content.
type Source interface {
	Read() ([]byte, error)
	String() string
}

// FileReader reads files from some file system.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type fileSource struct {
	path string
}

// FromFile returns Source reading profile from local file on `path`.
func FromFile(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Read() ([]byte, error) {
	return ioutil.ReadFile(s.path)
}

func (s fileSource) String() string {
	return s.path
}

type remoteSource struct {
	reader FileReader
	host   string
	path   string
}

// FromRemote returns Source reading profile on `path` with `reader`,
// which is expected to be connected to the `host`.
func FromRemote(reader FileReader, host, path string) Source {
	return remoteSource{reader: reader, host: host, path: path}
}

func (s remoteSource) Read() ([]byte, error) {
	return s.reader.ReadFile(s.path)
}

func (s remoteSource) String() string {
	return fmt.Sprintf("%s:%s", s.host, s.path)
}

type rawSource []byte

// FromRaw returns Source serving `data` as is.
func FromRaw(data []byte) Source {
	return rawSource(data)
}

func (s rawSource) Read() ([]byte, error) {
	return s, nil
}

func (s rawSource) String() string {
	return "raw input"
}
