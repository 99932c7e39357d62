package fabric

import (
	"fmt"
	"strings"

	"github.com/timoth-y/fabnquery/pkg/ledger"
)

// callLog records collaborator calls in order of occurrence.
type callLog []string

func (l *callLog) add(format string, a ...interface{}) {
	*l = append(*l, fmt.Sprintf(format, a...))
}

func (l callLog) last() string {
	if len(l) == 0 {
		return ""
	}

	return l[len(l)-1]
}

func (l callLog) count(prefix string) int {
	var n int
	for _, call := range l {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}

	return n
}

type fakeConnector struct {
	log     *callLog
	session *fakeSession
	err     error

	profile []byte
	options ledger.ConnectOptions
}

func (c *fakeConnector) Connect(profile []byte, options ledger.ConnectOptions) (ledger.Session, error) {
	c.log.add("connect %s", options.Identity)
	c.profile = profile
	c.options = options

	if c.session == nil {
		return nil, c.err
	}

	return c.session, c.err
}

type fakeSession struct {
	log     *callLog
	network *fakeNetwork
	err     error
}

func (s *fakeSession) GetNetwork(channel string) (ledger.Network, error) {
	s.log.add("network %s", channel)
	if s.err != nil {
		return nil, s.err
	}

	return s.network, nil
}

func (s *fakeSession) Disconnect() {
	s.log.add("disconnect")
}

type fakeNetwork struct {
	log      *callLog
	contract *fakeContract
	err      error
}

func (n *fakeNetwork) GetContract(name string) (ledger.Contract, error) {
	n.log.add("contract %s", name)
	if n.err != nil {
		return nil, n.err
	}

	return n.contract, nil
}

type fakeContract struct {
	log    *callLog
	result []byte
	err    error

	function string
	args     []string
}

func (c *fakeContract) EvaluateTransaction(function string, args ...string) ([]byte, error) {
	c.log.add("evaluate %s %s", function, strings.Join(args, " "))
	c.function = function
	c.args = args

	return c.result, c.err
}

// SubmitTransaction is never reachable through ledger.Contract, it is here to catch a type switch doing so.
func (c *fakeContract) SubmitTransaction(function string, args ...string) ([]byte, error) {
	c.log.add("submit %s %s", function, strings.Join(args, " "))
	return nil, nil
}

// newFakeLedger wires fake collaborators succeeding with `result`.
func newFakeLedger(result string) (*fakeConnector, *callLog) {
	var (
		log      = &callLog{}
		contract = &fakeContract{log: log, result: []byte(result)}
		network  = &fakeNetwork{log: log, contract: contract}
		session  = &fakeSession{log: log, network: network}
	)

	return &fakeConnector{log: log, session: session}, log
}
