package sdk

import "errors"

// Payout is one Transfer seen by MockHost.
type Payout struct {
	To    Address
	Value Amount
}

// MockHost is the in-process host used by tests. It records every call, keeps logs in memory
// and lets the test steer time and call outcomes.
type MockHost struct {
	Timestamp int64
	Logs      []string
	Calls     []Call
	Payouts   []Payout

	// OnExecute, when set, decides the Execute outcome. Tests use it to re-enter the org.
	OnExecute func(call Call) bool
	// FailTransfers makes every Transfer return an error.
	FailTransfers bool
}

// NewMockHost starts the clock at the given unix second.
func NewMockHost(ts int64) *MockHost {
	return &MockHost{Timestamp: ts}
}

var ErrTransferFailed = errors.New("mock transfer failed")

func (m *MockHost) Execute(target Address, payload []byte, value Amount) bool {
	call := Call{Target: target, Payload: append([]byte(nil), payload...), Value: value}
	m.Calls = append(m.Calls, call)
	if m.OnExecute != nil {
		return m.OnExecute(call)
	}
	return true
}

func (m *MockHost) Transfer(to Address, value Amount) error {
	if m.FailTransfers {
		return ErrTransferFailed
	}
	m.Payouts = append(m.Payouts, Payout{To: to, Value: value})
	return nil
}

func (m *MockHost) Log(msg string) { m.Logs = append(m.Logs, msg) }

func (m *MockHost) Now() int64 { return m.Timestamp }

// Advance moves the mock clock forward.
func (m *MockHost) Advance(seconds int64) { m.Timestamp += seconds }
