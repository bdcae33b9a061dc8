package sdk

import (
	"log"
	"sync"
	"time"
)

// Host is everything an org needs from the environment it runs in: the opaque call primitive,
// native-currency payouts, the event log and the clock.
type Host interface {
	// Execute performs an arbitrary call against target. false means the call reverted.
	Execute(target Address, payload []byte, value Amount) bool
	// Transfer pays native currency out of the org to a recipient.
	Transfer(to Address, value Amount) error
	Log(msg string)
	// Now returns the logical timestamp in unix seconds.
	Now() int64
}

// Call is one Execute invocation as seen by a host.
type Call struct {
	Target  Address
	Payload []byte
	Value   Amount
}

// LocalHost backs the standalone server: calls are recorded and accepted, events go to the
// process log and time is the wall clock.
type LocalHost struct {
	mu     sync.Mutex
	calls  []Call
	logger *log.Logger
}

// NewLocalHost wires the host to a logger; nil falls back to the standard logger.
func NewLocalHost(logger *log.Logger) *LocalHost {
	if logger == nil {
		logger = log.Default()
	}
	return &LocalHost{logger: logger}
}

func (h *LocalHost) Execute(target Address, payload []byte, value Amount) bool {
	h.mu.Lock()
	h.calls = append(h.calls, Call{Target: target, Payload: append([]byte(nil), payload...), Value: value})
	h.mu.Unlock()
	h.logger.Printf("execute target=%s bytes=%d value=%d", target, len(payload), value)
	return true
}

func (h *LocalHost) Transfer(to Address, value Amount) error {
	h.logger.Printf("transfer to=%s value=%d", to, value)
	return nil
}

func (h *LocalHost) Log(msg string) {
	h.logger.Print(msg)
}

func (h *LocalHost) Now() int64 {
	return time.Now().Unix()
}

// Calls returns a snapshot of every accepted Execute.
func (h *LocalHost) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Call, len(h.calls))
	copy(out, h.calls)
	return out
}
