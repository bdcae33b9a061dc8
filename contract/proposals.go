package contract

import (
	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

// Engine is one append-only proposal store. Everything variant specific lives in the Policy.
type Engine struct {
	tag       string
	policy    Policy
	proposals []*dao.Proposal
	journal   []undo
}

// undo is the pre-image of a proposal changed inside the running operation.
type undo struct {
	p    *dao.Proposal
	prev dao.Proposal
}

// engineMark is where an operation started: store length and journal length.
type engineMark struct {
	n, j int
}

func newEngine(tag string, policy Policy) *Engine {
	return &Engine{tag: tag, policy: policy}
}

// proposalDraft is what CreateProposal hands to the engine after decoding.
type proposalDraft struct {
	Target      sdk.Address
	Payload     []byte
	Command     dao.Command
	Value       sdk.Amount
	Description string
	Threshold   sdk.Amount
}

// create appends a new open proposal and returns it. Ids start at 0 and are never reused.
func (e *Engine) create(caller sdk.Address, d proposalDraft, now int64) (*dao.Proposal, error) {
	if err := e.policy.MayPropose(caller); err != nil {
		return nil, err
	}
	if d.Command != nil && !e.policy.Allows(d.Command.Op()) {
		return nil, newError(EInvalidConfiguration, "%s is not available here", d.Command.Op())
	}
	p := &dao.Proposal{
		ID:          uint64(len(e.proposals)),
		Creator:     caller,
		Target:      d.Target,
		Payload:     append([]byte(nil), d.Payload...),
		Command:     d.Command,
		Value:       d.Value,
		Description: d.Description,
		CreatedAt:   now,
		Threshold:   d.Threshold,
	}
	e.proposals = append(e.proposals, p)
	return p, nil
}

// live fetches a proposal that can still move: it exists, is not executed and not expired.
func (e *Engine) live(id uint64, now int64, duration uint64) (*dao.Proposal, error) {
	p, err := e.get(id)
	if err != nil {
		return nil, err
	}
	switch p.StateAt(now, duration) {
	case dao.ProposalExecuted:
		return nil, newError(EAlreadyExecuted, "proposal %d already executed", id)
	case dao.ProposalExpired:
		return nil, newErrorWithDetails(EProposalExpired, "voting window closed",
			map[string]string{"id": u64(id), "created_at": i64(p.CreatedAt), "duration": u64(duration)})
	}
	return p, nil
}

func (e *Engine) sign(caller sdk.Address, id uint64, now int64, duration uint64) (*dao.Proposal, error) {
	p, err := e.live(id, now, duration)
	if err != nil {
		return nil, err
	}
	if err := e.policy.MaySign(caller); err != nil {
		return nil, err
	}
	if p.HasSigned(caller) {
		return nil, newError(EAlreadySigned, "%s already signed proposal %d", caller, id)
	}
	e.touch(p)
	p.Signers = append(p.Signers, caller)
	return p, nil
}

// CheckQuorum compares the signer weight against the policy. A mandatory signer is checked
// first, so a missing golden share is reported as such even when the count is short too.
func (e *Engine) CheckQuorum(p *dao.Proposal) error {
	if m := e.policy.MandatorySigner(); m != "" && !p.HasSigned(m) {
		return newError(EGoldenShareRequired, "proposal %d lacks the golden share %s", p.ID, m)
	}
	have, need := e.policy.SignerWeight(p), e.policy.RequiredWeight(p)
	if have < need {
		return newErrorWithDetails(EQuorumNotMet, "not enough signer weight",
			map[string]string{"id": u64(p.ID), "have": have.String(), "need": need.String()})
	}
	return nil
}

// activate flips Executed before run is called. A nested activate of the same id therefore
// sees an executed proposal. If run fails the flag is restored so the caller may retry.
func (e *Engine) activate(caller sdk.Address, id uint64, now int64, duration uint64, run func(*dao.Proposal) error) (*dao.Proposal, error) {
	p, err := e.live(id, now, duration)
	if err != nil {
		return nil, err
	}
	if caller != p.Creator {
		if err := e.policy.MaySign(caller); err != nil {
			return nil, err
		}
	}
	if err := e.CheckQuorum(p); err != nil {
		return nil, err
	}
	e.touch(p)
	p.Executed = true
	if err := run(p); err != nil {
		p.Executed = false
		return nil, err
	}
	return p, nil
}

func (e *Engine) get(id uint64) (*dao.Proposal, error) {
	if id >= uint64(len(e.proposals)) {
		return nil, newError(EProposalNotFound, "proposal %d not found", id)
	}
	return e.proposals[id], nil
}

// Proposal returns a copy of proposal id.
func (e *Engine) Proposal(id uint64) (*dao.Proposal, error) {
	p, err := e.get(id)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// Proposals returns copies of every proposal in id order.
func (e *Engine) Proposals() []*dao.Proposal {
	out := make([]*dao.Proposal, len(e.proposals))
	for i, p := range e.proposals {
		out[i] = p.Clone()
	}
	return out
}

func (e *Engine) Len() uint64 { return uint64(len(e.proposals)) }

// RequiredWeight and SignerWeight expose the policy numbers for views.
func (e *Engine) RequiredWeight(p *dao.Proposal) sdk.Amount { return e.policy.RequiredWeight(p) }
func (e *Engine) SignerWeight(p *dao.Proposal) sdk.Amount   { return e.policy.SignerWeight(p) }

// touch journals p before it is changed so rollback can put it back in place.
func (e *Engine) touch(p *dao.Proposal) {
	e.journal = append(e.journal, undo{p: p, prev: *p.Clone()})
}

func (e *Engine) mark() engineMark { return engineMark{n: len(e.proposals), j: len(e.journal)} }

// rollback drops proposals created after m and rewinds every change journaled since, newest
// first. Pointers held by callers stay valid.
func (e *Engine) rollback(m engineMark) {
	for i := len(e.journal) - 1; i >= m.j; i-- {
		*e.journal[i].p = e.journal[i].prev
	}
	e.journal = e.journal[:m.j]
	for i := m.n; i < len(e.proposals); i++ {
		e.proposals[i] = nil
	}
	e.proposals = e.proposals[:m.n]
}

// settle forgets the journal once the outermost operation committed.
func (e *Engine) settle() { e.journal = e.journal[:0] }
