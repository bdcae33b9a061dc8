package contract

import (
	"context"

	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
	"okinoko_treasury/store"
)

const (
	storeGovernance = "gov"
	storeWhitelist  = "wl"
)

// Org is one governance instance: registry, ledger, vault and settings gated by a proposal
// engine. An Org is single writer; callers serialize access.
type Org struct {
	meta     dao.OrgMeta
	host     sdk.Host
	registry *Registry
	ledger   *Ledger
	vault    Vault
	settings *Settings

	engine    *Engine
	whitelist *Engine // fund orgs only

	pending []string
	depth   int
}

// snapshot is everything an operation may touch. restore puts it back on failure. Proposals
// are not copied up front; the engines journal the ones that change.
type snapshot struct {
	registry *Registry
	ledger   *Ledger
	vault    Vault
	settings *Settings
	gov      engineMark
	wl       engineMark
	events   int
}

func (o *Org) snapshot() snapshot {
	s := snapshot{
		registry: o.registry.clone(),
		ledger:   o.ledger.clone(),
		vault:    o.vault,
		settings: o.settings.clone(),
		gov:      o.engine.mark(),
		events:   len(o.pending),
	}
	if o.whitelist != nil {
		s.wl = o.whitelist.mark()
	}
	return s
}

func (o *Org) restore(s snapshot) {
	o.registry = s.registry
	o.ledger = s.ledger
	o.vault = s.vault
	o.settings = s.settings
	o.engine.rollback(s.gov)
	if o.whitelist != nil {
		o.whitelist.rollback(s.wl)
	}
	o.pending = o.pending[:s.events]
}

func (o *Org) settle() {
	o.engine.settle()
	if o.whitelist != nil {
		o.whitelist.settle()
	}
	o.flush()
}

// atomic runs fn all or nothing. Nested calls (a host re-entering the org from Execute) share
// the event buffer, which is flushed once the outermost call succeeds.
func (o *Org) atomic(fn func() error) error {
	snap := o.snapshot()
	o.depth++
	err := fn()
	o.depth--
	if err != nil {
		o.restore(snap)
		return err
	}
	if o.depth == 0 {
		o.settle()
	}
	return nil
}

// Commit runs fn as one operation and writes the result to st before it takes effect. A
// failed save rolls the org back and no events are logged. A nil st only runs fn.
func (o *Org) Commit(ctx context.Context, st store.State, fn func() error) error {
	return o.atomic(func() error {
		if err := fn(); err != nil {
			return err
		}
		if st == nil || o.depth > 1 {
			return nil
		}
		return o.Save(ctx, st)
	})
}

func (o *Org) ID() sdk.Address      { return o.meta.ID }
func (o *Org) Variant() dao.Variant { return o.meta.Variant }
func (o *Org) Meta() dao.OrgMeta    { return o.meta }

// Members returns a snapshot of the member sequence.
func (o *Org) Members() []sdk.Address { return o.registry.All() }

func (o *Org) IsMember(addr sdk.Address) bool      { return o.registry.IsMember(addr) }
func (o *Org) GoldenShare() sdk.Address            { return o.registry.GoldenShare() }
func (o *Org) IsWhitelisted(addr sdk.Address) bool { return o.registry.IsWhitelisted(addr) }
func (o *Org) Whitelisted() []sdk.Address          { return o.registry.Whitelisted() }

func (o *Org) BalanceOf(addr sdk.Address) sdk.Amount { return o.ledger.BalanceOf(addr) }
func (o *Org) TotalSupply() sdk.Amount               { return o.ledger.TotalSupply() }
func (o *Org) Treasury() sdk.Amount                  { return o.ledger.Treasury() }
func (o *Org) Circulating() sdk.Amount               { return o.ledger.Circulating() }
func (o *Org) Holders() []sdk.Address                { return o.ledger.Holders() }
func (o *Org) VaultBalance() sdk.Amount              { return o.vault.Balance() }

func (o *Org) Setting(s dao.Setting) uint64 { return o.settings.Value(s) }
func (o *Org) Frozen(s dao.Setting) bool    { return o.settings.Frozen(s) }

func (o *Org) votingDuration() uint64 { return o.settings.Value(dao.SettingVotingDuration) }

// CreateProposal files a proposal in the governance store. A proposal targeting the org
// itself must carry an encoded self command; anything else is an external call run through
// the host on activation.
func (o *Org) CreateProposal(caller, target sdk.Address, payload []byte, value sdk.Amount, description string) (uint64, error) {
	d := proposalDraft{Target: target, Payload: payload, Value: value, Description: normalizeText(description)}
	if !target.IsValid() {
		return 0, newError(EInvalidConfiguration, "invalid target %q", target)
	}
	if target == o.meta.ID {
		cmd, err := dao.DecodeCommand(payload)
		if err != nil {
			return 0, wrapError(EInvalidConfiguration, "bad self command", err)
		}
		if value != 0 {
			return 0, newError(EInvalidConfiguration, "self commands carry no value")
		}
		d.Command = cmd
	}
	return o.propose(o.engine, caller, d)
}

// Propose is the typed shortcut for self commands.
func (o *Org) Propose(caller sdk.Address, cmd dao.Command, description string) (uint64, error) {
	return o.CreateProposal(caller, o.meta.ID, dao.EncodeCommand(cmd), 0, description)
}

func (o *Org) propose(e *Engine, caller sdk.Address, d proposalDraft) (uint64, error) {
	var id uint64
	err := o.atomic(func() error {
		p, err := e.create(caller, d, o.host.Now())
		if err != nil {
			return err
		}
		id = p.ID
		o.emitProposalCreatedEvent(e, p)
		return nil
	})
	return id, err
}

// Sign adds caller to the signer set of a governance proposal.
func (o *Org) Sign(caller sdk.Address, id uint64) error {
	return o.sign(o.engine, caller, id)
}

func (o *Org) sign(e *Engine, caller sdk.Address, id uint64) error {
	return o.atomic(func() error {
		p, err := e.sign(caller, id, o.host.Now(), o.votingDuration())
		if err != nil {
			return err
		}
		o.emitSignedEvent(e, p, caller)
		return nil
	})
}

// Activate executes a governance proposal once its quorum holds.
func (o *Org) Activate(caller sdk.Address, id uint64) error {
	return o.activate(o.engine, caller, id)
}

func (o *Org) activate(e *Engine, caller sdk.Address, id uint64) error {
	return o.atomic(func() error {
		_, err := e.activate(caller, id, o.host.Now(), o.votingDuration(), o.runner(e))
		return err
	})
}

// Proposal returns a copy of governance proposal id.
func (o *Org) Proposal(id uint64) (*dao.Proposal, error) { return o.engine.Proposal(id) }

// Proposals returns copies of every governance proposal.
func (o *Org) Proposals() []*dao.Proposal { return o.engine.Proposals() }

// ProposalState derives the lifecycle state of governance proposal id at the host's time.
func (o *Org) ProposalState(id uint64) (dao.ProposalState, error) {
	p, err := o.engine.get(id)
	if err != nil {
		return 0, err
	}
	return p.StateAt(o.host.Now(), o.votingDuration()), nil
}

// Quorum reports whether governance proposal id could be activated right now.
func (o *Org) Quorum(id uint64) error {
	p, err := o.engine.get(id)
	if err != nil {
		return err
	}
	return o.engine.CheckQuorum(p)
}
