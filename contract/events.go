package contract

import (
	"fmt"

	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

// emit queues an event line. Lines reach the host log only when the outermost operation
// succeeds, so a rolled back call leaves no trace.
func (o *Org) emit(format string, args ...any) {
	o.pending = append(o.pending, fmt.Sprintf(format, args...))
}

func (o *Org) flush() {
	for _, line := range o.pending {
		o.host.Log(line)
	}
	o.pending = o.pending[:0]
}

// emitOrgCreatedEvent gives explorers a neat ping when the factory spawns an org.
func (o *Org) emitOrgCreatedEvent(creator sdk.Address) {
	o.emit("dc|id:%s|v:%s|by:%s", o.meta.ID, o.meta.Variant, creator)
}

// emitJoinedEvent writes a tiny "mj" line when a member seat is filled.
func (o *Org) emitJoinedEvent(member sdk.Address) {
	o.emit("mj|id:%s|by:%s", o.meta.ID, member)
}

// emitLeaveEvent mirrors the join ping but signals a seat freed up.
func (o *Org) emitLeaveEvent(member sdk.Address) {
	o.emit("ml|id:%s|by:%s", o.meta.ID, member)
}

func (o *Org) emitMembershipTransferredEvent(from, to sdk.Address) {
	o.emit("mt|id:%s|from:%s|to:%s", o.meta.ID, from, to)
}

// emitProposalCreatedEvent keeps observers updated with a short pc line for every new idea.
func (o *Org) emitProposalCreatedEvent(e *Engine, p *dao.Proposal) {
	o.emit("pc|id:%s|st:%s|pr:%d|by:%s|a:%s", o.meta.ID, e.tag, p.ID, p.Creator, dao.DescribeCommand(p.Command))
}

func (o *Org) emitSignedEvent(e *Engine, p *dao.Proposal, signer sdk.Address) {
	o.emit("sg|id:%s|st:%s|pr:%d|by:%s|w:%d", o.meta.ID, e.tag, p.ID, signer, e.SignerWeight(p))
}

// emitProposalStateChangedEvent is the swiss army knife log entry for any state flip.
func (o *Org) emitProposalStateChangedEvent(e *Engine, p *dao.Proposal, state dao.ProposalState) {
	o.emit("ps|id:%s|st:%s|pr:%d|s:%s|signers:%s", o.meta.ID, e.tag, p.ID, state, joinAddresses(p.Signers))
}

// emitSettingUpdatedEvent spells out value diffs so auditors can track sensitive flips.
func (o *Org) emitSettingUpdatedEvent(s dao.Setting, old, new uint64) {
	o.emit("pm|id:%s|f:%s|old:%d|new:%d", o.meta.ID, s, old, new)
}

func (o *Org) emitSettingFrozenEvent(s dao.Setting) {
	o.emit("pf|id:%s|f:%s", o.meta.ID, s)
}

func (o *Org) emitTokensBoughtEvent(buyer sdk.Address, units, paid sdk.Amount) {
	o.emit("tb|id:%s|by:%s|n:%d|paid:%d", o.meta.ID, buyer, units, paid)
}

func (o *Org) emitTokensRedeemedEvent(holder sdk.Address, units, payout sdk.Amount) {
	o.emit("tr|id:%s|by:%s|n:%d|out:%d", o.meta.ID, holder, units, payout)
}

func (o *Org) emitTokensIssuedEvent(units sdk.Amount) {
	o.emit("ti|id:%s|n:%d|supply:%d", o.meta.ID, units, o.ledger.TotalSupply())
}

func (o *Org) emitTokensTransferredEvent(from, to sdk.Address, units sdk.Amount) {
	o.emit("tt|id:%s|from:%s|to:%s|n:%d", o.meta.ID, from, to, units)
}

// emitFundsAddedEvent records native currency entering the vault.
func (o *Org) emitFundsAddedEvent(from sdk.Address, amount sdk.Amount) {
	o.emit("fa|id:%s|by:%s|am:%d|as:%s", o.meta.ID, from, amount, o.meta.Currency)
}

// emitFundsRemovedEvent records native currency leaving the vault.
func (o *Org) emitFundsRemovedEvent(to sdk.Address, amount sdk.Amount) {
	o.emit("fr|id:%s|to:%s|am:%d|as:%s", o.meta.ID, to, amount, o.meta.Currency)
}

func (o *Org) emitWhitelistedEvent(member sdk.Address) {
	o.emit("wl|id:%s|by:%s", o.meta.ID, member)
}
