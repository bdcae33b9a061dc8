package contract

import (
	"okinoko_treasury/contract/dao"
)

// runner wraps run with the executed event of the store the proposal belongs to.
func (o *Org) runner(e *Engine) func(*dao.Proposal) error {
	return func(p *dao.Proposal) error {
		if err := o.run(p); err != nil {
			return err
		}
		o.emitProposalStateChangedEvent(e, p, dao.ProposalExecuted)
		return nil
	}
}

// run performs the action of a proposal whose Executed flag is already set.
func (o *Org) run(p *dao.Proposal) error {
	if p.Command != nil {
		return o.apply(p.Command)
	}
	if p.Value > 0 {
		if err := o.vault.Withdraw(p.Value); err != nil {
			return err
		}
		o.emitFundsRemovedEvent(p.Target, p.Value)
	}
	// false is a reverted call: the host applied nothing, so the attempt is undone with the
	// rest of the operation and the id counts as never executed.
	if !o.host.Execute(p.Target, p.Payload, p.Value) {
		return newErrorWithDetails(EExecutionFailed, "external call reverted",
			map[string]string{"id": u64(p.ID), "target": p.Target.String()})
	}
	return nil
}

// apply runs a self command against the org under the same flag guards as direct calls.
func (o *Org) apply(cmd dao.Command) error {
	switch c := cmd.(type) {
	case dao.AddMember:
		if err := o.registry.Add(c.Member); err != nil {
			return err
		}
		o.emitJoinedEvent(c.Member)
	case dao.RemoveMember:
		if err := o.registry.Remove(c.Member); err != nil {
			return err
		}
		o.emitLeaveEvent(c.Member)
	case dao.TransferMembership:
		if err := o.registry.TransferMembership(c.From, c.To); err != nil {
			return err
		}
		o.emitMembershipTransferredEvent(c.From, c.To)
	case dao.SetSetting:
		old := o.settings.Value(c.Setting)
		if err := o.settings.Set(c.Setting, c.Value); err != nil {
			return err
		}
		o.emitSettingUpdatedEvent(c.Setting, old, c.Value)
	case dao.FreezeSetting:
		if err := o.settings.Freeze(c.Setting); err != nil {
			return err
		}
		o.emitSettingFrozenEvent(c.Setting)
	case dao.Mint:
		return o.issue(c.Amount)
	case dao.TransferTokens:
		if err := o.ledger.Transfer(o.meta.ID, c.To, c.Amount); err != nil {
			return err
		}
		o.emitTokensTransferredEvent(o.meta.ID, c.To, c.Amount)
	case dao.AddToWhitelist:
		if !o.registry.Whitelist(c.Member) {
			return newError(EDuplicateMember, "%s is already whitelisted", c.Member)
		}
		o.emitWhitelistedEvent(c.Member)
	default:
		return newError(EInvalidConfiguration, "unsupported command %T", cmd)
	}
	return nil
}
