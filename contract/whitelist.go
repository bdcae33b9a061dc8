package contract

import (
	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

// Whitelist grants addr one qualifying purchase. Reports false when it was already set.
func (r *Registry) Whitelist(addr sdk.Address) bool {
	if _, ok := r.whitelist[addr]; ok {
		return false
	}
	r.whitelist[addr] = struct{}{}
	r.wlOrder = append(r.wlOrder, addr)
	return true
}

// ClearWhitelist consumes the approval and reports whether it existed.
func (r *Registry) ClearWhitelist(addr sdk.Address) bool {
	if _, ok := r.whitelist[addr]; !ok {
		return false
	}
	delete(r.whitelist, addr)
	for i, a := range r.wlOrder {
		if a == addr {
			r.wlOrder = append(r.wlOrder[:i], r.wlOrder[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) IsWhitelisted(addr sdk.Address) bool {
	_, ok := r.whitelist[addr]
	return ok
}

// Whitelisted returns pending approvals in grant order.
func (r *Registry) Whitelisted() []sdk.Address {
	out := make([]sdk.Address, len(r.wlOrder))
	copy(out, r.wlOrder)
	return out
}

func (o *Org) whitelistStore() (*Engine, error) {
	if o.whitelist == nil {
		return nil, newError(EInvalidConfiguration, "%s orgs have no whitelist store", o.meta.Variant)
	}
	return o.whitelist, nil
}

// CreateWhitelistProposal lets caller ask holders for a purchase slot. threshold is the
// signer balance the candidate asks to be vouched with, between 1 and the circulating supply.
func (o *Org) CreateWhitelistProposal(caller sdk.Address, threshold sdk.Amount, description string) (uint64, error) {
	e, err := o.whitelistStore()
	if err != nil {
		return 0, err
	}
	if circ := o.ledger.Circulating(); threshold == 0 || threshold > circ {
		return 0, newErrorWithDetails(EInvalidConfiguration, "threshold out of range",
			map[string]string{"threshold": threshold.String(), "circulating": circ.String()})
	}
	cmd := dao.AddToWhitelist{Member: caller}
	return o.propose(e, caller, proposalDraft{
		Target:      o.meta.ID,
		Payload:     dao.EncodeCommand(cmd),
		Command:     cmd,
		Description: normalizeText(description),
		Threshold:   threshold,
	})
}

// SignWhitelist vouches for a candidate with the caller's balance.
func (o *Org) SignWhitelist(caller sdk.Address, id uint64) error {
	e, err := o.whitelistStore()
	if err != nil {
		return err
	}
	return o.sign(e, caller, id)
}

// ActivateWhitelist whitelists the candidate once enough balance vouched for them.
func (o *Org) ActivateWhitelist(caller sdk.Address, id uint64) error {
	e, err := o.whitelistStore()
	if err != nil {
		return err
	}
	return o.activate(e, caller, id)
}

// WhitelistProposal returns a copy of whitelist proposal id.
func (o *Org) WhitelistProposal(id uint64) (*dao.Proposal, error) {
	e, err := o.whitelistStore()
	if err != nil {
		return nil, err
	}
	return e.Proposal(id)
}

// WhitelistProposals returns copies of every whitelist proposal, nil outside funds.
func (o *Org) WhitelistProposals() []*dao.Proposal {
	if o.whitelist == nil {
		return nil
	}
	return o.whitelist.Proposals()
}
