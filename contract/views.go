package contract

import (
	"encoding/hex"

	"okinoko_treasury/contract/dao"
)

// View flattens the org for inspection tooling and the HTTP API.
func (o *Org) View() dao.OrgView {
	v := dao.OrgView{
		ID:          o.meta.ID.String(),
		Variant:     o.meta.Variant.String(),
		Name:        o.meta.Name,
		Symbol:      o.meta.Symbol,
		Currency:    o.meta.Currency.String(),
		Price:       uint64(o.meta.Price),
		TotalSupply: uint64(o.ledger.TotalSupply()),
		Treasury:    uint64(o.ledger.Treasury()),
		Vault:       uint64(o.vault.Balance()),
		Members:     addressStrings(o.registry.All()),
		GoldenShare: o.registry.GoldenShare().String(),
		Whitelist:   addressStrings(o.registry.Whitelisted()),
		Proposals:   o.engine.Len(),
	}
	if o.whitelist != nil {
		v.WhitelistProposals = o.whitelist.Len()
	}
	for _, s := range o.settings.List() {
		v.Settings = append(v.Settings, dao.SettingView{
			Name:   s.String(),
			Value:  o.settings.Value(s),
			Frozen: o.settings.Frozen(s),
		})
	}
	return v
}

func (o *Org) proposalView(p *dao.Proposal) dao.ProposalView {
	return dao.ProposalView{
		ID:          p.ID,
		Creator:     p.Creator.String(),
		Target:      p.Target.String(),
		Payload:     hex.EncodeToString(p.Payload),
		Action:      dao.DescribeCommand(p.Command),
		Value:       uint64(p.Value),
		Description: p.Description,
		Signers:     addressStrings(p.Signers),
		Executed:    p.Executed,
		State:       p.StateAt(o.host.Now(), o.votingDuration()).String(),
		CreatedAt:   p.CreatedAt,
		Threshold:   uint64(p.Threshold),
	}
}

// ProposalView renders governance proposal id.
func (o *Org) ProposalView(id uint64) (dao.ProposalView, error) {
	p, err := o.engine.get(id)
	if err != nil {
		return dao.ProposalView{}, err
	}
	return o.proposalView(p), nil
}

// ProposalViews renders every governance proposal in id order.
func (o *Org) ProposalViews() []dao.ProposalView {
	out := make([]dao.ProposalView, 0, o.engine.Len())
	for _, p := range o.engine.proposals {
		out = append(out, o.proposalView(p))
	}
	return out
}

// WhitelistProposalViews renders the fund whitelist store, nil elsewhere.
func (o *Org) WhitelistProposalViews() []dao.ProposalView {
	if o.whitelist == nil {
		return nil
	}
	out := make([]dao.ProposalView, 0, o.whitelist.Len())
	for _, p := range o.whitelist.proposals {
		out = append(out, o.proposalView(p))
	}
	return out
}
