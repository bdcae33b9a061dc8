package contract

import (
	"context"
	"fmt"

	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
	"okinoko_treasury/store"
)

// Save writes the full org state as one batch. Balances that dropped to zero are deleted.
func (o *Org) Save(ctx context.Context, st store.State) error {
	b := &store.Batch{}

	meta := o.meta
	meta.GoldenShare = o.registry.GoldenShare()
	b.Set(orgKey(kOrgMeta, o.meta.ID), dao.EncodeOrgMeta(&meta))
	b.Set(orgKey(kOrgMembers, o.meta.ID), dao.EncodeAddressList(o.registry.All()))
	b.Set(orgKey(kOrgWhitelist, o.meta.ID), dao.EncodeAddressList(o.registry.Whitelisted()))
	for _, s := range o.settings.List() {
		b.Set(settingKey(o.meta.ID, byte(s)), dao.EncodeSettingRecord(o.settings.Value(s), o.settings.Frozen(s)))
	}

	holders := o.ledger.Holders()
	b.Set(orgKey(kOrgLedger, o.meta.ID), dao.EncodeLedgerHeader(o.ledger.TotalSupply(), holders))
	live := make(map[string]bool, len(holders))
	for _, h := range holders {
		k := balanceKey(o.meta.ID, h)
		live[k] = true
		b.Set(k, dao.EncodeAmount(o.ledger.BalanceOf(h)))
	}
	stored, err := st.Keys(ctx, orgScope(kOrgBalance, o.meta.ID))
	if err != nil {
		return fmt.Errorf("list balances: %w", err)
	}
	for _, k := range stored {
		if !live[k] {
			b.Delete(k)
		}
	}
	b.Set(orgKey(kOrgVault, o.meta.ID), dao.EncodeAmount(o.vault.Balance()))

	for _, p := range o.engine.proposals {
		b.Set(proposalKey(kProposal, o.meta.ID, p.ID), dao.EncodeProposal(p))
	}
	if o.whitelist != nil {
		for _, p := range o.whitelist.proposals {
			b.Set(proposalKey(kWhitelistProposal, o.meta.ID, p.ID), dao.EncodeProposal(p))
		}
	}
	if err := st.Apply(ctx, b); err != nil {
		return fmt.Errorf("save org %s: %w", o.meta.ID, err)
	}
	return nil
}

func mustGet(ctx context.Context, st store.State, key, what string) ([]byte, error) {
	v, ok, err := st.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", what, err)
	}
	if !ok {
		return nil, fmt.Errorf("load %s: %w", what, ErrUnknownInstance)
	}
	return v, nil
}

// LoadOrg rebuilds an org saved with Save.
func LoadOrg(ctx context.Context, st store.State, id sdk.Address, host sdk.Host) (*Org, error) {
	raw, err := mustGet(ctx, st, orgKey(kOrgMeta, id), "org meta")
	if err != nil {
		return nil, err
	}
	meta, err := dao.DecodeOrgMeta(raw)
	if err != nil {
		return nil, err
	}
	o := &Org{meta: *meta, host: host}

	if raw, err = mustGet(ctx, st, orgKey(kOrgMembers, id), "members"); err != nil {
		return nil, err
	}
	members, err := dao.DecodeAddressList(raw)
	if err != nil {
		return nil, err
	}
	if o.registry, err = NewRegistry(members); err != nil {
		return nil, err
	}
	if meta.GoldenShare != "" {
		if err := o.registry.SetGoldenShare(meta.GoldenShare); err != nil {
			return nil, err
		}
	}
	if raw, err = mustGet(ctx, st, orgKey(kOrgWhitelist, id), "whitelist"); err != nil {
		return nil, err
	}
	wl, err := dao.DecodeAddressList(raw)
	if err != nil {
		return nil, err
	}
	for _, a := range wl {
		o.registry.Whitelist(a)
	}

	if o.settings, err = NewSettings(meta.Variant, nil); err != nil {
		return nil, err
	}
	for _, s := range o.settings.List() {
		raw, ok, err := st.Get(ctx, settingKey(id, byte(s)))
		if err != nil {
			return nil, fmt.Errorf("load setting %s: %w", s, err)
		}
		if !ok {
			continue
		}
		val, frozen, err := dao.DecodeSettingRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("decode setting %s: %w", s, err)
		}
		o.settings.values[s] = val
		o.settings.frozen[s] = frozen
	}

	if raw, err = mustGet(ctx, st, orgKey(kOrgLedger, id), "ledger"); err != nil {
		return nil, err
	}
	supply, holders, err := dao.DecodeLedgerHeader(raw)
	if err != nil {
		return nil, err
	}
	o.ledger = &Ledger{treasury: id, supply: supply, balances: map[sdk.Address]sdk.Amount{}}
	for _, h := range holders {
		if raw, err = mustGet(ctx, st, balanceKey(id, h), "balance"); err != nil {
			return nil, err
		}
		bal, err := dao.DecodeAmount(raw)
		if err != nil {
			return nil, err
		}
		o.ledger.credit(h, bal)
	}

	if raw, err = mustGet(ctx, st, orgKey(kOrgVault, id), "vault"); err != nil {
		return nil, err
	}
	if o.vault.balance, err = dao.DecodeAmount(raw); err != nil {
		return nil, err
	}

	switch meta.Variant {
	case dao.VariantCompany:
		o.engine = newEngine(storeGovernance, companyPolicy{o})
	case dao.VariantFund:
		o.engine = newEngine(storeGovernance, fundPolicy{o})
		o.whitelist = newEngine(storeWhitelist, whitelistPolicy{o})
	case dao.VariantService:
		o.engine = newEngine(storeGovernance, servicePolicy{o})
	}
	if o.engine.proposals, err = loadProposals(ctx, st, kProposal, id); err != nil {
		return nil, err
	}
	if o.whitelist != nil {
		if o.whitelist.proposals, err = loadProposals(ctx, st, kWhitelistProposal, id); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func loadProposals(ctx context.Context, st store.State, prefix byte, id sdk.Address) ([]*dao.Proposal, error) {
	keys, err := st.Keys(ctx, orgScope(prefix, id))
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	out := make([]*dao.Proposal, 0, len(keys))
	for i, k := range keys {
		raw, _, err := st.Get(ctx, k)
		if err != nil {
			return nil, fmt.Errorf("load proposal: %w", err)
		}
		p, err := dao.DecodeProposal(raw)
		if err != nil {
			return nil, err
		}
		if p.ID != uint64(i) {
			return nil, fmt.Errorf("proposal sequence broken at %d", i)
		}
		out = append(out, p)
	}
	return out, nil
}

// Save writes the factory registry and every org it owns.
func (f *Factory) Save(ctx context.Context, st store.State) error {
	if err := f.SaveRegistry(ctx, st); err != nil {
		return err
	}
	for _, id := range f.instances {
		if err := f.orgs[id].Save(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// SaveRegistry writes only the instance and currency lists.
func (f *Factory) SaveRegistry(ctx context.Context, st store.State) error {
	b := &store.Batch{}
	b.Set(factoryKey(kFactoryInstances), dao.EncodeAddressList(f.instances))
	cur := make([]sdk.Address, len(f.currencies))
	for i, c := range f.currencies {
		cur[i] = sdk.Address(c)
	}
	b.Set(factoryKey(kFactoryCurrencies), dao.EncodeAddressList(cur))
	if err := st.Apply(ctx, b); err != nil {
		return fmt.Errorf("save factory: %w", err)
	}
	return nil
}

// LoadFactory restores a saved factory. When nothing was saved yet it builds a fresh one
// from currencies.
func LoadFactory(ctx context.Context, st store.State, currencies []sdk.Asset, host sdk.Host) (*Factory, error) {
	raw, ok, err := st.Get(ctx, factoryKey(kFactoryCurrencies))
	if err != nil {
		return nil, fmt.Errorf("load currencies: %w", err)
	}
	if ok {
		saved, err := dao.DecodeAddressList(raw)
		if err != nil {
			return nil, err
		}
		currencies = make([]sdk.Asset, len(saved))
		for i, c := range saved {
			currencies[i] = sdk.Asset(c)
		}
	}
	f, err := NewFactory(currencies, host)
	if err != nil {
		return nil, err
	}
	raw, ok, err = st.Get(ctx, factoryKey(kFactoryInstances))
	if err != nil {
		return nil, fmt.Errorf("load instances: %w", err)
	}
	if !ok {
		return f, nil
	}
	ids, err := dao.DecodeAddressList(raw)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		o, err := LoadOrg(ctx, st, id, host)
		if err != nil {
			return nil, err
		}
		f.add(o)
	}
	return f, nil
}
