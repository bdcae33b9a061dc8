package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

// ErrUnknownInstance is returned when an identity is not in the factory registry.
var ErrUnknownInstance = errors.New("unknown instance")

const (
	MaxNameLength   = 64
	MaxSymbolLength = 12
)

// InstanceArgs are the construction parameters of an org. Fields a variant does not use
// are ignored.
type InstanceArgs struct {
	Variant  dao.Variant
	Creator  sdk.Address
	Name     string
	Symbol   string
	Currency sdk.Asset
	// Members seeds the registry (company, service) or the purchase whitelist (fund).
	Members     []sdk.Address
	GoldenShare sdk.Address
	Supply      sdk.Amount
	Price       sdk.Amount

	PurchasePublic bool
	Mintable       bool
	Burnable       bool
	HalfToVote     bool
	PercentToVote  uint64
	LimitToBuy     sdk.Amount
	VotingDuration uint64
}

func flag(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func (a InstanceArgs) settings() map[dao.Setting]uint64 {
	m := map[dao.Setting]uint64{dao.SettingVotingDuration: a.VotingDuration}
	switch a.Variant {
	case dao.VariantCompany:
		m[dao.SettingPurchasePublic] = flag(a.PurchasePublic)
		m[dao.SettingMintable] = flag(a.Mintable)
		m[dao.SettingBurnable] = flag(a.Burnable)
		m[dao.SettingHalfToVote] = flag(a.HalfToVote)
	case dao.VariantFund:
		m[dao.SettingMintable] = flag(a.Mintable)
		m[dao.SettingBurnable] = flag(a.Burnable)
		m[dao.SettingPercentToVote] = a.PercentToVote
		m[dao.SettingLimitToBuy] = uint64(a.LimitToBuy)
	}
	return m
}

func (a InstanceArgs) validate() error {
	invalid := func(format string, args ...any) error {
		return newError(EInvalidConfiguration, format, args...)
	}
	switch a.Variant {
	case dao.VariantCompany, dao.VariantFund, dao.VariantService:
	default:
		return invalid("unknown variant %d", a.Variant)
	}
	if !a.Creator.IsValid() {
		return invalid("invalid creator %q", a.Creator)
	}
	name := normalizeText(a.Name)
	if name == "" || len(name) > MaxNameLength {
		return invalid("name must be 1..%d characters", MaxNameLength)
	}
	if a.PercentToVote > 100 {
		return invalid("percent_to_vote %d above 100", a.PercentToVote)
	}
	if a.Variant == dao.VariantService {
		if len(a.Members) == 0 {
			return invalid("service orgs need members")
		}
		if a.GoldenShare == "" {
			return invalid("service orgs need a golden share")
		}
		return nil
	}
	symbol := normalizeText(a.Symbol)
	if symbol == "" || len(symbol) > MaxSymbolLength || strings.ContainsAny(symbol, " |") {
		return invalid("symbol must be 1..%d characters without spaces", MaxSymbolLength)
	}
	if a.Supply == 0 {
		return invalid("initial supply is zero")
	}
	if a.Price == 0 {
		return invalid("price is zero")
	}
	return nil
}

// NewOrg builds an org under id. Currency acceptance is the factory's concern.
func NewOrg(id sdk.Address, args InstanceArgs, host sdk.Host) (*Org, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}
	if id.Domain() != sdk.AddressDomainOrg || !id.IsValid() {
		return nil, newError(EInvalidConfiguration, "invalid org id %q", id)
	}
	o := &Org{
		meta: dao.OrgMeta{
			Variant:   args.Variant,
			ID:        id,
			Name:      normalizeText(args.Name),
			Symbol:    normalizeText(args.Symbol),
			Currency:  args.Currency,
			Price:     args.Price,
			CreatedAt: host.Now(),
		},
		host: host,
	}
	settings, err := NewSettings(args.Variant, args.settings())
	if err != nil {
		return nil, err
	}
	o.settings = settings

	seed := args.Members
	if args.Variant == dao.VariantFund {
		seed = nil
	} else if len(seed) == 0 {
		seed = []sdk.Address{args.Creator}
	}
	if o.registry, err = NewRegistry(seed); err != nil {
		return nil, wrapError(EInvalidConfiguration, "bad member seed", err)
	}

	switch args.Variant {
	case dao.VariantCompany:
		o.ledger = NewLedger(id, args.Supply)
		o.engine = newEngine(storeGovernance, companyPolicy{o})
	case dao.VariantFund:
		o.ledger = NewLedger(id, args.Supply)
		o.engine = newEngine(storeGovernance, fundPolicy{o})
		o.whitelist = newEngine(storeWhitelist, whitelistPolicy{o})
		o.registry.Whitelist(args.Creator)
		for _, m := range args.Members {
			if !m.IsValid() || m == id {
				return nil, newError(EInvalidConfiguration, "invalid whitelist entry %q", m)
			}
			o.registry.Whitelist(m)
		}
	case dao.VariantService:
		o.meta.Price = 0
		o.meta.Symbol = ""
		o.ledger = NewLedger(id, 0)
		o.engine = newEngine(storeGovernance, servicePolicy{o})
		if err := o.registry.SetGoldenShare(args.GoldenShare); err != nil {
			return nil, err
		}
		o.meta.GoldenShare = args.GoldenShare
	}

	err = o.atomic(func() error {
		o.emitOrgCreatedEvent(args.Creator)
		for _, m := range o.registry.All() {
			o.emitJoinedEvent(m)
		}
		for _, m := range o.registry.Whitelisted() {
			o.emitWhitelistedEvent(m)
		}
		return nil
	})
	return o, err
}

// Factory spawns orgs and keeps the append-only instance list. The accepted currency list is
// fixed when the factory is built and read only afterwards.
type Factory struct {
	host       sdk.Host
	currencies []sdk.Asset
	accepted   map[sdk.Asset]bool
	instances  []sdk.Address
	orgs       map[sdk.Address]*Org
	newID      func() string
}

// NewFactory fixes the accepted currency list. An empty list or a blank entry is rejected.
func NewFactory(currencies []sdk.Asset, host sdk.Host) (*Factory, error) {
	if len(currencies) == 0 {
		return nil, newError(EInvalidConfiguration, "accepted currency list is empty")
	}
	f := &Factory{
		host:     host,
		accepted: make(map[sdk.Asset]bool, len(currencies)),
		orgs:     map[sdk.Address]*Org{},
		newID:    uuid.NewString,
	}
	for _, c := range currencies {
		c = sdk.Asset(strings.TrimSpace(c.String()))
		if c == "" {
			return nil, newError(EInvalidConfiguration, "blank currency")
		}
		if f.accepted[c] {
			continue
		}
		f.accepted[c] = true
		f.currencies = append(f.currencies, c)
	}
	return f, nil
}

// CreateInstance validates args, builds the org and appends its identity to the registry.
func (f *Factory) CreateInstance(args InstanceArgs) (sdk.Address, error) {
	if !f.accepted[args.Currency] {
		return "", newErrorWithDetails(EInvalidConfiguration, "currency not accepted",
			map[string]string{"currency": args.Currency.String()})
	}
	id := sdk.OrgAddress(f.newID())
	o, err := NewOrg(id, args, f.host)
	if err != nil {
		return "", err
	}
	f.add(o)
	return id, nil
}

func (f *Factory) add(o *Org) {
	f.instances = append(f.instances, o.meta.ID)
	f.orgs[o.meta.ID] = o
}

// ListInstances returns a snapshot of every org identity in creation order.
func (f *Factory) ListInstances() []sdk.Address {
	out := make([]sdk.Address, len(f.instances))
	copy(out, f.instances)
	return out
}

// Instance looks an org up by identity.
func (f *Factory) Instance(id sdk.Address) (*Org, error) {
	o, ok := f.orgs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstance, id)
	}
	return o, nil
}

// Currencies returns a snapshot of the accepted currency list.
func (f *Factory) Currencies() []sdk.Asset {
	out := make([]sdk.Asset, len(f.currencies))
	copy(out, f.currencies)
	return out
}

// Accepts reports whether c is on the accepted list.
func (f *Factory) Accepts(c sdk.Asset) bool { return f.accepted[c] }

// Forget backs out the most recent CreateInstance, used when its save failed. The instance
// list stays append-only for everything older, so any other id is refused.
func (f *Factory) Forget(id sdk.Address) bool {
	n := len(f.instances)
	if n == 0 || f.instances[n-1] != id {
		return false
	}
	f.instances = f.instances[:n-1]
	delete(f.orgs, id)
	return true
}
