package dao

import (
	"strings"

	"okinoko_treasury/sdk"
)

// Variant selects which quorum policy and which self commands an org accepts.
type Variant uint8

const (
	VariantUnspecified Variant = 0
	VariantCompany     Variant = 1
	VariantFund        Variant = 2
	VariantService     Variant = 3
)

// String prints the variant as lower-case text for events and views.
// Example payload: dao.VariantFund.String()
func (v Variant) String() string {
	switch v {
	case VariantCompany:
		return "company"
	case VariantFund:
		return "fund"
	case VariantService:
		return "service"
	default:
		return "unspecified"
	}
}

// ParseVariant accepts the String() form, case-insensitive.
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "company":
		return VariantCompany, true
	case "fund":
		return VariantFund, true
	case "service":
		return VariantService, true
	}
	return VariantUnspecified, false
}

// ProposalState is derived from the executed flag and the voting window, it is never stored.
type ProposalState uint8

const (
	ProposalOpen     ProposalState = 1
	ProposalExecuted ProposalState = 2
	ProposalExpired  ProposalState = 3
)

// String prints the proposal state as lower-case text for events and logs.
// Example payload: dao.ProposalExecuted.String()
func (ps ProposalState) String() string {
	switch ps {
	case ProposalOpen:
		return "open"
	case ProposalExecuted:
		return "executed"
	case ProposalExpired:
		return "expired"
	default:
		return "unspecified"
	}
}

// Setting names a governable flag or parameter. Every setting has a frozen companion.
type Setting uint8

const (
	SettingUnspecified    Setting = 0
	SettingPurchasePublic Setting = 1
	SettingMintable       Setting = 2
	SettingBurnable       Setting = 3
	SettingHalfToVote     Setting = 4
	SettingVotingDuration Setting = 5
	SettingPercentToVote  Setting = 6
	SettingLimitToBuy     Setting = 7
)

var settingNames = map[Setting]string{
	SettingPurchasePublic: "purchase_public",
	SettingMintable:       "mintable",
	SettingBurnable:       "burnable",
	SettingHalfToVote:     "half_to_vote",
	SettingVotingDuration: "voting_duration",
	SettingPercentToVote:  "percent_to_vote",
	SettingLimitToBuy:     "limit_to_buy",
}

// AllSettings lists settings in their stable storage order.
var AllSettings = []Setting{
	SettingPurchasePublic,
	SettingMintable,
	SettingBurnable,
	SettingHalfToVote,
	SettingVotingDuration,
	SettingPercentToVote,
	SettingLimitToBuy,
}

func (s Setting) String() string {
	if name, ok := settingNames[s]; ok {
		return name
	}
	return "unspecified"
}

// IsFlag reports whether the setting is boolean (stored as 0/1).
func (s Setting) IsFlag() bool {
	switch s {
	case SettingPurchasePublic, SettingMintable, SettingBurnable, SettingHalfToVote:
		return true
	}
	return false
}

// ParseSetting maps the snake_case name back to a Setting.
func ParseSetting(name string) (Setting, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range settingNames {
		if n == name {
			return s, true
		}
	}
	return SettingUnspecified, false
}

// Proposal is one entry of an append-only proposal store.
type Proposal struct {
	ID          uint64
	Creator     sdk.Address
	Target      sdk.Address
	Payload     []byte
	Command     Command // decoded self command, nil for external calls
	Value       sdk.Amount
	Description string
	Signers     []sdk.Address
	Executed    bool
	CreatedAt   int64
	Threshold   sdk.Amount // caller supplied signer weight, whitelist store only
}

// HasSigned reports whether addr is already in the signer set.
func (p *Proposal) HasSigned(addr sdk.Address) bool {
	for _, s := range p.Signers {
		if s == addr {
			return true
		}
	}
	return false
}

// StateAt derives the lifecycle state. duration 0 disables expiry.
func (p *Proposal) StateAt(now int64, duration uint64) ProposalState {
	if p.Executed {
		return ProposalExecuted
	}
	if duration > 0 && now-p.CreatedAt > int64(duration) {
		return ProposalExpired
	}
	return ProposalOpen
}

// Clone deep-copies the proposal so snapshots never alias live state.
func (p *Proposal) Clone() *Proposal {
	cp := *p
	cp.Payload = append([]byte(nil), p.Payload...)
	cp.Signers = append([]sdk.Address(nil), p.Signers...)
	return &cp
}

// OrgMeta is the immutable construction record of an org.
type OrgMeta struct {
	Variant     Variant
	ID          sdk.Address
	Name        string
	Symbol      string
	Currency    sdk.Asset
	Price       sdk.Amount
	GoldenShare sdk.Address
	CreatedAt   int64
}
