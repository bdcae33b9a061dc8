package contract

import (
	"math/bits"

	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

// Policy parameterizes an Engine: who may propose and sign, how much signer weight a proposal
// needs and which self commands the store will run.
type Policy interface {
	MayPropose(caller sdk.Address) error
	MaySign(caller sdk.Address) error
	RequiredWeight(p *dao.Proposal) sdk.Amount
	SignerWeight(p *dao.Proposal) sdk.Amount
	// MandatorySigner must be in the signer set regardless of weight. Empty means none.
	MandatorySigner() sdk.Address
	Allows(op dao.Opcode) bool
}

func opSet(ops ...dao.Opcode) map[dao.Opcode]bool {
	m := make(map[dao.Opcode]bool, len(ops))
	for _, op := range ops {
		m[op] = true
	}
	return m
}

var (
	companyOps = opSet(dao.OpAddMember, dao.OpRemoveMember, dao.OpTransferMembership,
		dao.OpSetSetting, dao.OpFreezeSetting, dao.OpMint, dao.OpTransferTokens)
	fundOps      = opSet(dao.OpSetSetting, dao.OpFreezeSetting, dao.OpMint, dao.OpTransferTokens)
	serviceOps   = opSet(dao.OpAddMember, dao.OpRemoveMember, dao.OpTransferMembership)
	whitelistOps = opSet(dao.OpAddToWhitelist)
)

// memberRights is the rights test shared by company and service orgs.
func memberRights(o *Org, caller sdk.Address) error {
	if !o.registry.IsMember(caller) {
		return newError(ENotAMember, "%s is not a member", caller)
	}
	return nil
}

// holderRights lets any non-zero balance holder in, except the org's own treasury account.
func holderRights(o *Org, caller sdk.Address) error {
	if caller == o.meta.ID || o.ledger.BalanceOf(caller) == 0 {
		return newError(ENotAMember, "%s holds no %s", caller, o.meta.Symbol)
	}
	return nil
}

// memberSigners counts signers that are still members when the weight is read.
func memberSigners(o *Org, p *dao.Proposal) sdk.Amount {
	var n sdk.Amount
	for _, s := range p.Signers {
		if o.registry.IsMember(s) {
			n++
		}
	}
	return n
}

// balanceSigners sums the current balances of the signers.
func balanceSigners(o *Org, p *dao.Proposal) sdk.Amount {
	var w sdk.Amount
	for _, s := range p.Signers {
		if s == o.meta.ID {
			continue
		}
		w += o.ledger.BalanceOf(s)
	}
	return w
}

// companyPolicy: members sign, unanimity or half of the seats with half_to_vote.
type companyPolicy struct{ o *Org }

func (c companyPolicy) MayPropose(caller sdk.Address) error { return memberRights(c.o, caller) }
func (c companyPolicy) MaySign(caller sdk.Address) error    { return memberRights(c.o, caller) }
func (c companyPolicy) MandatorySigner() sdk.Address        { return "" }
func (c companyPolicy) Allows(op dao.Opcode) bool           { return companyOps[op] }

func (c companyPolicy) RequiredWeight(*dao.Proposal) sdk.Amount {
	n := sdk.Amount(c.o.registry.Count())
	if c.o.settings.Enabled(dao.SettingHalfToVote) {
		return (n + 1) / 2
	}
	return n
}

func (c companyPolicy) SignerWeight(p *dao.Proposal) sdk.Amount { return memberSigners(c.o, p) }

// fundPolicy: holders sign with their balance, quorum is a percentage of circulating supply.
type fundPolicy struct{ o *Org }

func (f fundPolicy) MayPropose(caller sdk.Address) error { return holderRights(f.o, caller) }
func (f fundPolicy) MaySign(caller sdk.Address) error    { return holderRights(f.o, caller) }
func (f fundPolicy) MandatorySigner() sdk.Address        { return "" }
func (f fundPolicy) Allows(op dao.Opcode) bool           { return fundOps[op] }

func (f fundPolicy) RequiredWeight(*dao.Proposal) sdk.Amount {
	return percentCeil(f.o.settings.Value(dao.SettingPercentToVote), f.o.ledger.Circulating())
}

func (f fundPolicy) SignerWeight(p *dao.Proposal) sdk.Amount { return balanceSigners(f.o, p) }

// servicePolicy: unanimity plus the golden share.
type servicePolicy struct{ o *Org }

func (s servicePolicy) MayPropose(caller sdk.Address) error { return memberRights(s.o, caller) }
func (s servicePolicy) MaySign(caller sdk.Address) error    { return memberRights(s.o, caller) }
func (s servicePolicy) MandatorySigner() sdk.Address        { return s.o.registry.GoldenShare() }
func (s servicePolicy) Allows(op dao.Opcode) bool           { return serviceOps[op] }

func (s servicePolicy) RequiredWeight(*dao.Proposal) sdk.Amount {
	return sdk.Amount(s.o.registry.Count())
}

func (s servicePolicy) SignerWeight(p *dao.Proposal) sdk.Amount { return memberSigners(s.o, p) }

// whitelistPolicy runs the fund's second store: a candidate asks for a purchase slot and holders
// vouch with their balance until the threshold the candidate named is reached.
type whitelistPolicy struct{ o *Org }

func (w whitelistPolicy) MayPropose(caller sdk.Address) error {
	if !caller.IsValid() || caller == w.o.meta.ID {
		return newError(EInvalidConfiguration, "invalid candidate %q", caller)
	}
	if w.o.registry.IsWhitelisted(caller) {
		return newError(EDuplicateMember, "%s is already whitelisted", caller)
	}
	return nil
}

func (w whitelistPolicy) MaySign(caller sdk.Address) error { return holderRights(w.o, caller) }
func (w whitelistPolicy) MandatorySigner() sdk.Address     { return "" }
func (w whitelistPolicy) Allows(op dao.Opcode) bool        { return whitelistOps[op] }

func (w whitelistPolicy) RequiredWeight(p *dao.Proposal) sdk.Amount { return p.Threshold }

func (w whitelistPolicy) SignerWeight(p *dao.Proposal) sdk.Amount { return balanceSigners(w.o, p) }

// percentCeil returns ceil(pct*base/100) without overflowing.
func percentCeil(pct uint64, base sdk.Amount) sdk.Amount {
	if pct == 0 || base == 0 {
		return 0
	}
	hi, lo := bits.Mul64(pct, uint64(base))
	lo, carry := bits.Add64(lo, 99, 0)
	hi += carry
	q, _ := bits.Div64(hi, lo, 100)
	return sdk.Amount(q)
}
