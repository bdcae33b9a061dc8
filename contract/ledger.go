package contract

import (
	"math/bits"

	"okinoko_treasury/sdk"
)

// Ledger tracks token supply and balances. The org's own address is the treasury account that
// holds unsold and unredeemed supply, so sum(balances) == supply always holds.
type Ledger struct {
	treasury sdk.Address
	supply   sdk.Amount
	balances map[sdk.Address]sdk.Amount
	holders  []sdk.Address
}

// NewLedger mints the initial supply straight into the treasury account.
func NewLedger(treasury sdk.Address, supply sdk.Amount) *Ledger {
	l := &Ledger{treasury: treasury, balances: map[sdk.Address]sdk.Amount{}}
	if supply > 0 {
		l.supply = supply
		l.credit(treasury, supply)
	}
	return l
}

func (l *Ledger) BalanceOf(addr sdk.Address) sdk.Amount { return l.balances[addr] }

func (l *Ledger) TotalSupply() sdk.Amount { return l.supply }

// Treasury is the balance still held by the org itself.
func (l *Ledger) Treasury() sdk.Amount { return l.balances[l.treasury] }

// Circulating is the supply outside the treasury, the base for percentage quorums.
func (l *Ledger) Circulating() sdk.Amount { return l.supply - l.Treasury() }

// Holders lists non-zero accounts in first-credit order, treasury included.
func (l *Ledger) Holders() []sdk.Address {
	out := make([]sdk.Address, len(l.holders))
	copy(out, l.holders)
	return out
}

// Quote computes how many units a payment buys: min(requested, payment/price, treasury).
func (l *Ledger) Quote(requested, payment, price sdk.Amount) (sdk.Amount, error) {
	if price == 0 {
		return 0, newError(EInvalidConfiguration, "price is zero")
	}
	if requested == 0 {
		return 0, newError(EInvalidConfiguration, "requested amount is zero")
	}
	affordable := payment / price
	if affordable == 0 {
		return 0, newErrorWithDetails(EInsufficientPayment, "payment does not cover a single unit",
			map[string]string{"payment": payment.String(), "price": price.String()})
	}
	grant := min(requested, affordable, l.Treasury())
	if grant == 0 {
		return 0, newError(EInsufficientBalance, "treasury is empty")
	}
	return grant, nil
}

// Mint raises supply and credits the treasury.
func (l *Ledger) Mint(amount sdk.Amount) error {
	if amount == 0 {
		return newError(EInvalidConfiguration, "mint amount is zero")
	}
	if _, carry := bits.Add64(uint64(l.supply), uint64(amount), 0); carry != 0 {
		return newError(EInvalidConfiguration, "supply overflow")
	}
	l.supply += amount
	l.credit(l.treasury, amount)
	return nil
}

// Burn destroys amount from holder and lowers supply.
func (l *Ledger) Burn(holder sdk.Address, amount sdk.Amount) error {
	if err := l.checkDebit(holder, amount); err != nil {
		return err
	}
	l.debit(holder, amount)
	l.supply -= amount
	return nil
}

// Transfer moves tokens between two accounts.
func (l *Ledger) Transfer(from, to sdk.Address, amount sdk.Amount) error {
	if !to.IsValid() {
		return newError(EInvalidConfiguration, "invalid recipient %q", to)
	}
	if err := l.checkDebit(from, amount); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	l.debit(from, amount)
	l.credit(to, amount)
	return nil
}

func (l *Ledger) checkDebit(addr sdk.Address, amount sdk.Amount) error {
	if amount == 0 {
		return newError(EInvalidConfiguration, "amount is zero")
	}
	if bal := l.balances[addr]; bal < amount {
		return newErrorWithDetails(EInsufficientBalance, "balance too low",
			map[string]string{"account": addr.String(), "balance": bal.String(), "amount": amount.String()})
	}
	return nil
}

// credit never overflows: every balance is bounded by supply.
func (l *Ledger) credit(addr sdk.Address, amount sdk.Amount) {
	if _, ok := l.balances[addr]; !ok {
		l.holders = append(l.holders, addr)
	}
	l.balances[addr] += amount
}

func (l *Ledger) debit(addr sdk.Address, amount sdk.Amount) {
	l.balances[addr] -= amount
	if l.balances[addr] > 0 {
		return
	}
	delete(l.balances, addr)
	for i, h := range l.holders {
		if h == addr {
			l.holders = append(l.holders[:i], l.holders[i+1:]...)
			break
		}
	}
}

func (l *Ledger) clone() *Ledger {
	cp := &Ledger{
		treasury: l.treasury,
		supply:   l.supply,
		balances: make(map[sdk.Address]sdk.Amount, len(l.balances)),
		holders:  append([]sdk.Address(nil), l.holders...),
	}
	for k, v := range l.balances {
		cp.balances[k] = v
	}
	return cp
}
