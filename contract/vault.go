package contract

import (
	"math/bits"

	"okinoko_treasury/sdk"
)

// Vault is the native-currency balance an org holds: purchase payments and deposits in,
// proposal values and redemption payouts out.
type Vault struct {
	balance sdk.Amount
}

func (v *Vault) Balance() sdk.Amount { return v.balance }

func (v *Vault) Deposit(amount sdk.Amount) error {
	sum, carry := bits.Add64(uint64(v.balance), uint64(amount), 0)
	if carry != 0 {
		return newError(EInvalidConfiguration, "vault overflow")
	}
	v.balance = sdk.Amount(sum)
	return nil
}

func (v *Vault) Withdraw(amount sdk.Amount) error {
	if amount > v.balance {
		return newErrorWithDetails(EInsufficientBalance, "vault balance too low",
			map[string]string{"vault": v.balance.String(), "amount": amount.String()})
	}
	v.balance -= amount
	return nil
}

// Share returns vault*part/whole rounded down, using a 128 bit intermediate.
func (v *Vault) Share(part, whole sdk.Amount) sdk.Amount {
	if whole == 0 || part == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(v.balance), uint64(part))
	if hi >= uint64(whole) {
		return v.balance
	}
	q, _ := bits.Div64(hi, lo, uint64(whole))
	return sdk.Amount(q)
}
