package contract

import (
	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

func (o *Org) requireToken() error {
	if o.meta.Variant == dao.VariantService {
		return newError(EInvalidConfiguration, "service orgs carry no token")
	}
	return nil
}

// Purchase sells treasury tokens for a native payment at the fixed unit price and returns the
// units granted: min(requested, payment/price, treasury). The whole payment stays in the vault,
// change is not refunded.
func (o *Org) Purchase(buyer sdk.Address, requested, payment sdk.Amount) (sdk.Amount, error) {
	var granted sdk.Amount
	err := o.atomic(func() error {
		if err := o.requireToken(); err != nil {
			return err
		}
		if !buyer.IsValid() || buyer == o.meta.ID {
			return newError(EInvalidConfiguration, "invalid buyer %q", buyer)
		}
		switch o.meta.Variant {
		case dao.VariantCompany:
			if !o.registry.IsMember(buyer) && !o.settings.Enabled(dao.SettingPurchasePublic) {
				return newError(EPurchaseDisabled, "purchases are open to members only")
			}
		case dao.VariantFund:
			if !o.registry.IsWhitelisted(buyer) {
				return newError(ENotWhitelisted, "%s is not whitelisted", buyer)
			}
			if limit := sdk.Amount(o.settings.Value(dao.SettingLimitToBuy)); limit > 0 && requested > limit {
				return newErrorWithDetails(EPurchaseLimitExceeded, "request above the per purchase limit",
					map[string]string{"requested": requested.String(), "limit": limit.String()})
			}
		}
		units, err := o.ledger.Quote(requested, payment, o.meta.Price)
		if err != nil {
			return err
		}
		if err := o.vault.Deposit(payment); err != nil {
			return err
		}
		if err := o.ledger.Transfer(o.meta.ID, buyer, units); err != nil {
			return err
		}
		if o.meta.Variant == dao.VariantFund {
			o.registry.ClearWhitelist(buyer)
		}
		granted = units
		o.emitTokensBoughtEvent(buyer, units, payment)
		return nil
	})
	return granted, err
}

// Issue mints new supply into the treasury. Orgs reach it through a Mint proposal.
func (o *Org) Issue(amount sdk.Amount) error {
	return o.atomic(func() error { return o.issue(amount) })
}

func (o *Org) issue(amount sdk.Amount) error {
	if err := o.requireToken(); err != nil {
		return err
	}
	if !o.settings.Enabled(dao.SettingMintable) {
		return newError(EIssuanceDisabled, "minting is disabled")
	}
	if err := o.ledger.Mint(amount); err != nil {
		return err
	}
	o.emitTokensIssuedEvent(amount)
	return nil
}

// Redeem burns holder tokens and pays out their share of the vault: vault*amount/circulating,
// measured before the burn. In a company a member who redeems everything leaves the org.
func (o *Org) Redeem(holder sdk.Address, amount sdk.Amount) (sdk.Amount, error) {
	var payout sdk.Amount
	err := o.atomic(func() error {
		if err := o.requireToken(); err != nil {
			return err
		}
		if !o.settings.Enabled(dao.SettingBurnable) {
			return newError(ERedemptionDisabled, "burning is disabled")
		}
		if holder == o.meta.ID {
			return newError(EInvalidConfiguration, "the treasury cannot redeem")
		}
		out := o.vault.Share(amount, o.ledger.Circulating())
		if err := o.ledger.Burn(holder, amount); err != nil {
			return err
		}
		if err := o.vault.Withdraw(out); err != nil {
			return err
		}
		if o.meta.Variant == dao.VariantCompany && o.ledger.BalanceOf(holder) == 0 && o.registry.IsMember(holder) {
			if err := o.registry.Remove(holder); err != nil {
				return err
			}
			o.emitLeaveEvent(holder)
		}
		if out > 0 {
			if err := o.host.Transfer(holder, out); err != nil {
				return wrapError(EExecutionFailed, "payout failed", err)
			}
			o.emitFundsRemovedEvent(holder, out)
		}
		payout = out
		o.emitTokensRedeemedEvent(holder, amount, out)
		return nil
	})
	return payout, err
}

// Transfer moves tokens between holders.
func (o *Org) Transfer(from, to sdk.Address, amount sdk.Amount) error {
	return o.atomic(func() error {
		if err := o.requireToken(); err != nil {
			return err
		}
		if from == o.meta.ID {
			return newError(EInvalidConfiguration, "treasury tokens move through proposals")
		}
		if err := o.ledger.Transfer(from, to, amount); err != nil {
			return err
		}
		o.emitTokensTransferredEvent(from, to, amount)
		return nil
	})
}

// Deposit credits native currency to the vault without buying tokens.
func (o *Org) Deposit(from sdk.Address, amount sdk.Amount) error {
	return o.atomic(func() error {
		if amount == 0 {
			return newError(EInvalidConfiguration, "deposit amount is zero")
		}
		if err := o.vault.Deposit(amount); err != nil {
			return err
		}
		o.emitFundsAddedEvent(from, amount)
		return nil
	})
}
