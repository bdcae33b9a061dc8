package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"okinoko_treasury/contract"
	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

const (
	alice = sdk.Address("hive:alice")
	bob   = sdk.Address("hive:bob")
	carol = sdk.Address("hive:carol")
	dave  = sdk.Address("hive:dave")
	gold  = sdk.Address("hive:gold")

	currency         = sdk.Asset("native")
	defaultTimestamp = int64(1_756_857_600) // 2025-09-03T00:00:00Z
)

// centi is 0.01 native units in base units.
var centi = mustAmount("0.01")

func mustAmount(s string) sdk.Amount {
	a, err := sdk.ParseAmount(s, sdk.NativeDecimals)
	if err != nil {
		panic(err)
	}
	return a
}

// setup builds a factory over a fresh mock host.
func setup(t *testing.T) (*contract.Factory, *sdk.MockHost) {
	t.Helper()
	host := sdk.NewMockHost(defaultTimestamp)
	f, err := contract.NewFactory([]sdk.Asset{currency, "wbnb"}, host)
	require.NoError(t, err)
	return f, host
}

func companyArgs(members ...sdk.Address) contract.InstanceArgs {
	return contract.InstanceArgs{
		Variant:  dao.VariantCompany,
		Creator:  members[0],
		Name:     "Acme",
		Symbol:   "ACME",
		Currency: currency,
		Members:  members,
		Supply:   100000,
		Price:    centi,
	}
}

func fundArgs(creator sdk.Address) contract.InstanceArgs {
	return contract.InstanceArgs{
		Variant:       dao.VariantFund,
		Creator:       creator,
		Name:          "Seed Fund",
		Symbol:        "SEED",
		Currency:      currency,
		Supply:        1000,
		Price:         1,
		PercentToVote: 50,
	}
}

func serviceArgs(golden sdk.Address, members ...sdk.Address) contract.InstanceArgs {
	return contract.InstanceArgs{
		Variant:     dao.VariantService,
		Creator:     members[0],
		Name:        "Ops",
		Currency:    currency,
		Members:     members,
		GoldenShare: golden,
	}
}

func create(t *testing.T, f *contract.Factory, args contract.InstanceArgs) *contract.Org {
	t.Helper()
	id, err := f.CreateInstance(args)
	require.NoError(t, err)
	o, err := f.Instance(id)
	require.NoError(t, err)
	return o
}

// passSelf files a self command, has every signer sign and activates it.
func passSelf(t *testing.T, o *contract.Org, cmd dao.Command, proposer sdk.Address, signers ...sdk.Address) uint64 {
	t.Helper()
	id, err := o.Propose(proposer, cmd, dao.DescribeCommand(cmd))
	require.NoError(t, err)
	for _, s := range signers {
		require.NoError(t, o.Sign(s, id))
	}
	require.NoError(t, o.Activate(proposer, id))
	return id
}

// sumBalances adds up every holder, the ledger invariant says it equals supply.
func sumBalances(o *contract.Org) sdk.Amount {
	var sum sdk.Amount
	for _, h := range o.Holders() {
		sum += o.BalanceOf(h)
	}
	return sum
}

func requireCode(t *testing.T, err error, sentinel *contract.Error) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, sentinel, "got %v", err)
}
