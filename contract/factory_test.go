package contract_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okinoko_treasury/contract"
	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

func TestNewFactory(t *testing.T) {
	host := sdk.NewMockHost(defaultTimestamp)

	_, err := contract.NewFactory(nil, host)
	requireCode(t, err, contract.ErrInvalidConfiguration)
	_, err = contract.NewFactory([]sdk.Asset{"native", "  "}, host)
	requireCode(t, err, contract.ErrInvalidConfiguration)

	f, err := contract.NewFactory([]sdk.Asset{"native", " wbnb ", "native"}, host)
	require.NoError(t, err)
	assert.Equal(t, []sdk.Asset{"native", "wbnb"}, f.Currencies())
	assert.True(t, f.Accepts("wbnb"))
	assert.False(t, f.Accepts("usdc"))

	snap := f.Currencies()
	snap[0] = "mutated"
	assert.Equal(t, sdk.Asset("native"), f.Currencies()[0])
}

func TestCreateInstanceValidation(t *testing.T) {
	f, _ := setup(t)

	cases := []struct {
		name   string
		mutate func(a *contract.InstanceArgs)
	}{
		{"unaccepted currency", func(a *contract.InstanceArgs) { a.Currency = "usdc" }},
		{"unknown variant", func(a *contract.InstanceArgs) { a.Variant = dao.Variant(9) }},
		{"invalid creator", func(a *contract.InstanceArgs) { a.Creator = "" }},
		{"blank name", func(a *contract.InstanceArgs) { a.Name = "   " }},
		{"long name", func(a *contract.InstanceArgs) { a.Name = strings.Repeat("n", contract.MaxNameLength+1) }},
		{"blank symbol", func(a *contract.InstanceArgs) { a.Symbol = "" }},
		{"symbol with space", func(a *contract.InstanceArgs) { a.Symbol = "AC ME" }},
		{"zero supply", func(a *contract.InstanceArgs) { a.Supply = 0 }},
		{"zero price", func(a *contract.InstanceArgs) { a.Price = 0 }},
		{"duplicate seed", func(a *contract.InstanceArgs) { a.Members = []sdk.Address{alice, alice} }},
		{"bad seed", func(a *contract.InstanceArgs) { a.Members = []sdk.Address{alice, "bad|member"} }},
		{"percent above 100", func(a *contract.InstanceArgs) { a.PercentToVote = 101 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := companyArgs(alice, bob)
			tc.mutate(&args)
			_, err := f.CreateInstance(args)
			requireCode(t, err, contract.ErrInvalidConfiguration)
		})
	}
	assert.Empty(t, f.ListInstances())
}

func TestCreateServiceValidation(t *testing.T) {
	f, _ := setup(t)

	args := serviceArgs(gold, alice, bob)
	_, err := f.CreateInstance(args)
	requireCode(t, err, contract.ErrInvalidConfiguration)

	args = serviceArgs("", alice, bob)
	_, err = f.CreateInstance(args)
	requireCode(t, err, contract.ErrInvalidConfiguration)

	args = serviceArgs(alice, alice)
	args.Members = nil
	_, err = f.CreateInstance(args)
	requireCode(t, err, contract.ErrInvalidConfiguration)

	o := create(t, f, serviceArgs(alice, alice, bob))
	assert.Equal(t, dao.VariantService, o.Variant())
	assert.Equal(t, sdk.Amount(0), o.TotalSupply())
	assert.Empty(t, o.Meta().Symbol)
}

func TestCreateInstance(t *testing.T) {
	f, host := setup(t)

	args := companyArgs(alice)
	args.Members = nil
	args.Name = "  Acme  "
	args.Currency = "wbnb"
	id, err := f.CreateInstance(args)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id.String(), sdk.OrgPrefix))
	assert.Equal(t, sdk.AddressDomainOrg, id.Domain())

	o, err := f.Instance(id)
	require.NoError(t, err)
	assert.Equal(t, []sdk.Address{alice}, o.Members(), "an empty seed seats the creator")
	assert.Equal(t, "Acme", o.Meta().Name)
	assert.Equal(t, sdk.Asset("wbnb"), o.Meta().Currency)
	assert.Equal(t, defaultTimestamp, o.Meta().CreatedAt)
	assert.Equal(t, sdk.Amount(100000), o.Treasury())
	assert.Equal(t, []string{
		"dc|id:" + id.String() + "|v:company|by:hive:alice",
		"mj|id:" + id.String() + "|by:hive:alice",
	}, host.Logs)

	second := create(t, f, fundArgs(bob))
	assert.NotEqual(t, id, second.ID())
	assert.Equal(t, []sdk.Address{id, second.ID()}, f.ListInstances())

	list := f.ListInstances()
	list[0] = "org:other"
	assert.Equal(t, id, f.ListInstances()[0])
}

func TestUnknownInstance(t *testing.T) {
	f, _ := setup(t)
	_, err := f.Instance("org:missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, contract.ErrUnknownInstance))
}

func TestNewOrgRequiresOrgIdentity(t *testing.T) {
	host := sdk.NewMockHost(defaultTimestamp)
	_, err := contract.NewOrg("hive:acme", companyArgs(alice), host)
	requireCode(t, err, contract.ErrInvalidConfiguration)

	o, err := contract.NewOrg(sdk.OrgAddress("acme"), companyArgs(alice), host)
	require.NoError(t, err)
	assert.Equal(t, sdk.Address("org:acme"), o.ID())
}
