package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okinoko_treasury/contract"
	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

// TestServiceGoldenShare needs every member and the golden share in particular.
func TestServiceGoldenShare(t *testing.T) {
	f, _ := setup(t)
	o := create(t, f, serviceArgs(gold, alice, bob, gold))
	assert.Equal(t, gold, o.GoldenShare())

	id, err := o.Propose(alice, dao.AddMember{Member: carol}, "hire carol")
	require.NoError(t, err)
	require.NoError(t, o.Sign(alice, id))
	require.NoError(t, o.Sign(bob, id))

	err = o.Activate(alice, id)
	requireCode(t, err, contract.ErrGoldenShareRequired)
	assert.Equal(t, contract.ClassAuthorization, contract.GetClass(err))
	state, err := o.ProposalState(id)
	require.NoError(t, err)
	assert.Equal(t, dao.ProposalOpen, state)

	require.NoError(t, o.Sign(gold, id))
	require.NoError(t, o.Activate(alice, id))
	assert.True(t, o.IsMember(carol))
}

func TestServiceUnanimity(t *testing.T) {
	f, _ := setup(t)
	o := create(t, f, serviceArgs(gold, alice, bob, gold))

	id, err := o.Propose(alice, dao.RemoveMember{Member: bob}, "")
	require.NoError(t, err)
	require.NoError(t, o.Sign(gold, id))
	require.NoError(t, o.Sign(alice, id))
	requireCode(t, o.Activate(alice, id), contract.ErrQuorumNotMet)
}

func TestServiceGoldenShareStays(t *testing.T) {
	f, _ := setup(t)
	o := create(t, f, serviceArgs(gold, alice, gold))

	id, err := o.Propose(alice, dao.RemoveMember{Member: gold}, "")
	require.NoError(t, err)
	require.NoError(t, o.Sign(alice, id))
	require.NoError(t, o.Sign(gold, id))
	requireCode(t, o.Activate(alice, id), contract.ErrGoldenShareRequired)
	assert.True(t, o.IsMember(gold))

	p, err := o.Proposal(id)
	require.NoError(t, err)
	assert.False(t, p.Executed, "a failed action leaves the proposal open")
}

func TestServiceTransferGoldenShare(t *testing.T) {
	f, _ := setup(t)
	o := create(t, f, serviceArgs(gold, alice, gold))

	passSelf(t, o, dao.TransferMembership{From: gold, To: dave}, alice, alice, gold)
	assert.Equal(t, dave, o.GoldenShare())
	assert.Equal(t, []sdk.Address{alice, dave}, o.Members())

	id, err := o.Propose(alice, dao.AddMember{Member: bob}, "")
	require.NoError(t, err)
	require.NoError(t, o.Sign(alice, id))
	requireCode(t, o.Sign(gold, id), contract.ErrNotAMember)
	requireCode(t, o.Activate(alice, id), contract.ErrGoldenShareRequired)
	require.NoError(t, o.Sign(dave, id))
	require.NoError(t, o.Activate(alice, id))
}

func TestServiceHasNoToken(t *testing.T) {
	f, _ := setup(t)
	o := create(t, f, serviceArgs(gold, alice, gold))

	_, err := o.Purchase(alice, 1, 1)
	requireCode(t, err, contract.ErrInvalidConfiguration)
	_, err = o.Redeem(alice, 1)
	requireCode(t, err, contract.ErrInvalidConfiguration)
	requireCode(t, o.Issue(1), contract.ErrInvalidConfiguration)
	assert.Equal(t, sdk.Amount(0), o.TotalSupply())

	_, err = o.Propose(alice, dao.Mint{Amount: 1}, "")
	requireCode(t, err, contract.ErrInvalidConfiguration)
	_, err = o.Propose(alice, dao.SetSetting{Setting: dao.SettingVotingDuration, Value: 60}, "")
	requireCode(t, err, contract.ErrInvalidConfiguration)

	_, err = o.CreateWhitelistProposal(bob, 1, "")
	requireCode(t, err, contract.ErrInvalidConfiguration)
}

func TestServiceExternalCall(t *testing.T) {
	f, host := setup(t)
	o := create(t, f, serviceArgs(gold, alice, gold))
	require.NoError(t, o.Deposit(bob, 500))

	id, err := o.CreateProposal(alice, "contract:billing", []byte("pay"), 200, "pay invoice")
	require.NoError(t, err)
	require.NoError(t, o.Sign(alice, id))
	require.NoError(t, o.Sign(gold, id))
	require.NoError(t, o.Activate(gold, id))

	require.Len(t, host.Calls, 1)
	assert.Equal(t, sdk.Call{Target: "contract:billing", Payload: []byte("pay"), Value: 200}, host.Calls[0])
	assert.Equal(t, sdk.Amount(300), o.VaultBalance())
}
