package dao

import (
	"testing"

	"github.com/CosmWasm/tinyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okinoko_treasury/sdk"
)

func TestProposalCodec(t *testing.T) {
	cmd := SetSetting{Setting: SettingVotingDuration, Value: 3600}
	in := &Proposal{
		ID:          7,
		Creator:     "hive:alice",
		Target:      "org:acme",
		Payload:     EncodeCommand(cmd),
		Command:     cmd,
		Description: "one hour windows",
		Signers:     []sdk.Address{"hive:alice", "hive:bob"},
		Executed:    true,
		CreatedAt:   1_756_857_600,
	}
	out, err := DecodeProposal(EncodeProposal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out, "the command is re-derived from the payload")

	ext := &Proposal{ID: 8, Creator: "hive:bob", Target: "contract:vendor", Payload: []byte("pay"), Value: 99, Threshold: 5}
	out, err = DecodeProposal(EncodeProposal(ext))
	require.NoError(t, err)
	assert.Nil(t, out.Command)
	assert.Equal(t, sdk.Amount(99), out.Value)
	assert.Equal(t, sdk.Amount(5), out.Threshold)

	raw := EncodeProposal(in)
	_, err = DecodeProposal(raw[:len(raw)-3])
	assert.Error(t, err)
}

func TestOrgMetaCodec(t *testing.T) {
	in := &OrgMeta{
		Variant:     VariantService,
		ID:          "org:ops",
		Name:        "Ops",
		Currency:    "native",
		GoldenShare: "hive:gold",
		CreatedAt:   42,
	}
	out, err := DecodeOrgMeta(EncodeOrgMeta(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSmallRecords(t *testing.T) {
	list := []sdk.Address{"hive:a", "hive:b"}
	got, err := DecodeAddressList(EncodeAddressList(list))
	require.NoError(t, err)
	assert.Equal(t, list, got)

	amt, err := DecodeAmount(EncodeAmount(123456789))
	require.NoError(t, err)
	assert.Equal(t, sdk.Amount(123456789), amt)

	val, frozen, err := DecodeSettingRecord(EncodeSettingRecord(50, true))
	require.NoError(t, err)
	assert.Equal(t, uint64(50), val)
	assert.True(t, frozen)

	supply, holders, err := DecodeLedgerHeader(EncodeLedgerHeader(1000, list))
	require.NoError(t, err)
	assert.Equal(t, sdk.Amount(1000), supply)
	assert.Equal(t, list, holders)

	_, err = DecodeAmount(nil)
	assert.Error(t, err)
}

func TestViewJSON(t *testing.T) {
	v := ProposalView{ID: 1, Creator: "hive:alice", Signers: []string{"hive:alice"}, State: "open"}
	raw, err := tinyjson.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"creator":"hive:alice","target":"","payload":"","action":"","value":0,
		"description":"","signers":["hive:alice"],"executed":false,"state":"open","created_at":0}`, string(raw))

	v.Threshold = 300
	raw, err = tinyjson.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"threshold":300`)

	var back ProposalView
	require.NoError(t, tinyjson.Unmarshal(raw, &back))
	assert.Equal(t, v, back)

	list := InstanceList{Instances: []string{"org:a"}, Currencies: []string{"native"}}
	raw, err = tinyjson.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `{"instances":["org:a"],"currencies":["native"]}`, string(raw))
}
