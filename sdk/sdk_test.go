package sdk

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{"0.01", 10_000_000},
		{"0.1", 100_000_000},
		{"1", 1_000_000_000},
		{" 2.5 ", 2_500_000_000},
		{"0.0000000019", 1},
		{"0.0000000001", 0},
		{"18446744073.709551615", math.MaxUint64},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in, NativeDecimals)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	units, err := ParseAmount("42", 0)
	require.NoError(t, err)
	assert.Equal(t, Amount(42), units)

	for _, bad := range []string{"", "abc", "-1", "18446744073.709551616", "1e30"} {
		_, err := ParseAmount(bad, NativeDecimals)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.01", FormatAmount(10_000_000, NativeDecimals))
	assert.Equal(t, "1", FormatAmount(1_000_000_000, NativeDecimals))
	assert.Equal(t, "0", FormatAmount(0, NativeDecimals))
	assert.Equal(t, "18446744073.709551615", FormatAmount(math.MaxUint64, NativeDecimals))
	assert.Equal(t, "12345", Amount(12345).String())
}

func TestAddress(t *testing.T) {
	assert.True(t, Address("hive:alice").IsValid())
	assert.False(t, Address("").IsValid())
	assert.False(t, Address("hive:al ice").IsValid())
	assert.False(t, Address("hive:a|b").IsValid())

	org := OrgAddress("1b4e")
	assert.Equal(t, Address("org:1b4e"), org)
	assert.Equal(t, AddressDomainOrg, org.Domain())
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
}

func TestMockHost(t *testing.T) {
	h := NewMockHost(100)
	assert.True(t, h.Execute("contract:x", []byte{1}, 5))
	h.OnExecute = func(c Call) bool { return c.Value == 0 }
	assert.False(t, h.Execute("contract:x", nil, 5))
	assert.Len(t, h.Calls, 2)

	require.NoError(t, h.Transfer("hive:alice", 7))
	h.FailTransfers = true
	assert.ErrorIs(t, h.Transfer("hive:alice", 7), ErrTransferFailed)
	assert.Equal(t, []Payout{{To: "hive:alice", Value: 7}}, h.Payouts)

	h.Advance(50)
	assert.Equal(t, int64(150), h.Now())
}

func TestLocalHost(t *testing.T) {
	var buf bytes.Buffer
	h := NewLocalHost(log.New(&buf, "", 0))
	assert.True(t, h.Execute("contract:x", []byte("abc"), 3))
	require.NoError(t, h.Transfer("hive:bob", 9))
	h.Log("pc|id:org:a|pr:0|by:hive:alice")

	assert.Equal(t, []Call{{Target: "contract:x", Payload: []byte("abc"), Value: 3}}, h.Calls())
	out := buf.String()
	assert.Contains(t, out, "execute target=contract:x bytes=3 value=3")
	assert.Contains(t, out, "transfer to=hive:bob value=9")
	assert.Contains(t, out, "pc|id:org:a|pr:0|by:hive:alice")
	assert.Positive(t, h.Now())
}
