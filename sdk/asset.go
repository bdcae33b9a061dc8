package sdk

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Asset identifies an accepted currency (a ticker or a token contract address).
type Asset string

// NativeDecimals is the precision of the native currency: 1 native unit = 10^9 base units.
// Amount is a uint64, so 9 decimals leaves room for roughly 18 billion native units.
const NativeDecimals int32 = 9

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.Asset("wbnb").String()
func (a Asset) String() string {
	return string(a)
}

// Amount counts native-currency base units or governance token units.
type Amount uint64

// String prints the raw base units.
func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts a human decimal like "0.01" into base units with the given precision.
// Digits below the precision are truncated toward zero.
// Example payload: sdk.ParseAmount("0.1", sdk.NativeDecimals)
func ParseAmount(s string, decimals int32) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: negative %q", ErrInvalidAmount, s)
	}
	scaled := d.Shift(decimals).Truncate(0)
	if !scaled.BigInt().IsUint64() {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, s)
	}
	return Amount(scaled.BigInt().Uint64()), nil
}

// FormatAmount renders base units back into a human decimal string.
// Example payload: sdk.FormatAmount(100000000, sdk.NativeDecimals)
func FormatAmount(v Amount, decimals int32) string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), -decimals)
	return d.String()
}
