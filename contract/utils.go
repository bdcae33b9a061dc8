package contract

import (
	"strconv"
	"strings"

	"okinoko_treasury/sdk"
)

// u64 turns ids and counters into decimal text for logs and error details.
// Example payload: u64(9001)
func u64(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// i64 is the signed twin for timestamps.
func i64(val int64) string {
	return strconv.FormatInt(val, 10)
}

// addressStrings flattens addresses for views.
func addressStrings(list []sdk.Address) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.String()
	}
	return out
}

// joinAddresses renders a signer set as a,b,c for event lines.
func joinAddresses(list []sdk.Address) string {
	return strings.Join(addressStrings(list), ",")
}

// normalizeText trims names and descriptions coming in from callers.
func normalizeText(s string) string {
	return strings.TrimSpace(s)
}
