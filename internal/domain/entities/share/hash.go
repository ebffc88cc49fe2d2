package share

import (
	"encoding/json"
	"fmt"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
)

// ContentHash returns a deterministic digest of a (state, stats) pair, used
// as a share dedup key. Both structures are stringified with object keys
// sorted recursively so in-memory key order never affects the result, then
// hashed with a 33-multiplier xor-fold accumulator rendered as unsigned
// 32-bit lowercase hex. Not cryptographic; hash equality is not a security
// boundary.
func ContentHash(state visit.MapState, stats visit.MapStats) string {
	payload := canonicalJSON(state) + "|" + canonicalJSON(stats)

	h := uint32(5381)
	for _, b := range []byte(payload) {
		h = (h * 33) ^ uint32(b)
	}
	return fmt.Sprintf("%08x", h)
}

// canonicalJSON renders v as JSON with all object keys sorted. A round-trip
// through the generic decoder turns structs into maps, and the encoder
// always emits map keys in sorted order.
func canonicalJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return string(raw)
	}
	sorted, err := json.Marshal(generic)
	if err != nil {
		return string(raw)
	}
	return string(sorted)
}
