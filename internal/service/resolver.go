// internal/service/resolver.go
package service

import (
	"sort"
	"strings"
)

// AccountResolver maps a campaign ID to one of the configured Smartlead API
// keys. The prefix table is a provisional heuristic until a real
// client-to-campaign mapping exists, so both the pool and the prefixes come
// from configuration. Immutable after construction, safe to share across
// requests.
type AccountResolver struct {
	keys     []string
	prefixes []string
	slots    map[string]int
}

// NewAccountResolver builds a resolver over the credential pool. Routes map
// a campaign-ID prefix to a slot index; longer prefixes win when they
// overlap.
func NewAccountResolver(keys []string, routes map[string]int) *AccountResolver {
	prefixes := make([]string, 0, len(routes))
	for p := range routes {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return &AccountResolver{keys: keys, prefixes: prefixes, slots: routes}
}

// Resolve picks the API key for a campaign. Unmatched or empty IDs fall back
// to slot 0, and a route pointing past the configured pool clamps to slot 0
// rather than indexing out of range. An empty pool yields an empty key,
// which downstream treats as simulation-only.
func (r *AccountResolver) Resolve(campaignID string) string {
	if len(r.keys) == 0 {
		return ""
	}
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(campaignID, prefix) {
			slot := r.slots[prefix]
			if slot >= len(r.keys) {
				slot = 0
			}
			return r.keys[slot]
		}
	}
	return r.keys[0]
}
