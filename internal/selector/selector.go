// Package selector picks the next item to administer: the eligible item
// carrying maximum Fisher information at the current ability estimate,
// subject to per-domain quotas.
package selector

import (
	"github.com/abhisek/gauge/internal/itembank"
)

// NeutralTheta is the prior used before any response exists, so every
// session starts from a well-defined, reproducible first item.
const NeutralTheta = 0.0

// Request carries the inputs for one selection.
type Request struct {
	// Exclude holds item ids already administered in this session.
	// An administered item is never re-selected within the session.
	Exclude map[string]bool

	// Theta is the current ability estimate.
	Theta float64

	// Quotas is the configured per-domain question minimum. While any
	// domain's quota is unmet, candidates are restricted to those domains;
	// afterwards selection runs over the full remaining pool.
	Quotas map[itembank.Domain]int

	// Counts is the number of questions already administered per domain.
	Counts map[itembank.Domain]int

	// SeedDomain, when set, restricts this selection to one domain.
	// Used for the first item of a domain-focused diagnostic.
	SeedDomain itembank.Domain
}

// NextItem returns the maximum-information item for the request, or false
// when no eligible item remains. Exhaustion is a termination trigger for
// the caller, not an error.
//
// Selection is deterministic: ties on information break by higher
// discrimination, then lower item id.
func NextItem(bank *itembank.Bank, req Request) (itembank.Item, bool) {
	restricted := unmetQuotaDomains(req.Quotas, req.Counts)

	best, ok := pick(bank, req, restricted)
	if ok {
		return best, true
	}
	if len(restricted) == 0 {
		return itembank.Item{}, false
	}
	// Quota domains are exhausted in the bank; fall back to the free pool
	// rather than ending the session early.
	return pick(bank, req, nil)
}

// FirstItem selects the opening item using the neutral prior.
func FirstItem(bank *itembank.Bank, quotas map[itembank.Domain]int, seedDomain itembank.Domain) (itembank.Item, bool) {
	return NextItem(bank, Request{
		Theta:      NeutralTheta,
		Quotas:     quotas,
		SeedDomain: seedDomain,
	})
}

func pick(bank *itembank.Bank, req Request, restrictTo map[itembank.Domain]bool) (itembank.Item, bool) {
	var best itembank.Item
	bestInfo := -1.0
	found := false

	for _, it := range bank.Items() {
		if req.Exclude[it.ID] {
			continue
		}
		if !it.Eligible() {
			continue
		}
		if req.SeedDomain != "" && it.Domain != req.SeedDomain {
			continue
		}
		if restrictTo != nil && !restrictTo[it.Domain] {
			continue
		}

		info := it.Params.Information(req.Theta)
		if !found || better(it, info, best, bestInfo) {
			best, bestInfo, found = it, info, true
		}
	}

	return best, found
}

// better reports whether the candidate should replace the current best.
func better(cand itembank.Item, candInfo float64, best itembank.Item, bestInfo float64) bool {
	if candInfo != bestInfo {
		return candInfo > bestInfo
	}
	if cand.Params.Discrimination != best.Params.Discrimination {
		return cand.Params.Discrimination > best.Params.Discrimination
	}
	return cand.ID < best.ID
}

func unmetQuotaDomains(quotas, counts map[itembank.Domain]int) map[itembank.Domain]bool {
	var unmet map[itembank.Domain]bool
	for domain, quota := range quotas {
		if counts[domain] < quota {
			if unmet == nil {
				unmet = make(map[itembank.Domain]bool)
			}
			unmet[domain] = true
		}
	}
	return unmet
}
