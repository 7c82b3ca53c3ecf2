package job

import "sort"

// SelectDaily picks the contracts offered on one day.
//
// Selection order: the pinned job first (looked up in yesterday's
// offers, falling back to the full pool), then one guaranteed random
// job, then an Easy-tier safety net for the first easyNetDays days,
// then random fill rejecting duplicates. The pinned job, if any, sorts
// first; the rest keep insertion order.
func SelectDaily(r Rand, pool, prev []Job, pinnedID string, day, count, easyNetDays int) []Job {
	if count > len(pool) {
		count = len(pool)
	}
	offers := make([]Job, 0, count)

	if pinnedID != "" {
		if pinned, ok := FindByID(prev, pinnedID); ok {
			offers = append(offers, pinned)
		} else if pinned, ok := FindByID(pool, pinnedID); ok {
			offers = append(offers, pinned)
		}
	}

	if len(offers) < count {
		if guaranteed, ok := drawExcluding(r, pool, offers, func(Job) bool { return true }); ok {
			offers = append(offers, guaranteed)
		}
	}

	if day <= easyNetDays && !containsTier(offers, TierEasy) {
		if easy, ok := drawExcluding(r, pool, offers, func(j Job) bool { return j.Tier == TierEasy }); ok {
			offers = append(offers, easy)
		}
	}

	for len(offers) < count {
		j := pool[r.Intn(len(pool))]
		if _, taken := FindByID(offers, j.ID); !taken {
			offers = append(offers, j)
		}
	}

	if pinnedID != "" {
		sort.SliceStable(offers, func(a, b int) bool {
			return offers[a].ID == pinnedID && offers[b].ID != pinnedID
		})
	}
	return offers
}

// drawExcluding picks one uniformly-random job matching keep that is
// not already in taken.
func drawExcluding(r Rand, pool, taken []Job, keep func(Job) bool) (Job, bool) {
	candidates := make([]Job, 0, len(pool))
	for _, j := range pool {
		if !keep(j) {
			continue
		}
		if _, ok := FindByID(taken, j.ID); ok {
			continue
		}
		candidates = append(candidates, j)
	}
	if len(candidates) == 0 {
		return Job{}, false
	}
	return candidates[r.Intn(len(candidates))], true
}

func containsTier(jobs []Job, tier Tier) bool {
	for _, j := range jobs {
		if j.Tier == tier {
			return true
		}
	}
	return false
}
