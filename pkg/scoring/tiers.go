package scoring

import "fmt"

// LookupTier returns the tier whose range contains pct. Tiers must be
// ascending by LowerBound. A percentage equal to a tier's lower bound
// belongs to that tier; the last tier is unbounded above.
func LookupTier(tiers []Tier, pct int) (Tier, error) {
	if len(tiers) == 0 {
		return Tier{}, fmt.Errorf("no tiers configured")
	}
	if pct < tiers[0].LowerBound {
		return Tier{}, fmt.Errorf("percentage %d below first tier bound %d", pct, tiers[0].LowerBound)
	}
	for i := range tiers {
		if i == len(tiers)-1 || pct < tiers[i+1].LowerBound {
			return tiers[i], nil
		}
	}
	return tiers[len(tiers)-1], nil
}
