package wallet

import "ecosnap/internal/models"

// tier is one lifetime-credit band. Max is exclusive.
type tier struct {
	Name string
	Min  int
	Max  int
}

// tiers are the display bands over lifetime credits.
var tiers = []tier{
	{Name: "Bronze", Min: 0, Max: 500},
	{Name: "Silver", Min: 500, Max: 1500},
	{Name: "Gold", Min: 1500, Max: 3000},
	{Name: "Platinum", Min: 3000, Max: 5000},
}

// TierFor returns the band containing the lifetime balance and the progress
// toward the next band. A balance at or beyond the top band reports the top
// band at 100 percent.
func TierFor(lifetime int) models.TierInfo {
	current := tiers[len(tiers)-1]
	index := len(tiers) - 1
	for i, t := range tiers {
		if lifetime >= t.Min && lifetime < t.Max {
			current = t
			index = i
			break
		}
	}

	if index == len(tiers)-1 {
		return models.TierInfo{Name: current.Name, Progress: 100}
	}

	next := tiers[index+1]
	progress := float64(lifetime-current.Min) / float64(next.Min-current.Min) * 100
	return models.TierInfo{
		Name:        current.Name,
		NextName:    next.Name,
		Progress:    progress,
		CreditsToGo: next.Min - lifetime,
	}
}
