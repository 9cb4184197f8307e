package contestdomain

import "sort"

// RatingEntry is a single user's rating of an artwork, as read back from the
// store for aggregation.
type RatingEntry struct {
	ArtworkID string
	UserID    string
	Value     int
}

// Standing is one artwork's aggregated position.
type Standing struct {
	ArtworkID  string
	TotalScore int
	VoteCount  int
}

// WinnerResult is the resolved winner. Derived, never persisted.
type WinnerResult struct {
	ArtworkID  string
	TotalScore int
}

// ComputeStandings groups ratings by artwork, sums their values and sorts
// descending by total. Ties break on the lower artwork ID in byte order, so
// the result is independent of store iteration order.
func ComputeStandings(ratings []RatingEntry) []Standing {
	totals := make(map[string]*Standing)
	for _, r := range ratings {
		s, ok := totals[r.ArtworkID]
		if !ok {
			s = &Standing{ArtworkID: r.ArtworkID}
			totals[r.ArtworkID] = s
		}
		s.TotalScore += r.Value
		s.VoteCount++
	}

	standings := make([]Standing, 0, len(totals))
	for _, s := range totals {
		standings = append(standings, *s)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].TotalScore == standings[j].TotalScore {
			return standings[i].ArtworkID < standings[j].ArtworkID
		}
		return standings[i].TotalScore > standings[j].TotalScore
	})

	return standings
}

// ResolveWinner returns the highest-scoring artwork, or ok=false when the
// rating set is empty.
func ResolveWinner(ratings []RatingEntry) (WinnerResult, bool) {
	standings := ComputeStandings(ratings)
	if len(standings) == 0 {
		return WinnerResult{}, false
	}
	top := standings[0]
	return WinnerResult{ArtworkID: top.ArtworkID, TotalScore: top.TotalScore}, true
}
