package poker

import (
	"cmp"
	"slices"
)

const (
	threeOfAKind = 3
	fourOfAKind  = 4
)

func rankCounts(ranks []Rank) map[Rank]int {
	counts := make(map[Rank]int, len(ranks))
	for _, r := range ranks {
		counts[r]++
	}
	return counts
}

// SortedRanks returns the ranks of cards in descending order. The input is
// not modified.
func SortedRanks(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank()
	}
	slices.SortStableFunc(ranks, func(a, b Rank) int {
		return cmp.Compare(b, a)
	})
	return ranks
}

// ExtractPairs scans ranks in the given order and collects every rank that
// occurs more than once, once per rank. A rank held four times is collected
// twice, so four of a kind reads as two pairs.
func ExtractPairs(ranks []Rank) []Rank {
	counts := rankCounts(ranks)
	pairs := []Rank{}
	for _, r := range ranks {
		if slices.Contains(pairs, r) {
			continue
		}
		if counts[r] > 1 {
			pairs = append(pairs, r)
			if counts[r] == fourOfAKind {
				pairs = append(pairs, r)
			}
		}
	}
	return pairs
}

// ExtractHighCards scans ranks in the given order and collects the ranks
// that are not part of a pair. A rank held exactly three times is counted
// once here as well as once in ExtractPairs.
func ExtractHighCards(ranks []Rank) []Rank {
	counts := rankCounts(ranks)
	var paired []Rank
	high := []Rank{}
	for _, r := range ranks {
		if slices.Contains(paired, r) {
			continue
		}
		if counts[r] > 1 {
			if counts[r] == threeOfAKind {
				high = append(high, r)
			}
			paired = append(paired, r)
		} else {
			high = append(high, r)
		}
	}
	return high
}
