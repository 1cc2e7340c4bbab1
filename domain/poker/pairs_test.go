package poker

import (
	"slices"
	"testing"
)

func TestExtractPairs(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []Rank
		expected []Rank
	}{
		{"no pairs", []Rank{13, 10, 8, 5, 3}, []Rank{}},
		{"one pair", []Rank{8, 8, 7, 4, 3}, []Rank{8}},
		{"two pairs in scan order", []Rank{8, 8, 3, 3, 2}, []Rank{8, 3}},
		{"three of a kind once", []Rank{7, 7, 7, 4, 3}, []Rank{7}},
		{"full house", []Rank{12, 12, 12, 11, 11}, []Rank{12, 11}},
		{"four of a kind twice", []Rank{12, 12, 12, 12, 9}, []Rank{12, 12}},
		{"unsorted input keeps scan order", []Rank{3, 8, 3, 8, 2}, []Rank{3, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPairs(tt.ranks); !slices.Equal(got, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestExtractHighCards(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []Rank
		expected []Rank
	}{
		{"no pairs", []Rank{13, 10, 8, 5, 3}, []Rank{13, 10, 8, 5, 3}},
		{"one pair", []Rank{8, 8, 7, 4, 3}, []Rank{7, 4, 3}},
		{"two pairs", []Rank{8, 8, 3, 3, 2}, []Rank{2}},
		{"three of a kind listed once", []Rank{7, 7, 7, 4, 3}, []Rank{7, 4, 3}},
		{"full house", []Rank{12, 12, 12, 11, 11}, []Rank{12}},
		{"four of a kind", []Rank{12, 12, 12, 12, 9}, []Rank{9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractHighCards(tt.ranks); !slices.Equal(got, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSortedRanks(t *testing.T) {
	cards := flushSpades.Cards()
	got := SortedRanks(cards)
	if !slices.Equal(got, []Rank{Ace, 10, 8, 5, 3}) {
		t.Fatalf("unexpected order %v", got)
	}
	if cards[0].Rank() != 3 {
		t.Fatal("input was reordered")
	}
}

func TestCategoryOrder(t *testing.T) {
	if !(Flush > TwoPair && TwoPair > Pair && Pair > HighCard) {
		t.Fatal("categories out of order")
	}
	if Flush.String() != "flush" || HighCard.String() != "high card" {
		t.Fatal("unexpected category names")
	}
}
