// Package poker implements the card, deck and hand logic of the "how does
// it rank" quiz: two five card hands are dealt and compared under a reduced
// set of poker categories.
//
// # Core Types
//
// Card: An immutable playing card with suit and rank (2-14, ace high).
//
// PokerDeck: A shuffled 52 card deck that deals Cards from the top.
//
// Hand: Five cards with classification and comparison logic.
//
// # Ranking
//
// Only four categories are recognised, from best to worst: flush, two pair,
// pair and high card. Hands in different categories are ordered by category
// alone. Within a category ties are broken on ranks:
//
//   - Flush and high card compare the ranks sorted high to low.
//   - Two pair compares the pair ranks, then the first unpaired rank.
//   - Pair compares the pair rank, then the unpaired ranks.
//
// Pairs are found with ExtractPairs, which counts four of a kind as two
// pairs, and the remainder with ExtractHighCards, which also lists the rank
// of three of a kind.
package poker
