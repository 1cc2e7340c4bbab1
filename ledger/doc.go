// Package ledger keeps a tamper-evident record of the quiz rounds played in
// a session.
//
// Every answered round is appended as a Block whose hash covers the round
// and the hash of the previous block, starting from a fixed genesis block.
// Verify walks the chain and reports the first block whose index, link or
// hash does not match, so an edited score can be detected after the fact.
package ledger
