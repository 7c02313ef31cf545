// Package ledger implements an append-only journal recording the actions of a
// blackjack round.
//
// # Core Components
//
// Journal: an append-only log of round events with hash chaining for tamper
// detection. It implements blackjack.Recorder.
//
// Block: a single recorded event with its position, time and the hash linking
// it to the previous block.
//
// # Usage
//
// Create a journal, hand it to the round with blackjack.WithRecorder, then call
// Verify at any time to check the chain is intact.
package ledger
