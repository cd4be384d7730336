// Package ledger implements an append-only, hash-chained journal of the
// actions submitted to Suplock matches.
//
// # Core Components
//
// Journal: the ordered list of blocks, starting from a genesis block. Each
// block stores the hash of the previous one so any modification breaks the
// chain.
//
// Block: one submitted action together with who submitted it, the phase and
// turn the match was left in, and the reason the engine ignored it, if any.
//
// # Usage
//
// Create a journal with NewJournal and Append a block for every action
// handled by the orchestrator. Verify can be called at any time to check that
// the chain is intact; Blocks returns a copy for presentation.
package ledger
