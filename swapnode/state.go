// Package swapnode wraps the stateless Buyer/Seller engines in swapproto
// with a stateful façade that enforces phase ordering, guarding mutable
// per-instance state behind a mutex the way a channel state machine guards
// its own fields against concurrent access.
package swapnode

// state tags where a Buyer or Seller façade sits in its phase sequence.
// The engine in swapproto does not itself enforce ordering; this linear
// enum is what does, simplified to a straight line since a swap has no
// concurrent phases.
type state uint8

const (
	uninitialized state = iota
	paramsGenerated
	setupReady
	transactionsReady
	fundsLocked
	completed
)
