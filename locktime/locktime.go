// Package locktime implements the BIP-68 relative-locktime encoding shared
// by the swaplock and refund scripts' timeout branches.
package locktime

const (
	// seqLockTimeTypeFlag marks an nSequence value as time-based (512s
	// granularity) rather than block-based.
	seqLockTimeTypeFlag = 1 << 22

	// seqLockTimeMask isolates the low 16 bits carrying the actual
	// locktime value in either encoding.
	seqLockTimeMask = 0x0000ffff
)

// RelativeLocktime is the tagged union `Blocks(u16) | Time(u16)`, rendered
// as a small closed interface rather than an enum-with-payload: Go has no
// sum types, and an interface with two unexported-method implementers
// gives the same exhaustiveness guarantee (no third implementation can
// satisfy it from outside the package) while staying idiomatic.
type RelativeLocktime interface {
	// Encode returns the nSequence value for this locktime, per BIP-68.
	Encode() uint32

	isRelativeLocktime()
}

// Blocks is a relative locktime expressed as a number of confirmations.
type Blocks uint16

// Encode implements RelativeLocktime.
func (b Blocks) Encode() uint32 {
	return seqLockTimeMask & uint32(b)
}

func (b Blocks) isRelativeLocktime() {}

// Time is a relative locktime expressed in 512-second intervals.
type Time uint16

// Encode implements RelativeLocktime.
func (t Time) Encode() uint32 {
	return seqLockTimeTypeFlag | uint32(t)
}

func (t Time) isRelativeLocktime() {}

// Equal reports whether two relative locktimes encode to the same
// nSequence value and share the same type (Blocks vs Time). Setup
// verification uses this to detect parameter mismatch between parties.
func Equal(a, b RelativeLocktime) bool {
	switch av := a.(type) {
	case Blocks:
		bv, ok := b.(Blocks)
		return ok && av == bv
	case Time:
		bv, ok := b.(Time)
		return ok && av == bv
	default:
		return false
	}
}
