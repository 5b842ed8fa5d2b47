package stream

// ringSize is the fixed frame ring capacity. The producer overwrites the
// oldest slot when it wraps; lagging viewers drop frames, they never stall
// the producer.
const ringSize = 60

// cursorPending marks a client cursor that has not begun reading yet. It
// is promoted to 0 by the dispatch loop once the ring holds exactly one
// frame, so a fresh client starts at the stream head rather than replaying
// stale slots.
const cursorPending = ^uint32(0)

// frameMeta describes one encoded frame.
type frameMeta struct {
	frameID uint64
	width   uint32
	height  uint32
}

// frameSlot holds one encoded frame payload and its metadata. Slots are
// overwritten in place when the writer wraps.
type frameSlot struct {
	payload []byte
	meta    frameMeta
}

// frameRing is a single-writer overwrite ring. It carries no lock of its
// own; the owning Server serializes all access through its mutex, along
// with the per-client read cursors held in the registry.
type frameRing struct {
	slots    [ringSize]frameSlot
	writeIdx uint32
	frameID  uint64
}

// push copies payload into the slot under the write cursor and stamps it
// with the current frame id. The caller may reuse its buffer immediately.
// Each push allocates a fresh payload slice: slot contents are immutable
// once written, so per-connection write pumps can keep a reference past an
// overwrite of the slot. A nil or empty payload leaves a zero-length slot;
// dispatch still sends it so frame ids stay contiguous.
func (r *frameRing) push(payload []byte, width, height uint32) {
	slot := &r.slots[r.writeIdx]
	slot.payload = append([]byte(nil), payload...)
	slot.meta = frameMeta{frameID: r.frameID, width: width, height: height}

	r.writeIdx = (r.writeIdx + 1) % ringSize
	r.frameID++
}
