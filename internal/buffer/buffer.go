package buffer

// Buffer accumulates bytes under a hard size limit, split into segments. Writes go into
// the current segment, which stays open until Finish is called, so a segment may be
// assembled out of any number of pieces. Finished segments are never touched again.
type Buffer struct {
	memory  []byte
	begin   int
	maxSize int
}

func New(initialSize, maxSize int) Buffer {
	return Buffer{
		memory:  make([]byte, 0, min(initialSize, maxSize)),
		maxSize: maxSize,
	}
}

// Append writes data into the current segment, unless the whole buffer would exceed the
// limit. In that case nothing is written and false is returned.
func (b *Buffer) Append(elements []byte) (ok bool) {
	if len(b.memory)+len(elements) > b.maxSize {
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// Finish completes current segment, returning its value.
func (b *Buffer) Finish() []byte {
	segment := b.memory[b.begin:]
	b.begin = len(b.memory)

	return segment
}

// Bytes returns all the segments written so far, the current one included.
func (b *Buffer) Bytes() []byte {
	return b.memory
}
