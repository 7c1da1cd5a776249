package logging

// ringBuffer keeps the last size bytes written to it. All reads are tail reads, there is no read position.
type ringBuffer struct {
	buffer []byte
	size   int
	end    int
	full   bool
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{make([]byte, size), size, 0, false}
}

// String returns the retained bytes in the order they were written
func (b *ringBuffer) String() string {
	if !b.full {
		return string(b.buffer[:b.end])
	}
	out := make([]byte, 0, b.size)
	out = append(out, b.buffer[b.end:]...)
	out = append(out, b.buffer[:b.end]...)
	return string(out)
}

// Write writes the given bytes into the buffer, wrapping as necessary.
// This method satisfies the io.Writer interface.
func (b *ringBuffer) Write(p []byte) (int, error) {
	for _, c := range p {
		b.buffer[b.end] = c
		b.end = (b.end + 1) % b.size
		if !b.full && b.end == 0 {
			b.full = true
		}
	}
	return len(p), nil
}
