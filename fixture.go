package main

// ringBuffer is the demonstration subject for the sample suites: a bounded
// FIFO queue over a fixed-size circular slice.
type ringBuffer struct {
	items []string
	head  int
	size  int
}

func newRingBuffer(capacity int) *ringBuffer {
	return &ringBuffer{items: make([]string, capacity)}
}

func (b *ringBuffer) Cap() int { return len(b.items) }

func (b *ringBuffer) Len() int { return b.size }

// Push appends a value, or reports false if the buffer is full.
func (b *ringBuffer) Push(v string) bool {
	if b.size == len(b.items) {
		return false
	}
	b.items[(b.head+b.size)%len(b.items)] = v
	b.size++
	return true
}

// Pop removes and returns the oldest value, or reports false if empty.
func (b *ringBuffer) Pop() (string, bool) {
	if b.size == 0 {
		return "", false
	}
	v := b.items[b.head]
	b.head = (b.head + 1) % len(b.items)
	b.size--
	return v, true
}
