package allocator

// Counting is an Allocator decorator that counts every call and byte routed
// through it before delegating to an inner Allocator. It is primarily a test
// and diagnostics tool: wrapping a container's allocator in a Counting makes
// the container's allocation behavior observable from the outside.
//
// Counting is not safe for concurrent use, matching the containers that
// call it.
type Counting struct {
	inner Allocator
	stats Statistics
}

var _ Allocator = (*Counting)(nil)

// NewCounting wraps inner in a call-counting decorator. A nil inner delegates
// to the library default.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Default()
	}

	return &Counting{inner: inner}
}

func (c *Counting) Allocate(size int) ([]byte, error) {
	c.stats.AllocateCalls++

	buf, err := c.inner.Allocate(size)
	if err != nil {
		return nil, err
	}

	c.stats.AllocatedBytes += size
	return buf, nil
}

func (c *Counting) Reallocate(buf []byte, newSize int) ([]byte, error) {
	c.stats.ReallocateCalls++

	newBuf, err := c.inner.Reallocate(buf, newSize)
	if err != nil {
		return nil, err
	}

	if newSize > len(buf) {
		c.stats.AllocatedBytes += newSize - len(buf)
	} else {
		c.stats.FreedBytes += len(buf) - newSize
	}
	return newBuf, nil
}

func (c *Counting) Deallocate(buf []byte) error {
	c.stats.DeallocateCalls++

	err := c.inner.Deallocate(buf)
	if err != nil {
		return err
	}

	c.stats.FreedBytes += len(buf)
	return nil
}

// Context exposes the inner allocator's context value, if it carries one.
func (c *Counting) Context() any {
	return ContextOf(c.inner)
}

// Stats returns a snapshot of the traffic counted so far.
func (c *Counting) Stats() Statistics {
	return c.stats
}

// ClearStats zeroes the running counters.
func (c *Counting) ClearStats() {
	c.stats.Clear()
}
