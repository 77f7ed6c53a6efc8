package allocator

// Statistics is a snapshot of allocator traffic, as counted by a Counting
// allocator.
type Statistics struct {
	AllocateCalls   int
	ReallocateCalls int
	DeallocateCalls int

	// AllocatedBytes is the sum of all bytes requested through Allocate and
	// through growth in Reallocate. FreedBytes is the sum of all bytes
	// released through Deallocate and through shrinkage in Reallocate.
	AllocatedBytes int
	FreedBytes     int
}

func (s *Statistics) Clear() {
	s.AllocateCalls = 0
	s.ReallocateCalls = 0
	s.DeallocateCalls = 0
	s.AllocatedBytes = 0
	s.FreedBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.AllocateCalls += other.AllocateCalls
	s.ReallocateCalls += other.ReallocateCalls
	s.DeallocateCalls += other.DeallocateCalls
	s.AllocatedBytes += other.AllocatedBytes
	s.FreedBytes += other.FreedBytes
}

// Calls returns the total number of allocator invocations in the snapshot.
func (s *Statistics) Calls() int {
	return s.AllocateCalls + s.ReallocateCalls + s.DeallocateCalls
}
