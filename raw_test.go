package vvector_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lewieW/vvector"
)

func u32(value uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, value)
	return buf
}

func readU32(t *testing.T, v *vvector.RawVector, index int) uint32 {
	t.Helper()

	slot, err := v.At(index)
	require.NoError(t, err)
	return binary.LittleEndian.Uint32(slot)
}

func requireInvariants(t *testing.T, v *vvector.RawVector) {
	t.Helper()

	require.NoError(t, v.Validate())
	require.GreaterOrEqual(t, v.Len(), 0)
	require.LessOrEqual(t, v.Len(), v.CapacityElements())
	require.Zero(t, v.CapacityElements()%v.PageElements())
}

func TestNewRejectsBadElementSize(t *testing.T) {
	_, err := vvector.New(-4, vvector.CreateOptions{})
	require.ErrorIs(t, err, vvector.ErrElementSize)

	_, err = vvector.New(0, vvector.CreateOptions{})
	require.ErrorIs(t, err, vvector.ErrElementSize)
}

func TestNewStartsEmpty(t *testing.T) {
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)

	require.Equal(t, 0, v.Len())
	require.True(t, v.IsEmpty())
	require.Equal(t, 0, v.CapacityElements())
	require.Equal(t, 4, v.ElementSize())
	require.Equal(t, vvector.DefaultPageElements, v.PageElements())
	require.False(t, v.HasCustomAllocator())
	requireInvariants(t, v)

	require.NoError(t, v.Destroy())
}

func TestNilVectorOperations(t *testing.T) {
	var v *vvector.RawVector

	require.Equal(t, 0, v.Len())
	require.True(t, v.IsEmpty())
	require.Equal(t, 0, v.Capacity())
	require.Equal(t, 0, v.CapacityElements())
	require.Equal(t, 0, v.ElementSize())
	require.Equal(t, 0, v.RawElementSize())
	require.False(t, v.HasCustomAllocator())

	_, err := v.At(0)
	require.ErrorIs(t, err, vvector.ErrVectorInvalid)
	_, err = v.Front()
	require.ErrorIs(t, err, vvector.ErrVectorInvalid)
	_, err = v.Back()
	require.ErrorIs(t, err, vvector.ErrVectorInvalid)

	require.ErrorIs(t, v.Set(0, u32(1)), vvector.ErrVectorInvalid)
	require.ErrorIs(t, v.Insert(0, u32(1)), vvector.ErrVectorInvalid)
	require.ErrorIs(t, v.PushBack(u32(1)), vvector.ErrVectorInvalid)
	require.ErrorIs(t, v.RemoveAt(0), vvector.ErrVectorInvalid)
	require.ErrorIs(t, v.RemoveBack(), vvector.ErrVectorInvalid)
	require.ErrorIs(t, v.Reserve(1), vvector.ErrVectorInvalid)
	require.ErrorIs(t, v.ShrinkToFit(), vvector.ErrVectorInvalid)
	require.ErrorIs(t, v.Destroy(), vvector.ErrVectorInvalid)
}

func TestDestroyedVectorOperations(t *testing.T) {
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)
	require.NoError(t, v.PushBack(u32(7)))
	require.NoError(t, v.Destroy())

	// The vector is now in the invalid state; every operation reports it
	// and a second destroy is already-invalid, not a double release.
	require.Equal(t, 0, v.Len())
	require.True(t, v.IsEmpty())

	_, err = v.At(0)
	require.ErrorIs(t, err, vvector.ErrVectorInvalid)
	require.ErrorIs(t, v.PushBack(u32(7)), vvector.ErrVectorInvalid)
	require.ErrorIs(t, v.Destroy(), vvector.ErrVectorInvalid)
}

func TestPushPopRoundTrip(t *testing.T) {
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, v.Destroy())
	}()

	const count = 80 // crosses two page boundaries

	for i := 0; i < count; i++ {
		require.NoError(t, v.PushBack(u32(uint32(i))))
		requireInvariants(t, v)
	}
	require.Equal(t, count, v.Len())

	for i := count - 1; i >= 0; i-- {
		back, err := v.Back()
		require.NoError(t, err)
		require.Equal(t, uint32(i), binary.LittleEndian.Uint32(back))

		require.NoError(t, v.RemoveBack())
		requireInvariants(t, v)
	}

	require.True(t, v.IsEmpty())
	require.ErrorIs(t, v.RemoveBack(), vvector.ErrVectorEmpty)
}

func TestInsertRemoveInverse(t *testing.T) {
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, v.Destroy())
	}()

	for i := 0; i < 10; i++ {
		require.NoError(t, v.PushBack(u32(uint32(i * 100))))
	}

	for _, index := range []int{0, 3, 9, 10} {
		require.NoError(t, v.Insert(index, u32(0xdeadbeef)))
		require.Equal(t, 11, v.Len())
		require.Equal(t, uint32(0xdeadbeef), readU32(t, v, index))

		require.NoError(t, v.RemoveAt(index))
		require.Equal(t, 10, v.Len())
		for i := 0; i < 10; i++ {
			require.Equal(t, uint32(i*100), readU32(t, v, i))
		}
		requireInvariants(t, v)
	}
}

func TestSetIsNonStructural(t *testing.T) {
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, v.Destroy())
	}()

	for i := 0; i < 5; i++ {
		require.NoError(t, v.PushBack(u32(uint32(i))))
	}

	lengthBefore := v.Len()
	capacityBefore := v.Capacity()

	for i := 0; i < 5; i++ {
		require.NoError(t, v.Set(i, u32(uint32(i)+1000)))
	}

	require.Equal(t, lengthBefore, v.Len())
	require.Equal(t, capacityBefore, v.Capacity())
	for i := 0; i < 5; i++ {
		require.Equal(t, uint32(i)+1000, readU32(t, v, i))
	}
}

func TestSetRejectsBadArguments(t *testing.T) {
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, v.Destroy())
	}()

	require.NoError(t, v.PushBack(u32(1)))

	require.ErrorIs(t, v.Set(-1, u32(2)), vvector.ErrIndexOutOfRange)
	require.ErrorIs(t, v.Set(1, u32(2)), vvector.ErrIndexOutOfRange)
	require.ErrorIs(t, v.Set(0, nil), vvector.ErrNilValue)
	require.ErrorIs(t, v.Set(0, []byte{1, 2}), vvector.ErrValueSize)

	// Rejected before any mutation.
	require.Equal(t, uint32(1), readU32(t, v, 0))
	require.Equal(t, 1, v.Len())
}

func TestInsertRejectsBadArguments(t *testing.T) {
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, v.Destroy())
	}()

	require.NoError(t, v.PushBack(u32(1)))

	require.ErrorIs(t, v.Insert(-1, u32(2)), vvector.ErrIndexOutOfRange)
	require.ErrorIs(t, v.Insert(2, u32(2)), vvector.ErrIndexOutOfRange)
	require.ErrorIs(t, v.Insert(0, nil), vvector.ErrNilValue)
	require.ErrorIs(t, v.Insert(0, []byte{1, 2, 3}), vvector.ErrValueSize)
	require.ErrorIs(t, v.PushBack(nil), vvector.ErrNilValue)

	require.Equal(t, 1, v.Len())
	require.Equal(t, uint32(1), readU32(t, v, 0))
}

func TestRemoveAtShiftsForward(t *testing.T) {
	// The canonical scenario: 100 4-byte integers, remove index 2, every
	// later element shifts down one position.
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, v.Destroy())
	}()

	for i := 0; i < 100; i++ {
		require.NoError(t, v.PushBack(u32(uint32(i))))
	}
	require.Equal(t, 100, v.Len())

	require.NoError(t, v.RemoveAt(2))
	require.Equal(t, 99, v.Len())

	require.Equal(t, uint32(1), readU32(t, v, 1))
	require.Equal(t, uint32(3), readU32(t, v, 2))
	require.Equal(t, uint32(99), readU32(t, v, 98))
	requireInvariants(t, v)

	require.ErrorIs(t, v.RemoveAt(99), vvector.ErrIndexOutOfRange)
	require.ErrorIs(t, v.RemoveAt(-1), vvector.ErrIndexOutOfRange)
}

func TestReadBoundaries(t *testing.T) {
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, v.Destroy())
	}()

	// Fresh, never-pushed container.
	_, err = v.Front()
	require.ErrorIs(t, err, vvector.ErrVectorEmpty)
	_, err = v.Back()
	require.ErrorIs(t, err, vvector.ErrVectorEmpty)
	require.ErrorIs(t, v.RemoveBack(), vvector.ErrVectorEmpty)

	require.NoError(t, v.PushBack(u32(11)))
	require.NoError(t, v.PushBack(u32(22)))

	// An index equal to the length is out of range for reads, though valid
	// for Insert.
	_, err = v.At(v.Len())
	require.ErrorIs(t, err, vvector.ErrIndexOutOfRange)
	require.NoError(t, v.Insert(v.Len(), u32(33)))

	front, err := v.Front()
	require.NoError(t, err)
	require.Equal(t, uint32(11), binary.LittleEndian.Uint32(front))

	back, err := v.Back()
	require.NoError(t, err)
	require.Equal(t, uint32(33), binary.LittleEndian.Uint32(back))
}

func TestAtReturnsAliasingView(t *testing.T) {
	v, err := vvector.New(4, vvector.CreateOptions{})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, v.Destroy())
	}()

	require.NoError(t, v.PushBack(u32(5)))

	slot, err := v.At(0)
	require.NoError(t, err)
	binary.LittleEndian.PutUint32(slot, 42)

	require.Equal(t, uint32(42), readU32(t, v, 0))
}
