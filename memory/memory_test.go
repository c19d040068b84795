package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)
	assert.Equal(16, mem.Capacity)

	value, err := mem.Read(3)
	assert.NoError(err)
	assert.Equal(EMPTY, value)

	assert.NoError(mem.Write(3, 42))
	value, err = mem.Read(3)
	assert.NoError(err)
	assert.Equal(Value(42), value)
	assert.False(mem.Free(3))
	assert.True(mem.Free(4))

	_, err = mem.Read(16)
	assert.ErrorIs(err, ErrAddressRange)
	_, err = mem.Read(-1)
	assert.ErrorIs(err, ErrAddressRange)
	assert.ErrorIs(mem.Write(16, 1), ErrAddressRange)
	assert.False(mem.Free(-1))

	mem.Reset()
	value, err = mem.Read(3)
	assert.NoError(err)
	assert.Equal(EMPTY, value)
}

func TestMemory_DefaultCapacity(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(0)
	assert.Equal(DEFAULT_CAPACITY, mem.Capacity)
}

func TestMemory_FindFree(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name     string
		used     []Address
		size     int64
		expected Address
	}{
		{"empty", nil, 3, 0},
		{"zero_size", nil, 0, 0},
		{"skip_first", []Address{0}, 2, 1},
		{"skip_gap", []Address{0, 3}, 2, 4},
		{"fit_gap", []Address{0, 4}, 2, 1},
		{"exact_gap", []Address{0, 3}, 1, 1},
	}

	for _, entry := range table {
		mem := NewMemory(16)
		for _, addr := range entry.used {
			assert.NoError(mem.Write(addr, 1))
		}

		addr, err := mem.FindFree(entry.size)
		assert.NoError(err, entry.name)
		assert.Equal(entry.expected, addr, entry.name)

		for n := range entry.size + 1 {
			assert.True(mem.Free(addr+Address(n)), entry.name)
		}
	}
}

func TestMemory_FindFree_Base(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)
	mem.Base = 8

	addr, err := mem.FindFree(3)
	assert.NoError(err)
	assert.Equal(Address(8), addr)
}

func TestMemory_FindFree_Exhausted(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(8)
	_, err := mem.FindFree(7)
	assert.NoError(err)

	_, err = mem.FindFree(8)
	assert.ErrorIs(err, ErrOutOfMemory)

	assert.NoError(mem.Write(4, 1))
	_, err = mem.FindFree(4)
	assert.ErrorIs(err, ErrOutOfMemory)

	_, err = mem.FindFree(-1)
	assert.ErrorIs(err, ErrSizeInvalid)
}

func TestMemory_Range(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(8)
	for n := range 8 {
		assert.NoError(mem.Write(Address(n), Value(n*10)))
	}

	assert.Equal([]Value{20, 30, 40}, mem.Range(2, 3))
	assert.Equal([]Value{60, 70}, mem.Range(6, 4))
	assert.Nil(mem.Range(8, 2))
	assert.Nil(mem.Range(0, 0))
}

func TestMemory_String(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)
	assert.NoError(mem.WriteString(2, "héllo"))

	text, err := mem.ReadString(2)
	assert.NoError(err)
	assert.Equal("héllo", text)

	value, err := mem.Read(7)
	assert.NoError(err)
	assert.Equal(EMPTY, value)

	text, err = mem.ReadString(10)
	assert.NoError(err)
	assert.Equal("", text)

	assert.ErrorIs(mem.WriteString(14, "abc"), ErrAddressRange)

	full := NewMemory(2)
	assert.NoError(full.Write(0, 'a'))
	assert.NoError(full.Write(1, 'b'))
	_, err = full.ReadString(0)
	assert.ErrorIs(err, ErrStringTooLong)
}

func TestMemory_Defines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range NewMemory(128).Defines() {
		defines[key] = value
	}

	assert.Equal("128", defines["MEMORY_SIZE"])
	assert.Equal("0", defines["MEMORY_BASE"])
}
