package register

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBank_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	bank := &Bank{}
	for n, reg := range All() {
		value := int64(n*1000) - 7
		bank.Write(reg, value)
		assert.Equal(value, bank.Read(reg), reg.String())
	}

	// Writes do not alias between registers.
	for n, reg := range All() {
		assert.Equal(int64(n*1000)-7, bank.Read(reg), reg.String())
	}

	bank.Reset()
	for _, reg := range All() {
		assert.Equal(int64(0), bank.Read(reg))
	}
}

func TestBank_Return(t *testing.T) {
	assert := assert.New(t)

	bank := &Bank{}
	bank.WriteReturn(RETURN_R4, 42)
	assert.Equal(int64(42), bank.Read(R4))
	assert.Equal(int64(42), bank.ReadReturn(RETURN_R4))
}

func TestClass(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		class   Class
		members []Register
	}{
		{CLASS_GENERAL, []Register{G1, G2, G3, G4}},
		{CLASS_SYSTEM, []Register{S1, S2, S3, S4}},
		{CLASS_RETURN, []Register{R1, R2, R3, R4}},
		{CLASS_FUNCTION, []Register{F1, F2, F3, F4}},
		{CLASS_INTERNAL_FUNCTION, []Register{IF1, IF2, IF3, IF4}},
	}

	for _, entry := range table {
		assert.Equal(entry.members, entry.class.Members(), entry.class.String())
		for _, reg := range entry.members {
			assert.Equal(entry.class, reg.Class())
		}
	}

	assert.Len(CLASS_ANY.Members(), REGISTER_COUNT)
	assert.Equal(CLASS_ANY, Register(99).Class())
}

func TestNarrow(t *testing.T) {
	assert := assert.New(t)

	for _, reg := range All() {
		for class := CLASS_GENERAL; class < CLASS_ANY; class++ {
			out, err := Narrow(reg, class)
			if reg.Class() == class {
				assert.NoError(err)
				assert.Equal(reg, out)
			} else {
				assert.True(errors.Is(err, ErrConversion), "%v to %v", reg, class)
				var narrow *ErrNarrow
				assert.True(errors.As(err, &narrow))
				assert.Equal(reg, narrow.Register)
				assert.Equal(class, narrow.Class)
			}
		}

		out, err := Narrow(reg, CLASS_ANY)
		assert.NoError(err)
		assert.Equal(reg, out)
	}

	_, err := Narrow(Register(-1), CLASS_ANY)
	assert.ErrorIs(err, ErrConversion)
	_, err = Narrow(Register(REGISTER_COUNT), CLASS_ANY)
	assert.ErrorIs(err, ErrConversion)
}

func TestNarrow_Typed(t *testing.T) {
	assert := assert.New(t)

	g, err := G3.General()
	assert.NoError(err)
	assert.Equal(GENERAL_G3, g)
	assert.Equal(G3, g.Super())

	s, err := S2.System()
	assert.NoError(err)
	assert.Equal(SYSTEM_S2, s)

	r, err := R4.Return()
	assert.NoError(err)
	assert.Equal(RETURN_R4, r)
	assert.Equal("R4", r.String())

	fn, err := F1.Function()
	assert.NoError(err)
	assert.Equal(FUNCTION_F1, fn)

	ifn, err := IF4.InternalFunction()
	assert.NoError(err)
	assert.Equal(INTERNAL_FUNCTION_IF4, ifn)

	_, err = G1.Return()
	assert.ErrorIs(err, ErrConversion)
	assert.Contains(err.Error(), "G1")
	assert.Contains(err.Error(), "return")

	_, err = R1.General()
	assert.ErrorIs(err, ErrConversion)
	_, err = IF1.Function()
	assert.ErrorIs(err, ErrConversion)
	_, err = F1.InternalFunction()
	assert.ErrorIs(err, ErrConversion)
	_, err = G1.System()
	assert.ErrorIs(err, ErrConversion)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	for _, reg := range All() {
		out, err := Parse(reg.String())
		assert.NoError(err)
		assert.Equal(reg, out)
	}

	out, err := Parse("if2")
	assert.NoError(err)
	assert.Equal(IF2, out)

	_, err = Parse("G5")
	assert.ErrorIs(err, ErrRegisterName)
	_, err = Parse("")
	assert.ErrorIs(err, ErrRegisterName)
}

func TestBank_String(t *testing.T) {
	assert := assert.New(t)

	bank := &Bank{}
	bank.Write(G1, 3)
	bank.Write(IF4, -1)

	text := bank.String()
	assert.Contains(text, " G1: 3")
	assert.Contains(text, "IF4: -1")
}
