package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(seq func(yield func(string, string) bool)) (keys []string, values []string) {
	for key, value := range seq {
		keys = append(keys, key)
		values = append(values, value)
	}
	return
}

func TestSorted(t *testing.T) {
	assert := assert.New(t)

	keys, values := collect(Sorted(map[string]string{"b": "2", "c": "3", "a": "1"}))
	assert.Equal([]string{"a", "b", "c"}, keys)
	assert.Equal([]string{"1", "2", "3"}, values)
}

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	seq := Concat(
		Sorted(map[string]string{"A": "1", "B": "2"}),
		maps.All(map[string]string{"B": "9"}),
		Sorted(map[string]string{"C": "3"}),
	)
	keys, values := collect(seq)
	assert.Equal([]string{"A", "B", "C"}, keys)
	assert.Equal([]string{"1", "2", "3"}, values)

	var first []string
	for key := range seq {
		first = append(first, key)
		break
	}
	assert.Equal([]string{"A"}, first)
}
