package cpu

import (
	"fmt"
	"strings"
)

const (
	STACK_LIMIT = 1024 // Default maximum stack depth
)

type Stack struct {
	Limit int // Maximum depth. Zero selects STACK_LIMIT.
	Data  []int64
}

func (s *Stack) Push(value int64) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value int64, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Full() bool {
	limit := s.Limit
	if limit <= 0 {
		limit = STACK_LIMIT
	}
	return len(s.Data) >= limit
}

func (s *Stack) Peek() (value int64, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}

// String returns the stack contents, bottom to top.
func (s *Stack) String() string {
	words := make([]string, len(s.Data))
	for n, value := range s.Data {
		words[n] = fmt.Sprintf("%d", value)
	}
	return "[" + strings.Join(words, " ") + "]"
}
