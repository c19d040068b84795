package debugger

import (
	"github.com/ezrec/kvm/memory"
)

// RegisterSnapshot is the artifact written by the registers action.
type RegisterSnapshot struct {
	Seq      int    `yaml:"seq"`
	Pc       int    `yaml:"pc"`
	Register string `yaml:"register"`
	Value    int64  `yaml:"value"`
}

// MemorySnapshot is the artifact written by the memoryRange action.
type MemorySnapshot struct {
	Seq    int            `yaml:"seq"`
	Pc     int            `yaml:"pc"`
	Start  memory.Address `yaml:"start"`
	Count  int            `yaml:"count"`
	Values []memory.Value `yaml:"values,flow"`
}
