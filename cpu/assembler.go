// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/kvm/memory"
	"github.com/ezrec/kvm/register"
	"github.com/ezrec/kvm/syscalls"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the KVM instruction set.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to program counters.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	value, err = strconv.ParseInt(strings.ReplaceAll(word, "_", ""), 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// registerOf returns the register named by a word.
func (asm *Assembler) registerOf(word string) (reg register.Register, err error) {
	reg, err = register.Parse(word)
	if err != nil {
		err = ErrParseRegister(word)
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 int64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	for key, pc := range asm.Label {
		if _, ok := pred[key]; !ok {
			pred[key] = starlark.MakeInt(pc)
		}
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// parseLine parses a single line into words, handling equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "0":
				str = "\000"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if len(label) == 0 {
			err = ErrLabelSyntax
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentPc()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentPc gets the program counter of the next instruction.
func (asm *Assembler) currentPc() int {
	return len(asm.Opcode)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.SplitN(text, ";", 2)
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		label := op.LinkLabel
		pc, ok := asm.Label[label]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(label)
			return
		}
		op.Instruction = withTarget(op.Instruction, pc)
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// withTarget returns a jump instruction with its target replaced.
func withTarget(inst Instruction, target int) Instruction {
	switch inst := inst.(type) {
	case Jmp:
		inst.Target = target
		return inst
	case Jz:
		inst.Target = target
		return inst
	case Jnz:
		inst.Target = target
		return inst
	}
	return inst
}

// argKind is the kind of an instruction argument.
type argKind int

const (
	ARG_REGISTER = argKind(iota) // Register name.
	ARG_NUMBER                   // Integer value.
	ARG_TARGET                   // Jump label or program counter.
)

// arg is a parsed instruction argument.
type arg struct {
	Register register.Register
	Number   int64
}

// opForm describes the assembly syntax of an operation.
type opForm struct {
	Args []argKind // Argument kinds.
	Need int       // Required arguments; the rest default to zero values.
	Make func(a []arg) Instruction
}

var opForms = map[Op]opForm{
	OP_HALT: {nil, 0, func(a []arg) Instruction { return Halt{} }},
	OP_MOV: {[]argKind{ARG_REGISTER, ARG_REGISTER}, 2, func(a []arg) Instruction {
		return Mov{Source: a[0].Register, Destination: a[1].Register}
	}},
	OP_ADD: {[]argKind{ARG_REGISTER, ARG_REGISTER}, 2, func(a []arg) Instruction { return Add{a[0].Register, a[1].Register} }},
	OP_SUB: {[]argKind{ARG_REGISTER, ARG_REGISTER}, 2, func(a []arg) Instruction { return Sub{a[0].Register, a[1].Register} }},
	OP_MUL: {[]argKind{ARG_REGISTER, ARG_REGISTER}, 2, func(a []arg) Instruction { return Mul{a[0].Register, a[1].Register} }},
	OP_DIV: {[]argKind{ARG_REGISTER, ARG_REGISTER}, 2, func(a []arg) Instruction { return Div{a[0].Register, a[1].Register} }},
	OP_JMP: {[]argKind{ARG_TARGET}, 1, func(a []arg) Instruction { return Jmp{Target: int(a[0].Number)} }},
	OP_JZ: {[]argKind{ARG_TARGET, ARG_REGISTER}, 2, func(a []arg) Instruction {
		return Jz{Target: int(a[0].Number), Test: a[1].Register}
	}},
	OP_JNZ: {[]argKind{ARG_TARGET, ARG_REGISTER}, 2, func(a []arg) Instruction {
		return Jnz{Target: int(a[0].Number), Test: a[1].Register}
	}},
	OP_PEEK: {[]argKind{ARG_REGISTER}, 1, func(a []arg) Instruction { return Peek{a[0].Register} }},
	OP_PUSH: {[]argKind{ARG_REGISTER}, 1, func(a []arg) Instruction { return Push{a[0].Register} }},
	OP_POP:  {[]argKind{ARG_REGISTER}, 1, func(a []arg) Instruction { return Pop{a[0].Register} }},
	OP_SYSCALL: {[]argKind{ARG_NUMBER, ARG_REGISTER, ARG_REGISTER, ARG_REGISTER}, 1, func(a []arg) Instruction {
		return Syscall{
			Number:    syscalls.Code(a[0].Number),
			Argument1: a[1].Register,
			Argument2: a[2].Register,
			Argument3: a[3].Register,
		}
	}},
	OP_LOAD: {[]argKind{ARG_NUMBER, ARG_REGISTER}, 2, func(a []arg) Instruction {
		return Load{Address: memory.Address(a[0].Number), Destination: a[1].Register}
	}},
	OP_STORE: {[]argKind{ARG_REGISTER, ARG_NUMBER}, 2, func(a []arg) Instruction {
		return Store{Source: a[0].Register, Address: memory.Address(a[1].Number)}
	}},
	OP_AND: {[]argKind{ARG_REGISTER, ARG_REGISTER}, 2, func(a []arg) Instruction { return And{a[0].Register, a[1].Register} }},
	OP_OR:  {[]argKind{ARG_REGISTER, ARG_REGISTER}, 2, func(a []arg) Instruction { return Or{a[0].Register, a[1].Register} }},
	OP_XOR: {[]argKind{ARG_REGISTER, ARG_REGISTER}, 2, func(a []arg) Instruction { return Xor{a[0].Register, a[1].Register} }},
	OP_NOT: {[]argKind{ARG_REGISTER}, 1, func(a []arg) Instruction { return Not{a[0].Register} }},
	OP_SHL: {[]argKind{ARG_REGISTER, ARG_NUMBER}, 2, func(a []arg) Instruction {
		return Shl{Operand: a[0].Register, Amount: int(a[1].Number)}
	}},
	OP_SHR: {[]argKind{ARG_REGISTER, ARG_NUMBER}, 2, func(a []arg) Instruction {
		return Shr{Operand: a[0].Register, Amount: int(a[1].Number)}
	}},
	OP_LIT: {[]argKind{ARG_REGISTER, ARG_NUMBER}, 2, func(a []arg) Instruction {
		return Lit{Destination: a[0].Register, Value: a[1].Number}
	}},
	OP_PRINTS:   {nil, 0, func(a []arg) Instruction { return Prints{} }},
	OP_PRINTR:   {[]argKind{ARG_REGISTER}, 1, func(a []arg) Instruction { return Printr{a[0].Register} }},
	OP_PRINTSTR: {[]argKind{ARG_REGISTER}, 1, func(a []arg) Instruction { return Printstr{a[0].Register} }},
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op, ok := ParseOp(words[0])
	if !ok {
		err = ErrMnemonicUnknown
		return
	}
	form := opForms[op]

	params := words[1:]
	if len(params) > len(form.Args) {
		err = ErrOpcodeExtraArgs
		return
	}
	if len(params) < form.Need {
		err = ErrOpcodeValueMissing
		return
	}

	var label string
	args := make([]arg, len(form.Args))
	for n, word := range params {
		switch form.Args[n] {
		case ARG_REGISTER:
			args[n].Register, err = asm.registerOf(word)
		case ARG_NUMBER:
			args[n].Number, err = asm.valueOf(word)
		case ARG_TARGET:
			args[n].Number, err = asm.valueOf(word)
			if err != nil && isLabel(word) {
				label = word
				err = nil
			}
		}
		if err != nil {
			return
		}
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo:      lineno,
		Pc:          asm.currentPc(),
		Words:       slices.Clone(words),
		Instruction: form.Make(args),
		LinkLabel:   label,
	})

	return
}

var reLabel = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)

// isLabel returns true if the word is a valid label name.
func isLabel(word string) bool {
	return reLabel.MatchString(word)
}
