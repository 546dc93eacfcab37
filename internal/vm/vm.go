// Package vm contains a toy bytecode interpreter. It ships in this
// repository as a standalone demonstration program and does not use the
// allocator.
package vm

import (
	"errors"
	"fmt"
	"io"
)

// Opcode bytes. Only MOV, NOP, and HLT have semantics so far; the remaining
// opcodes decode to ErrUnimplemented.
const (
	OpAdd  byte = 0x01
	OpSub  byte = 0x02
	OpJmp  byte = 0x03
	OpJz   byte = 0x04
	OpJlz  byte = 0x05
	OpJmz  byte = 0x06
	OpMov  byte = 0x07
	OpLdp  byte = 0x08
	OpStp  byte = 0x09
	OpAnd  byte = 0x0A
	OpNot  byte = 0x0B
	OpOr   byte = 0x0C
	OpNor  byte = 0x0D
	OpNand byte = 0x0E
	OpXor  byte = 0x0F
	OpXnor byte = 0x10
	OpHlt  byte = 0x11
	OpNop  byte = 0x12
	OpInt  byte = 0x13
	OpCmp  byte = 0x14
)

// MOV addressing modes. Word and dword immediates are little-endian.
const (
	ModeRR byte = 0x01 // register <- register
	ModeRB byte = 0x02 // register <- immediate byte
	ModeRW byte = 0x03 // register <- immediate word
	ModeRD byte = 0x04 // register <- immediate dword
)

var (
	// ErrUnimplemented indicates a decoded opcode that has no semantics yet.
	ErrUnimplemented = errors.New("vm: opcode not implemented")

	// ErrBadOpcode indicates a byte outside the opcode table.
	ErrBadOpcode = errors.New("vm: unknown opcode")

	// ErrBadRegister indicates a register id outside 0..3.
	ErrBadRegister = errors.New("vm: register id out of range")

	// ErrBadMode indicates an unknown addressing mode byte.
	ErrBadMode = errors.New("vm: unknown addressing mode")

	// ErrTruncated indicates bytecode that ends in the middle of an
	// instruction.
	ErrTruncated = errors.New("vm: bytecode ends mid-instruction")
)

// Program is one running instance of the interpreter: four general-purpose
// registers, the code it executes, and a program counter.
type Program struct {
	Regs [4]uint32

	// Trace, when non-nil, receives a register dump after every executed
	// instruction.
	Trace io.Writer

	code    []byte
	counter int
	halted  bool
}

// New returns a program positioned at the first byte of code.
func New(code []byte) *Program {
	return &Program{code: code}
}

// Halted reports whether the program executed HLT.
func (p *Program) Halted() bool { return p.halted }

// Counter returns the current program counter.
func (p *Program) Counter() int { return p.counter }

// Run executes instructions until HLT, the end of the code, or maxSteps
// instructions (0 means no limit).
func (p *Program) Run(maxSteps int) error {
	for steps := 0; !p.halted && p.counter < len(p.code); steps++ {
		if maxSteps > 0 && steps >= maxSteps {
			return nil
		}
		if err := p.step(); err != nil {
			return err
		}
		if p.Trace != nil {
			p.dump()
		}
	}
	return nil
}

// step decodes and executes a single instruction.
func (p *Program) step() error {
	op, err := p.nextByte()
	if err != nil {
		return err
	}

	switch op {
	case OpMov:
		return p.mov()
	case OpNop:
		return nil
	case OpHlt:
		p.halted = true
		return nil
	case OpAdd, OpSub, OpJmp, OpJz, OpJlz, OpJmz, OpLdp, OpStp,
		OpAnd, OpNot, OpOr, OpNor, OpNand, OpXor, OpXnor, OpInt, OpCmp:
		// TODO: give LDP/STP semantics against a process heap once the
		// interpreter is wired to the allocator.
		return fmt.Errorf("%w: 0x%02X", ErrUnimplemented, op)
	default:
		return fmt.Errorf("%w: 0x%02X", ErrBadOpcode, op)
	}
}

func (p *Program) mov() error {
	mode, err := p.nextByte()
	if err != nil {
		return err
	}
	reg, err := p.register()
	if err != nil {
		return err
	}

	switch mode {
	case ModeRR:
		src, err := p.register()
		if err != nil {
			return err
		}
		p.Regs[reg] = p.Regs[src]
	case ModeRB:
		b, err := p.nextByte()
		if err != nil {
			return err
		}
		p.Regs[reg] = uint32(b)
	case ModeRW:
		w, err := p.nextWord()
		if err != nil {
			return err
		}
		p.Regs[reg] = uint32(w)
	case ModeRD:
		d, err := p.nextDword()
		if err != nil {
			return err
		}
		p.Regs[reg] = d
	default:
		return fmt.Errorf("%w: 0x%02X", ErrBadMode, mode)
	}
	return nil
}

func (p *Program) register() (int, error) {
	b, err := p.nextByte()
	if err != nil {
		return 0, err
	}
	if int(b) >= len(p.Regs) {
		return 0, fmt.Errorf("%w: %d", ErrBadRegister, b)
	}
	return int(b), nil
}

func (p *Program) nextByte() (byte, error) {
	if p.counter >= len(p.code) {
		return 0, ErrTruncated
	}
	b := p.code[p.counter]
	p.counter++
	return b, nil
}

func (p *Program) nextWord() (uint16, error) {
	lo, err := p.nextByte()
	if err != nil {
		return 0, err
	}
	hi, err := p.nextByte()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (p *Program) nextDword() (uint32, error) {
	lo, err := p.nextWord()
	if err != nil {
		return 0, err
	}
	hi, err := p.nextWord()
	if err != nil {
		return 0, err
	}
	return uint32(lo) | uint32(hi)<<16, nil
}

func (p *Program) dump() {
	fmt.Fprintf(p.Trace, "counter=%d", p.counter)
	for i, r := range p.Regs {
		fmt.Fprintf(p.Trace, " reg%d=%d", i, r)
	}
	fmt.Fprintln(p.Trace)
}
