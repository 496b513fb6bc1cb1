// Package cpu implements the 13-bit instruction decoder and interpreter.
//
// An instruction Word is a 13 character string of binary digits. The first
// five digits select the Opcode; the remaining eight hold operands, either
// 2-bit register codes or 6-bit literal amounts, laid out per opcode.
//
// The Cpu holds four 32-bit registers, one optional array per register
// code, and an instruction pointer into a loaded Program. Programs are
// validated as a whole before execution starts: the literal Stop word must
// be present and every opcode must be in range.
package cpu
