package day07

import (
	"github.com/pkg/errors"

	"github.com/Taxel/everybody-codes-2024/parse"
	"github.com/Taxel/everybody-codes-2024/solution"
)

// StartPower is the power every chariot begins with.
const StartPower = 10

// Instruction is the per-tick power change.
type Instruction int8

const (
	Decrease Instruction = -1
	Maintain Instruction = 0
	Increase Instruction = 1
)

// ParseInstruction maps a track or plan symbol to an Instruction.
// S (start) maintains.
func ParseInstruction(r rune) (Instruction, error) {
	switch r {
	case '+':
		return Increase, nil
	case '-':
		return Decrease, nil
	case '=', 'S':
		return Maintain, nil
	}
	return Maintain, errors.Wrapf(solution.ErrMalformedInput, "instruction %q", r)
}

func (i Instruction) String() string {
	switch i {
	case Increase:
		return "+"
	case Decrease:
		return "-"
	}
	return "="
}

// Chariot is a single racer.
type Chariot struct {
	Name    string
	Power   int
	Essence int
	Plan    []Instruction
	next    int
}

// NewChariot returns a chariot at StartPower following plan.
func NewChariot(name string, plan []Instruction) *Chariot {
	return &Chariot{Name: name, Power: StartPower, Plan: plan}
}

// ParseChariot parses NAME:OP,OP,...
func ParseChariot(line string) (*Chariot, error) {
	ll, err := parse.ParseLabeledList(line)
	if err != nil {
		return nil, errors.Wrap(solution.ErrMalformedInput, err.Error())
	}
	plan := make([]Instruction, 0, len(ll.Items))
	for _, it := range ll.Items {
		if len(it) != 1 || it == "S" {
			return nil, errors.Wrapf(solution.ErrMalformedInput, "chariot %s: op %q", ll.Label, it)
		}
		ins, err := ParseInstruction(rune(it[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "chariot %s", ll.Label)
		}
		plan = append(plan, ins)
	}

	return NewChariot(ll.Label, plan), nil
}

// apply executes one tick with the given external instruction.
func (c *Chariot) apply(external Instruction) {
	ins := external
	if ins == Maintain {
		ins = c.Plan[c.next]
	}
	c.Power = max(c.Power+int(ins), 0)
	c.Essence += c.Power
	c.next = (c.next + 1) % len(c.Plan)
}
