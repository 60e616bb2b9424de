package mathcatch

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Operator is one of the four arithmetic operators an equation can use.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// Operators lists every operator in a fixed order, for uniform sampling.
var Operators = [...]Operator{OpAdd, OpSub, OpMul, OpDiv}

// Symbol returns the text a falling symbol carries for this operator.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Apply evaluates a <op> b. Division is integer division; callers only
// build equations where it is exact.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (o Operator) String() string {
	return o.Symbol()
}

// Slot identifies one of the four components of an equation.
type Slot int

const (
	SlotLeft Slot = iota
	SlotRight
	SlotOperator
	SlotResult
)

var slots = [...]Slot{SlotLeft, SlotRight, SlotOperator, SlotResult}

func (s Slot) String() string {
	switch s {
	case SlotLeft:
		return "first"
	case SlotRight:
		return "second"
	case SlotOperator:
		return "operator"
	case SlotResult:
		return "result"
	default:
		return "unknown"
	}
}

// Placeholder is shown in place of the masked component.
const Placeholder = "?"

// Equation is "Left Op Right = Result" with exactly one component masked.
// Equations are immutable values; a solved equation is replaced, never edited.
type Equation struct {
	Left   int
	Op     Operator
	Right  int
	Result int
	Masked Slot
}

// Answer returns the text of the masked component, which is the value of
// the one falling symbol that solves the equation.
func (e Equation) Answer() string {
	switch e.Masked {
	case SlotLeft:
		return strconv.Itoa(e.Left)
	case SlotRight:
		return strconv.Itoa(e.Right)
	case SlotOperator:
		return e.Op.Symbol()
	default:
		return strconv.Itoa(e.Result)
	}
}

// Text renders the equation with the masked component replaced by Placeholder,
// e.g. "3 + ? = 5".
func (e Equation) Text() string {
	parts := e.parts()
	parts[e.Masked] = Placeholder
	return format(parts)
}

// Solved renders the equation with every component visible.
func (e Equation) Solved() string {
	return format(e.parts())
}

func (e Equation) parts() [4]string {
	var p [4]string
	p[SlotLeft] = strconv.Itoa(e.Left)
	p[SlotRight] = strconv.Itoa(e.Right)
	p[SlotOperator] = e.Op.Symbol()
	p[SlotResult] = strconv.Itoa(e.Result)
	return p
}

func format(p [4]string) string {
	return fmt.Sprintf("%s %s %s = %s", p[SlotLeft], p[SlotOperator], p[SlotRight], p[SlotResult])
}

// EquationGenerator produces random single-digit equations.
type EquationGenerator struct {
	rng *rand.Rand
}

// NewEquationGenerator creates a generator drawing from rng.
func NewEquationGenerator(rng *rand.Rand) *EquationGenerator {
	return &EquationGenerator{rng: rng}
}

// Generate returns a new equation whose operands and result are all in [0,9].
// Operands are drawn by rejection sampling over 1..9; the domain is small
// enough that every loop ends after a handful of draws.
func (g *EquationGenerator) Generate() Equation {
	op := Operators[g.rng.Intn(len(Operators))]

	var left, right int
	switch op {
	case OpDiv:
		// Build the dividend from the quotient so the division is exact.
		for {
			right = g.digit()
			left = right * g.digit()
			if left <= 9 {
				break
			}
		}
	case OpMul:
		for {
			left, right = g.digit(), g.digit()
			if left*right <= 9 {
				break
			}
		}
	case OpAdd:
		for {
			left, right = g.digit(), g.digit()
			if left+right <= 9 {
				break
			}
		}
	case OpSub:
		for {
			left, right = g.digit(), g.digit()
			if left >= right {
				break
			}
		}
	}

	return Equation{
		Left:   left,
		Op:     op,
		Right:  right,
		Result: op.Apply(left, right),
		Masked: slots[g.rng.Intn(len(slots))],
	}
}

// digit returns a uniform value in 1..9.
func (g *EquationGenerator) digit() int {
	return g.rng.Intn(9) + 1
}
