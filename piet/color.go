// Package piet implements the Piet color/codel data model: the 20-color
// palette, the hue/lightness transition algebra that drives the Piet
// instruction set, and the codel grid with its region finder.
// https://www.dangermouse.net/esoteric/piet.html
package piet

import "fmt"

// Hue values, 0..5, increasing clockwise around the Piet hue wheel.
const (
	HueRed = iota
	HueYellow
	HueGreen
	HueCyan
	HueBlue
	HueMagenta
	numHues
)

// Lightness values, 0..2, increasing darker-ward.
const (
	LightLight = iota
	LightNormal
	LightDark
	numLights
)

// Sentinel lightness values for the two achromatic colors. These never
// appear as the Light field of a chromatic Color; the White and Black
// variables are the only values that carry them.
const (
	lightWhite = iota + numLights
	lightBlack
)

// Color is one of the 20 canonical Piet colors: 6 hues times 3
// lightnesses, plus white and black.
type Color struct {
	Hue   int8
	Light int8
}

// White is the achromatic "do nothing, just slide" color.
var White = Color{Light: lightWhite}

// Black is the achromatic wall/block color.
var Black = Color{Light: lightBlack}

// NewColor returns the chromatic color at the given hue (mod 6) and
// lightness (mod 3).
func NewColor(hue, light int) Color {
	return Color{Hue: int8(((hue % numHues) + numHues) % numHues), Light: int8(((light % numLights) + numLights) % numLights)}
}

// IsWhite reports whether c is the white sentinel.
func (c Color) IsWhite() bool { return c.Light == lightWhite }

// IsBlack reports whether c is the black sentinel.
func (c Color) IsBlack() bool { return c.Light == lightBlack }

// IsChromatic reports whether c is one of the 18 hue/lightness colors
// (as opposed to white or black).
func (c Color) IsChromatic() bool { return !c.IsWhite() && !c.IsBlack() }

var hueNames = [numHues]string{"red", "yellow", "green", "cyan", "blue", "magenta"}
var lightNames = [numLights]string{"light", "normal", "dark"}

func (c Color) String() string {
	switch {
	case c.IsWhite():
		return "white"
	case c.IsBlack():
		return "black"
	default:
		return fmt.Sprintf("%s-%s", lightNames[c.Light], hueNames[c.Hue])
	}
}

// Op is one of the 17 stack operations a chromatic-to-chromatic color
// transition can encode, plus noop for a same-color transition.
type Op int

const (
	OpNoop Op = iota
	OpPush
	OpPop
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNot
	OpGreater
	OpPointer
	OpSwitch
	OpDup
	OpRoll
	OpInNum
	OpInChar
	OpOutNum
	OpOutChar
)

var opNames = map[Op]string{
	OpNoop: "noop", OpPush: "push", OpPop: "pop", OpAdd: "add", OpSub: "sub",
	OpMul: "mul", OpDiv: "div", OpMod: "mod", OpNot: "not", OpGreater: "greater",
	OpPointer: "pointer", OpSwitch: "switch", OpDup: "dup", OpRoll: "roll",
	OpInNum: "in(num)", OpInChar: "in(char)", OpOutNum: "out(num)", OpOutChar: "out(char)",
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// delta is a (hueDelta, lightDelta) pair, each taken mod (numHues,
// numLights) respectively.
type delta struct {
	hue, light int
}

// deltaToOp is the full 6x3 table from spec.md section 4.2.
var deltaToOp = map[delta]Op{
	{0, 0}: OpNoop, {0, 1}: OpPush, {0, 2}: OpPop,
	{1, 0}: OpAdd, {1, 1}: OpSub, {1, 2}: OpMul,
	{2, 0}: OpDiv, {2, 1}: OpMod, {2, 2}: OpNot,
	{3, 0}: OpGreater, {3, 1}: OpPointer, {3, 2}: OpSwitch,
	{4, 0}: OpDup, {4, 1}: OpRoll, {4, 2}: OpInNum,
	{5, 0}: OpInChar, {5, 1}: OpOutNum, {5, 2}: OpOutChar,
}

// opToDelta is the inverse of deltaToOp, built once at init time and
// consulted by the compiler (layout.Build) to pick a target color for
// a given op.
var opToDelta map[Op]delta

func init() {
	opToDelta = make(map[Op]delta, len(deltaToOp))
	for d, op := range deltaToOp {
		opToDelta[op] = d
	}
}

// Transition returns the op encoded by moving from c to next. Both
// colors must be chromatic; callers are responsible for handling
// white/black specially (the execution engine never calls Transition
// on a sliding move).
func Transition(c, next Color) Op {
	hd := ((int(next.Hue) - int(c.Hue)) % numHues + numHues) % numHues
	ld := ((int(next.Light) - int(c.Light)) % numLights + numLights) % numLights
	return deltaToOp[delta{hd, ld}]
}

// OpToDelta returns the (hueDelta, lightDelta) step that realizes op,
// and false if op has no single-step encoding (pointer/switch/noop all
// do; every op in the 18-entry table does).
func OpToDelta(op Op) (hueDelta, lightDelta int, ok bool) {
	d, ok := opToDelta[op]
	return d.hue, d.light, ok
}

// NextColor returns the color reached by stepping c through the given
// op's (hueDelta, lightDelta), for use by the layout engine when
// synthesizing a transition.
func NextColor(c Color, op Op) Color {
	d := opToDelta[op]
	return NewColor(int(c.Hue)+d.hue, int(c.Light)+d.light)
}
