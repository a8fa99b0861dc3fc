package position

import (
	"github.com/mastercactapus/gpos/gcode"
)

// A Handler applies one command to p, which already holds a copy of the
// previous position. Handlers only change coordinates, modes and offsets;
// the derived fields are computed by the Engine afterwards.
type Handler func(e *Engine, p *Position, cmd gcode.Command)

// Dispatcher maps a command mnemonic to its Handler.
type Dispatcher map[string]Handler

// NewDispatcher returns the handlers for every supported command.
func NewDispatcher() Dispatcher {
	return Dispatcher{
		"G0":  processG0G1,
		"G1":  processG0G1,
		"G28": processG28,
		"G90": processG90,
		"G91": processG91,
		"G92": processG92,
		"M82": processM82,
		"M83": processM83,

		// arcs, firmware retraction and unit changes are accepted but do
		// not move the tracked position
		"G2":   inert,
		"G3":   inert,
		"G10":  inert,
		"G11":  inert,
		"G20":  inert,
		"G21":  inert,
		"M207": inert,
		"M208": inert,
	}
}

func inert(*Engine, *Position, gcode.Command) {}

type axisWord struct {
	Value float64
	Set   bool
}

type axisWords struct {
	X, Y, Z, E, F axisWord

	// O is a non-standard G92 parameter marking every axis homed.
	O bool
}

func readAxisWords(cmd gcode.Command) axisWords {
	var w axisWords
	for _, g := range cmd.Params {
		switch g.W {
		case 'X':
			w.X = axisWord{Value: g.Arg, Set: true}
		case 'Y':
			w.Y = axisWord{Value: g.Arg, Set: true}
		case 'Z':
			w.Z = axisWord{Value: g.Arg, Set: true}
		case 'E':
			w.E = axisWord{Value: g.Arg, Set: true}
		case 'F':
			w.F = axisWord{Value: g.Arg, Set: true}
		case 'O':
			w.O = true
		}
	}
	return w
}

func (w axisWords) hasAxis() bool {
	return w.X.Set || w.Y.Set || w.Z.Set || w.E.Set
}

// resolve applies the axis and feed words of a move to p in the current
// modes.
func (e *Engine) resolve(p *Position, w axisWords) {
	if w.F.Set {
		p.F = w.F.Value
		p.FNull = false
	}

	switch {
	case p.IsRelativeNull:
		if w.X.Set || w.Y.Set || w.Z.Set {
			e.log.Printf("ERROR: line %d: the XYZ axis mode is not set, cannot update position", p.FileLineNumber)
		}
	case p.IsRelative:
		e.resolveRelative(p, 'X', w.X, &p.X, p.XNull)
		e.resolveRelative(p, 'Y', w.Y, &p.Y, p.YNull)
		e.resolveRelative(p, 'Z', w.Z, &p.Z, p.ZNull)
	default:
		if w.X.Set {
			p.X, p.XNull = w.X.Value+p.XOffset, false
		}
		if w.Y.Set {
			p.Y, p.YNull = w.Y.Value+p.YOffset, false
		}
		if w.Z.Set {
			p.Z, p.ZNull = w.Z.Value+p.ZOffset, false
		}
	}

	if !w.E.Set {
		return
	}
	switch {
	case p.IsExtruderRelativeNull:
		e.log.Printf("ERROR: line %d: the E axis mode is not set, cannot update position", p.FileLineNumber)
	case p.IsExtruderRelative:
		p.E += w.E.Value
	default:
		p.E = w.E.Value + p.EOffset
	}
}

func (e *Engine) resolveRelative(p *Position, axis byte, w axisWord, v *float64, null bool) {
	if !w.Set {
		return
	}
	if null {
		e.log.Printf("ERROR: line %d: cannot update %c because the XYZ axis mode is relative and %c is null", p.FileLineNumber, axis, axis)
		return
	}
	*v += w.Value
}

func processG0G1(e *Engine, p *Position, cmd gcode.Command) {
	w := readAxisWords(cmd)
	if !w.E.Set {
		if w.Z.Set {
			p.IsXYZTravel = w.X.Set || w.Y.Set
		} else {
			p.IsXYTravel = w.X.Set || w.Y.Set
		}
	}
	e.resolve(p, w)
}

func processG28(e *Engine, p *Position, cmd gcode.Command) {
	x, y, z := cmd.Has('X'), cmd.Has('Y'), cmd.Has('Z')
	if !x && !y && !z {
		x, y, z = true, true, true
	}

	cfg := e.cfg
	if x {
		p.XHomed = true
		if cfg.HomeX != nil {
			p.X, p.XNull = *cfg.HomeX, false
		}
	}
	if y {
		p.YHomed = true
		if cfg.HomeY != nil {
			p.Y, p.YNull = *cfg.HomeY, false
		}
	}
	if z {
		p.ZHomed = true
		if cfg.HomeZ != nil {
			p.Z, p.ZNull = *cfg.HomeZ, false
		}
	}
}

func processG90(e *Engine, p *Position, _ gcode.Command) {
	p.IsRelative, p.IsRelativeNull = false, false
	if e.cfg.G90InfluencesExtruder {
		p.IsExtruderRelative, p.IsExtruderRelativeNull = false, false
	}
}

func processG91(e *Engine, p *Position, _ gcode.Command) {
	p.IsRelative, p.IsRelativeNull = true, false
	if e.cfg.G90InfluencesExtruder {
		p.IsExtruderRelative, p.IsExtruderRelativeNull = true, false
	}
}

func processM82(_ *Engine, p *Position, _ gcode.Command) {
	p.IsExtruderRelative, p.IsExtruderRelativeNull = false, false
}

func processM83(_ *Engine, p *Position, _ gcode.Command) {
	p.IsExtruderRelative, p.IsExtruderRelativeNull = true, false
}

func processG92(_ *Engine, p *Position, cmd gcode.Command) {
	w := readAxisWords(cmd)

	if w.O {
		// workaround for printers that are never sent G28
		p.XHomed, p.YHomed, p.ZHomed = true, true, true
	}

	if !w.O && !w.hasAxis() {
		if !p.XNull {
			p.XOffset = p.X
		}
		if !p.YNull {
			p.YOffset = p.Y
		}
		if !p.ZNull {
			p.ZOffset = p.Z
		}
		p.EOffset = p.E
		return
	}

	setOffset(w.X, &p.X, &p.XOffset, &p.XNull, p.XHomed)
	setOffset(w.Y, &p.Y, &p.YOffset, &p.YNull, p.YHomed)
	setOffset(w.Z, &p.Z, &p.ZOffset, &p.ZNull, p.ZHomed)
	if w.E.Set {
		p.EOffset = p.E - w.E.Value
	}
}

// setOffset shifts the coordinate system so the current value reads as w.
// An axis without a known, homed value takes w as its absolute value.
func setOffset(w axisWord, v, offset *float64, null *bool, homed bool) {
	if !w.Set {
		return
	}
	if !*null && homed {
		*offset = *v - w.Value
		return
	}
	*v = w.Value
	*offset = 0
	*null = false
}
