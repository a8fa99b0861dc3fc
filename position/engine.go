// Package position tracks the state of a printer toolhead as gcode commands
// are consumed one at a time.
package position

import (
	"errors"
	"log"

	"github.com/mastercactapus/gpos/coord"
	"github.com/mastercactapus/gpos/feature"
	"github.com/mastercactapus/gpos/gcode"
)

// ErrNoUndo is returned by UndoUpdate when no update is left to undo.
var ErrNoUndo = errors.New("no update to undo")

// Engine keeps a short history of positions in a ring buffer and derives a
// new Position for every command. It is not safe for concurrent use and
// commands must be supplied in file order.
type Engine struct {
	cfg        Config
	log        *log.Logger
	dispatch   Dispatcher
	classifier *feature.Classifier

	positions []Position
	cur       int
	undoable  int
}

// NewEngine returns an Engine whose history is filled with the initial
// position described by cfg.
func NewEngine(cfg Config) *Engine {
	return NewEngineWith(cfg, NewDispatcher())
}

// NewEngineWith is like NewEngine but uses the provided dispatch table.
func NewEngineWith(cfg Config, d Dispatcher) *Engine {
	e := &Engine{
		cfg:        cfg,
		log:        cfg.Logger,
		dispatch:   d,
		classifier: feature.NewClassifier(cfg.Dialect),
		positions:  make([]Position, cfg.depth()),
	}
	if e.log == nil {
		e.log = log.Default()
	}

	initial := initialPosition(cfg)
	for i := range e.positions {
		e.positions[i] = initial
	}
	e.cur = len(e.positions) - 1

	return e
}

// Dialect returns the slicer dialect detected so far.
func (e *Engine) Dialect() feature.Dialect { return e.classifier.Dialect() }

// Current returns the position after the last processed command.
func (e *Engine) Current() Position { return e.positions[e.cur] }

// Previous returns the position before the last processed command.
func (e *Engine) Previous() Position { return e.positions[e.prevIndex()] }

func (e *Engine) prevIndex() int {
	return (e.cur - 1 + len(e.positions)) % len(e.positions)
}

// UpdateLine parses a single line of gcode and applies it.
func (e *Engine) UpdateLine(line string, fileLine, gcodeNumber int) error {
	cmd, err := gcode.ParseLine(line)
	if err != nil {
		return err
	}
	e.Update(cmd, fileLine, gcodeNumber)
	return nil
}

// Update applies cmd. A comment-only command only feeds the feature
// classifier; anything else advances the history by one position.
func (e *Engine) Update(cmd gcode.Command, fileLine, gcodeNumber int) {
	if cmd.IsComment() {
		e.classifier.Comment(cmd.Comment)
		return
	}

	prev := &e.positions[e.cur]
	e.cur = (e.cur + 1) % len(e.positions)
	// one slot behind the cursor must stay valid for Previous
	if e.undoable < len(e.positions)-2 {
		e.undoable++
	}
	p := &e.positions[e.cur]
	*p = *prev
	p.resetState()
	p.Command = cmd.Clone()

	p.FeatureType = e.classifier.Classify(cmd.Comment)
	p.FileLineNumber = fileLine
	p.GcodeNumber = gcodeNumber

	h, ok := e.dispatch[cmd.Name]
	if !ok {
		return
	}
	p.GcodeIgnored = false
	h(e, p, cmd)

	p.ERelative = p.E - prev.E
	p.ZRelative = p.Z - prev.Z
	p.HasXYPositionChanged = !coord.IsEqual(p.X, prev.X) || !coord.IsEqual(p.Y, prev.Y)
	p.HasPositionChanged = !p.XYZ().Equal(prev.XYZ()) ||
		!coord.IsZero(p.ERelative) ||
		p.XNull != prev.XNull ||
		p.YNull != prev.YNull ||
		p.ZNull != prev.ZNull

	// homing is not required: an explicit G92 is enough to locate the head
	if !p.HasDefinitePosition {
		p.HasDefinitePosition = p.IsMetric && !p.IsMetricNull &&
			!p.XNull && !p.YNull && !p.ZNull &&
			!p.IsRelativeNull && !p.IsExtruderRelativeNull
	}

	if !p.HasPositionChanged {
		return
	}

	p.ExtrusionLengthTotal += p.ERelative
	e.updateExtrusion(p, prev)
	if e.cfg.Bounds.IsBound() {
		p.IsInBounds = e.cfg.Bounds.Contains(p.XYZ())
	}
	e.updateLayer(p, prev)
}

// UndoUpdate steps the history back by one position. The abandoned slot is
// overwritten by the next Update. At most Depth-2 consecutive updates can be
// undone, so Previous always returns an earlier position.
func (e *Engine) UndoUpdate() error {
	if e.undoable == 0 {
		return ErrNoUndo
	}
	e.undoable--
	e.cur = e.prevIndex()
	return nil
}
