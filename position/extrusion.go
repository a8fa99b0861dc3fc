package position

import (
	"github.com/mastercactapus/gpos/coord"
)

// updateExtrusion derives the extruder state of p from its E delta.
func (e *Engine) updateExtrusion(p, prev *Position) {
	if coord.Greater(p.ERelative, 0) && prev.IsExtruding && !prev.IsExtrudingStart {
		// still extruding, the state flags carried over from prev are correct
		p.ExtrusionLength = p.ERelative
		return
	}

	p.RetractionLength -= p.ERelative
	if coord.LessEq(p.RetractionLength, 0) {
		// a negative retraction is what was extruded past the retraction
		p.ExtrusionLength = -p.RetractionLength
		p.RetractionLength = 0
	} else {
		p.ExtrusionLength = 0
	}

	if coord.Greater(prev.RetractionLength, p.RetractionLength) {
		p.DeretractionLength = prev.RetractionLength - p.RetractionLength
	} else {
		p.DeretractionLength = 0
	}

	threshold := e.cfg.RetractionLength
	p.IsExtrudingStart = coord.Greater(p.ExtrusionLength, 0) && !prev.IsExtruding
	p.IsExtruding = coord.Greater(p.ExtrusionLength, 0)
	p.IsPrimed = coord.IsZero(p.ExtrusionLength) && coord.IsZero(p.RetractionLength)
	p.IsRetractingStart = !prev.IsRetracting && coord.Greater(p.RetractionLength, 0)
	p.IsRetracting = coord.Greater(p.RetractionLength, prev.RetractionLength)
	p.IsPartiallyRetracted = coord.Greater(p.RetractionLength, 0) && coord.Less(p.RetractionLength, threshold)
	p.IsRetracted = coord.GreaterEq(p.RetractionLength, threshold)
	p.IsDeretractingStart = coord.Greater(p.DeretractionLength, 0) && !prev.IsDeretracting
	p.IsDeretracting = coord.Greater(p.DeretractionLength, prev.DeretractionLength)
	p.IsDeretracted = coord.Greater(prev.RetractionLength, 0) && coord.IsZero(p.RetractionLength)
}
