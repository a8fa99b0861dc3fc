package position

import (
	"github.com/mastercactapus/gpos/coord"
)

// updateLayer tracks priming, extrusion height, layers and z-hop. It only
// acts when the nozzle rose above the last extrusion height.
func (e *Engine) updateLayer(p, prev *Position) {
	if p.ZNull || !coord.Greater(p.Z, p.LastExtrusionHeight) {
		return
	}

	// after the first layer a deretraction also counts, so layer changes are
	// seen even when the first move on a new layer only unretracts
	if p.IsExtruding || (p.Layer > 0 && p.IsDeretracted) {
		if !p.IsPrinterPrimed {
			if coord.Greater(e.cfg.PrimingHeight, 0) {
				p.IsPrinterPrimed = coord.Less(p.Z, e.cfg.PrimingHeight)
			} else {
				p.IsPrinterPrimed = true
			}
		}

		if p.IsPrinterPrimed && p.IsInBounds {
			p.LastExtrusionHeight = p.Z
			p.LastExtrusionHeightNull = false

			if coord.GreaterEq(p.Z, prev.Height+e.cfg.MinimumLayerHeight) {
				p.Height = p.Z
				p.IsLayerChange = true
				p.Layer++
			}
		}
	}

	if p.IsExtruding || p.LastExtrusionHeightNull {
		p.IsZHop = false
		return
	}
	p.IsZHop = coord.GreaterEq(p.Z-p.LastExtrusionHeight, e.cfg.ZLiftHeight)
}
