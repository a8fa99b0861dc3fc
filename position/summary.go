package position

import (
	"github.com/mastercactapus/gpos/feature"
)

// LayerSummary describes one printed layer.
type LayerSummary struct {
	Layer     int     `json:"layer"`
	Height    float64 `json:"height"`
	FirstLine int     `json:"first_line"`
	LastLine  int     `json:"last_line"`
	Commands  int     `json:"commands"`
	Extruded  float64 `json:"extruded"`
	ZHops     int     `json:"zhops"`

	// BestFeature is the highest quality feature printed on the layer.
	BestFeature feature.Type `json:"best_feature"`

	features map[feature.Type]bool
}

// Summary accumulates LayerSummary values from tracked positions.
type Summary struct {
	Layers      []LayerSummary `json:"layers"`
	Commands    int            `json:"commands"`
	Ignored     int            `json:"ignored"`
	Extruded    float64        `json:"extruded"`
	OutOfBounds int            `json:"out_of_bounds"`
}

// Add records p. Positions before the first layer change only count
// toward the totals.
func (s *Summary) Add(p Position) {
	s.Commands++
	if p.GcodeIgnored {
		s.Ignored++
		return
	}
	if !p.IsInBounds {
		s.OutOfBounds++
	}
	if p.IsExtruding {
		s.Extruded += p.ExtrusionLength
	}

	if p.IsLayerChange {
		s.Layers = append(s.Layers, LayerSummary{
			Layer:     p.Layer,
			Height:    p.Height,
			FirstLine: p.FileLineNumber,
			features:  make(map[feature.Type]bool),
		})
	}
	if len(s.Layers) == 0 {
		return
	}

	l := &s.Layers[len(s.Layers)-1]
	l.LastLine = p.FileLineNumber
	l.Commands++
	if p.IsExtruding {
		l.Extruded += p.ExtrusionLength
	}
	if p.IsZHop {
		l.ZHops++
	}
	if p.FeatureType != feature.Unknown && !l.features[p.FeatureType] {
		l.features[p.FeatureType] = true
		if len(l.features) == 1 {
			l.BestFeature = p.FeatureType
		} else {
			l.BestFeature = feature.Best(l.BestFeature, p.FeatureType)
		}
	}
}
