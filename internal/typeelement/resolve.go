package typeelement

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/buildsim/archetype-cli/internal/model"
)

// ErrKeyNotFound is returned by ResolveByKey for an absent record key.
var ErrKeyNotFound = eris.New("typeelement: record key not found")

// Options controls characteristic-based resolution.
type Options struct {
	// Kind overrides the record category to match. Used when an element is
	// populated from records of a logically different kind, e.g. an
	// interior partition loaded from InnerWall records.
	Kind model.ElementKind

	// ReverseLayers assembles the layer stack in reverse record order.
	// Needed for the far side of a zone-boundary element so both zones see
	// a physically consistent stack.
	ReverseLayers bool
}

// Resolution reports the outcome of a characteristic-based lookup. Matched
// is false when no record satisfied the predicate; the element is left
// untouched in that case and the caller decides whether that is fatal.
type Resolution struct {
	Matched bool
	Key     string
}

// Resolve finds the construction record matching the element's kind, the
// construction year and the technique tag, and copies its coefficients and
// layer stack onto the element.
//
// A record matches when its key starts with the kind string, its inclusive
// age range contains year, and its construction type equals technique.
// Several records may match; the one with the most specific (longest) key
// wins, with equal-length keys tie-broken by last in lexicographic order.
func Resolve(el *model.BuildingElement, year int, technique string, b *Bindings, opts Options) (Resolution, error) {
	kind := opts.Kind
	if kind == "" {
		kind = el.Kind
	}

	var best string
	for _, key := range b.keys {
		rec := b.records[key]
		if !strings.HasPrefix(key, string(kind)) {
			continue
		}
		if year < rec.AgeRange[0] || year > rec.AgeRange[1] {
			continue
		}
		if rec.ConstructionType != technique {
			continue
		}
		if moreSpecific(key, best) {
			best = key
		}
	}
	if best == "" {
		zap.L().Debug("typeelement: no record matched",
			zap.String("kind", string(kind)),
			zap.Int("year", year),
			zap.String("technique", technique),
		)
		return Resolution{}, nil
	}

	if err := apply(el, b.records[best], b, opts.ReverseLayers); err != nil {
		return Resolution{}, eris.Wrapf(err, "typeelement: apply record %q", best)
	}
	return Resolution{Matched: true, Key: best}, nil
}

// ResolveByKey copies the record stored under key onto the element,
// bypassing year/technique matching. Returns ErrKeyNotFound for an absent
// key.
func ResolveByKey(el *model.BuildingElement, key string, b *Bindings, reverseLayers bool) error {
	rec, ok := b.records[key]
	if !ok {
		return eris.Wrapf(ErrKeyNotFound, "typeelement: key %q", key)
	}
	if err := apply(el, rec, b, reverseLayers); err != nil {
		return eris.Wrapf(err, "typeelement: apply record %q", key)
	}
	return nil
}

// moreSpecific reports whether candidate beats current under the documented
// tie-break: longest key first, then lexicographically last.
func moreSpecific(candidate, current string) bool {
	if current == "" {
		return true
	}
	if len(candidate) != len(current) {
		return len(candidate) > len(current)
	}
	return candidate > current
}

// apply copies record data onto the element: age range, technique tag, the
// coefficients of the element's class, and a freshly built layer stack.
func apply(el *model.BuildingElement, rec Record, b *Bindings, reverse bool) error {
	el.AgeRange = rec.AgeRange
	el.ConstructionType = rec.ConstructionType
	el.InnerRadiation = rec.InnerRadiation
	el.InnerConvection = rec.InnerConvection

	switch el.Kind.Class() {
	case model.ClassOpaque:
		el.OuterRadiation = rec.OuterRadiation
		el.OuterConvection = rec.OuterConvection
	case model.ClassWindow:
		el.OuterRadiation = rec.OuterRadiation
		el.OuterConvection = rec.OuterConvection
		el.GValue = rec.GValue
		el.AConv = rec.AConv
		el.ShadingGTotal = rec.ShadingGTotal
		el.ShadingMaxIrr = rec.ShadingMaxIrr
	}

	layers := make([]model.Layer, 0, len(rec.Layers))
	for i := range rec.Layers {
		spec := rec.Layers[i]
		if reverse {
			spec = rec.Layers[len(rec.Layers)-1-i]
		}
		layer := model.Layer{ID: spec.ID, Thickness: spec.Thickness}
		if err := b.ResolveMaterial(&layer.Material, spec.MaterialID); err != nil {
			return err
		}
		layers = append(layers, layer)
	}
	el.Layers = layers
	return nil
}
