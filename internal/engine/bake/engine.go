package bake

import (
	"sort"

	"go.uber.org/zap"

	"github.com/DragonQuiz/mcedit2/internal/assets"
	"github.com/DragonQuiz/mcedit2/internal/blocks"
)

// Engine drives the whole pipeline: it builds raw quads for every
// model-rendered block type at construction, then bakes them into the
// cooked store when an atlas becomes available.
//
// The pipeline is single-threaded and synchronous. Raw-quad
// construction completes before baking begins, and baking completes
// before any read of the cooked store.
type Engine struct {
	lib *assets.Library
	set *blocks.Set
	log *zap.Logger

	raw   map[string][]RawQuad
	slots map[string][2]int
	order []string

	textureNames map[string]struct{}
	firstTexture map[string]string

	store *Store
}

// New creates an engine over the given resource loader and block type
// set, and immediately builds raw quads for every block with a
// model render type. Failures tied to one block type are logged and
// that block type is skipped; the rest of the set still loads.
func New(loader assets.Loader, set *blocks.Set, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		lib:          assets.NewLibrary(loader),
		set:          set,
		log:          log,
		raw:          make(map[string][]RawQuad),
		slots:        make(map[string][2]int),
		textureNames: make(map[string]struct{}),
		firstTexture: make(map[string]string),
		store:        NewStore(set.MaxID()),
	}

	for i := range set.All() {
		block := &set.All()[i]
		if block.RenderType != blocks.RenderModel {
			continue
		}
		if err := e.loadBlock(block); err != nil {
			e.log.Warn("skipping block type",
				zap.String("block", block.NameAndState()),
				zap.Error(err))
		}
	}

	e.log.Info("raw quads built",
		zap.Int("blockStates", len(e.raw)),
		zap.Int("textures", len(e.textureNames)))

	return e
}

// loadBlock builds the raw quads for one block type+state.
func (e *Engine) loadBlock(block *blocks.Block) error {
	key := block.NameAndState()

	// First registration wins; a duplicate must not displace the
	// quads already bound to the first block's dense slot.
	if _, dup := e.slots[key]; dup {
		e.log.Debug("duplicate block name+state", zap.String("block", key))
		return nil
	}

	blockstate, err := e.lib.Blockstate(block.ResourcePath)
	if err != nil {
		return err
	}

	variant, ok := blockstate.Variant(block.ResourceVariant)
	if !ok {
		e.log.Debug("no variant for block",
			zap.String("block", key),
			zap.String("variant", block.ResourceVariant))
		return nil
	}

	textures, elements, err := resolveModel(e.lib, variant.Model)
	if err != nil {
		return err
	}
	if len(elements) == 0 {
		return nil
	}

	var tint [3]uint8
	tint[0], tint[1], tint[2] = block.TintRGB()

	resolve := func(ref string) (string, error) {
		name, err := resolveTexture(ref, textures)
		if err != nil {
			return "", err
		}
		e.textureNames[name] = struct{}{}
		if _, seen := e.firstTexture[key]; !seen {
			e.firstTexture[key] = name
		}
		return name, nil
	}

	var quads []RawQuad
	for i := range elements {
		elemQuads, err := buildElementQuads(&elements[i], variant, tint, resolve)
		if err != nil {
			return err
		}
		quads = append(quads, elemQuads...)
	}

	e.raw[key] = quads
	e.slots[key] = [2]int{block.ID, block.Meta}
	e.order = append(e.order, key)
	return nil
}

// CookQuads bakes every raw quad against the atlas and populates the
// cooked store. Calling it again after a successful bake is a no-op.
func (e *Engine) CookQuads(atlas AtlasLookup) {
	if e.store.Cooked() {
		return
	}

	var baked, dropped int
	for _, key := range e.order {
		rawQuads := e.raw[key]
		cooked := make([]CookedQuad, 0, len(rawQuads))
		for i := range rawQuads {
			quad := &rawQuads[i]
			rect, ok := atlas.Lookup(quad.Texture)
			if !ok {
				e.log.Warn("texture missing from atlas",
					zap.String("block", key),
					zap.String("texture", quad.Texture))
				dropped++
				continue
			}
			cooked = append(cooked, cookQuad(quad, rect))
			baked++
		}

		slot := e.slots[key]
		e.store.put(key, slot[0], slot[1], cooked)
	}
	e.store.markCooked()

	e.log.Info("quads cooked",
		zap.Int("baked", baked),
		zap.Int("dropped", dropped),
		zap.Int("blockStates", e.store.Len()))
}

// CookedQuadsByID returns the baked quads for a (block-id, metadata)
// pair. Empty before baking and for unpopulated slots.
func (e *Engine) CookedQuadsByID(id, meta int) []CookedQuad {
	return e.store.QuadsByID(id, meta)
}

// CookedQuads returns the baked quads for a block name and state.
func (e *Engine) CookedQuads(name, state string) []CookedQuad {
	return e.store.Quads(name, state)
}

// TextureNames returns every concrete texture identifier referenced
// by any loaded model, sorted. The atlas builder consumes this before
// baking.
func (e *Engine) TextureNames() []string {
	names := make([]string, 0, len(e.textureNames))
	for name := range e.textureNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FirstTexture returns the first texture resolved for a block
// name+state, used as its representative icon.
func (e *Engine) FirstTexture(name, state string) (string, bool) {
	texture, ok := e.firstTexture[name+state]
	return texture, ok
}

// Store exposes the cooked store for export and inspection.
func (e *Engine) Store() *Store {
	return e.store
}

// RawQuadCount returns the number of raw quads gathered for a block
// name+state.
func (e *Engine) RawQuadCount(name, state string) int {
	return len(e.raw[name+state])
}
