// Package blocks defines the block type set consumed by the baking
// engine: one entry per concrete block id/metadata pair, carrying the
// resource names that locate its blockstate document.
package blocks

// RenderType classifies how a block is drawn. Only model-rendered
// blocks pass through the baking engine.
type RenderType string

const (
	// RenderModel marks blocks whose appearance comes from a block
	// model document.
	RenderModel RenderType = "model"
	// RenderLiquid marks fluid blocks drawn by the dedicated liquid
	// renderer.
	RenderLiquid RenderType = "liquid"
	// RenderNone marks invisible blocks (air and technical blocks).
	RenderNone RenderType = "none"
)

// MaxMetadata is the exclusive upper bound of the 4-bit metadata
// value attached to a block id.
const MaxMetadata = 16

// redstoneWireName gets a hardcoded tint override; its map color in
// the registry is the dull wire gray, not the rendered red.
const redstoneWireName = "minecraft:redstone_wire"

// redstoneWireColor is the packed override RGB for powered wire.
const redstoneWireColor = 0xFF3300

// Block is one concrete block type plus state.
type Block struct {
	// InternalName is the namespaced block identifier, e.g.
	// "minecraft:stone".
	InternalName string `json:"internalName"`
	// BlockState is the bracketed state suffix, e.g.
	// "[variant=granite]". Empty for stateless blocks.
	BlockState string `json:"blockState,omitempty"`
	// RenderType selects the renderer responsible for the block.
	RenderType RenderType `json:"renderType"`
	// ResourcePath names the blockstate document, e.g. "stone".
	ResourcePath string `json:"resourcePath"`
	// ResourceVariant is the variant key inside the blockstate
	// document, e.g. "variant=granite" or "normal".
	ResourceVariant string `json:"resourceVariant"`
	// Color is the 24-bit packed RGB map color.
	Color uint32 `json:"color"`
	// ID and Meta locate the block in the dense render table.
	ID   int `json:"id"`
	Meta int `json:"meta"`
}

// NameAndState returns the associative store key for this block,
// internal name plus state suffix.
func (b *Block) NameAndState() string {
	return b.InternalName + b.BlockState
}

// TintRGB returns the resolved per-block tint as separate channels.
func (b *Block) TintRGB() (r, g, b8 uint8) {
	color := b.Color
	if b.InternalName == redstoneWireName {
		color = redstoneWireColor
	}
	return uint8(color >> 16), uint8(color >> 8), uint8(color)
}

// Set is an ordered collection of block types.
type Set struct {
	blocks []Block
	maxID  int
}

// NewSet creates a block type set.
func NewSet(list []Block) *Set {
	s := &Set{blocks: list}
	for i := range list {
		if list[i].ID > s.maxID {
			s.maxID = list[i].ID
		}
	}
	return s
}

// All returns the block types in registry order.
func (s *Set) All() []Block {
	return s.blocks
}

// MaxID returns the highest block id in the set, bounding the dense
// render table.
func (s *Set) MaxID() int {
	return s.maxID
}

// Len returns the number of block types.
func (s *Set) Len() int {
	return len(s.blocks)
}
