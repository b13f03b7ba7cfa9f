package board

// Kind tags the variant held by a Block.
type Kind uint8

const (
	// KindBlank marks an empty position.
	KindBlank Kind = iota
	// KindActive marks an occupied position.
	KindActive
)

// Block is the immutable state held at a grid position. Blocks are shared by
// pointer between snapshots, so a Block must never be modified once it is
// reachable from a Grid.
type Block struct {
	Kind Kind
	// Falling is only meaningful for KindActive.
	Falling bool
}

// Blank is the canonical empty block. Every blank position references it.
var Blank = &Block{Kind: KindBlank}

// NewActive allocates an occupied block.
func NewActive(falling bool) *Block {
	return &Block{Kind: KindActive, Falling: falling}
}

// IsActive reports whether the block is occupied. A nil block reads as blank.
func (b *Block) IsActive() bool {
	return b != nil && b.Kind == KindActive
}

// String renders the block the way the trace tool prints it.
func (b *Block) String() string {
	switch {
	case !b.IsActive():
		return "."
	case b.Falling:
		return "#"
	default:
		return "@"
	}
}

// Equal reports whether two blocks hold the same value. The kind is compared
// first; Falling only matters when both blocks are active. Nil compares as
// Blank.
func Equal(a, b *Block) bool {
	if a == b {
		return true
	}
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return false
	}
	if ka == KindActive {
		return a.Falling == b.Falling
	}
	return true
}

func kindOf(b *Block) Kind {
	if b == nil {
		return KindBlank
	}
	return b.Kind
}
