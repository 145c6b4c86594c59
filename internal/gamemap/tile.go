package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDownStairs
)

// Opaque reports whether the tile blocks sight.
func (k TileKind) Opaque() bool { return k == TileWall }

// Obstructs reports whether the tile blocks movement on its own.
func (k TileKind) Obstructs() bool { return k == TileWall }

func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDownStairs:
		return "down-stairs"
	}
	return "unknown"
}
