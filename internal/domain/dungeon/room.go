package dungeon

// RoomType represents the semantic role of a room
type RoomType string

const (
	RoomTypeEmpty    RoomType = "EMPTY"
	RoomTypeCombat   RoomType = "COMBAT"
	RoomTypeTreasure RoomType = "TREASURE"
	RoomTypeMerchant RoomType = "MERCHANT"
	RoomTypeTrap     RoomType = "TRAP"
	RoomTypeEntrance RoomType = "ENTRANCE"
	RoomTypeExit     RoomType = "EXIT"

	// RoomTypeBoss is reserved and not yet assigned by generation
	RoomTypeBoss RoomType = "BOSS"
)

// Direction is one of the four cardinal directions
type Direction string

const (
	DirectionNorth Direction = "north"
	DirectionSouth Direction = "south"
	DirectionEast  Direction = "east"
	DirectionWest  Direction = "west"
)

// Opposite returns the facing direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionNorth:
		return DirectionSouth
	case DirectionSouth:
		return DirectionNorth
	case DirectionEast:
		return DirectionWest
	case DirectionWest:
		return DirectionEast
	}
	return d
}

// Delta returns the grid offset of one step in the direction. North is y-1,
// matching the original top-left-origin grid.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionNorth:
		return 0, -1
	case DirectionSouth:
		return 0, 1
	case DirectionEast:
		return 1, 0
	case DirectionWest:
		return -1, 0
	}
	return 0, 0
}

// Directions returns all four cardinal directions
func Directions() []Direction {
	return []Direction{DirectionNorth, DirectionSouth, DirectionEast, DirectionWest}
}

// DirectionOf returns the direction of a single step from (fromX, fromY) to
// (toX, toY), or false if the target is not exactly one step away.
func DirectionOf(fromX, fromY, toX, toY int) (Direction, bool) {
	for _, dir := range Directions() {
		dx, dy := dir.Delta()
		if fromX+dx == toX && fromY+dy == toY {
			return dir, true
		}
	}
	return "", false
}

// Room represents one grid cell of a dungeon instance
type Room struct {
	DungeonID string   `json:"dungeon_id"`
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Type      RoomType `json:"type"`
	NorthWall bool     `json:"north_wall"`
	SouthWall bool     `json:"south_wall"`
	EastWall  bool     `json:"east_wall"`
	WestWall  bool     `json:"west_wall"`
	Explored  bool     `json:"explored"`
	Visible   bool     `json:"visible"`
}

// Wall reports whether the wall on the given side is present
func (r *Room) Wall(dir Direction) bool {
	switch dir {
	case DirectionNorth:
		return r.NorthWall
	case DirectionSouth:
		return r.SouthWall
	case DirectionEast:
		return r.EastWall
	case DirectionWest:
		return r.WestWall
	}
	return true
}

// SetWall sets the wall flag on the given side
func (r *Room) SetWall(dir Direction, present bool) {
	switch dir {
	case DirectionNorth:
		r.NorthWall = present
	case DirectionSouth:
		r.SouthWall = present
	case DirectionEast:
		r.EastWall = present
	case DirectionWest:
		r.WestWall = present
	}
}

// Openings counts the walls that are absent. In a carved maze this is the
// cell's degree in the passage graph, always at least 1.
func (r *Room) Openings() int {
	count := 0
	for _, dir := range Directions() {
		if !r.Wall(dir) {
			count++
		}
	}
	return count
}

// IsDeadEnd reports whether the room has exactly one opening
func (r *Room) IsDeadEnd() bool {
	return r.Openings() == 1
}

// IsJunction reports whether the room has three or more openings
func (r *Room) IsJunction() bool {
	return r.Openings() >= 3
}
