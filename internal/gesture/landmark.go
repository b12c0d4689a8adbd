package gesture

// LandmarkCount is the number of points in a tracked hand skeleton.
const LandmarkCount = 21

// Anatomical landmark indices.
const (
	Wrist      = 0
	ThumbTip   = 4
	IndexTip   = 8
	MiddleBase = 9
	MiddleTip  = 12
	RingTip    = 16
	PinkyTip   = 20
)

var fingertips = [...]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}

// Landmark is one tracked point in normalized [0,1] image coordinates.
// Z is carried through from the tracker but never used.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Snapshot is the hand skeleton seen in one frame. A nil snapshot means no
// hand was detected.
type Snapshot []Landmark

// Valid reports whether the snapshot holds a complete skeleton.
func (s Snapshot) Valid() bool {
	return len(s) >= LandmarkCount
}

// Connections lists the bone segments of the hand skeleton, used when
// drawing the overlay.
var Connections = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4},
	{0, 5}, {5, 6}, {6, 7}, {7, 8},
	{0, 9}, {9, 10}, {10, 11}, {11, 12},
	{0, 13}, {13, 14}, {14, 15}, {15, 16},
	{0, 17}, {17, 18}, {18, 19}, {19, 20},
	{5, 9}, {9, 13}, {13, 17},
}
