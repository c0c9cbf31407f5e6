package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/galactix/internal/config"
	"github.com/vovakirdan/galactix/internal/core"
)

// Spawner creates pipe pairs with a random vertical split.
type Spawner struct {
	rng       *rand.Rand
	playfield config.Playfield
	obstacles config.Obstacles
	nextID    int
	nextPair  int
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, playfield config.Playfield, obstacles config.Obstacles) *Spawner {
	return &Spawner{
		rng:       rand.New(rand.NewSource(seed)),
		playfield: playfield,
		obstacles: obstacles,
	}
}

// Spawn creates a top and a bottom pipe at the right edge of the playfield
// with an opening of the given size between them.
//
// The top height is a whole number drawn uniformly from
// [minHeight, height-opening-minHeight], so neither pipe is shorter than
// minHeight and top+opening+bottom always equals the playfield height.
func (s *Spawner) Spawn(opening float64, moving bool) (top, bottom Obstacle) {
	minH := s.obstacles.MinHeight
	maxTop := s.playfield.Height - opening - minH

	topH := minH
	if span := int(maxTop - minH); span > 0 {
		topH = minH + float64(s.rng.Intn(span+1))
	}
	bottomY := topH + opening
	bottomH := s.playfield.Height - bottomY

	phase := s.rng.Float64() * s.obstacles.MaxPhase

	pair := s.nextPair
	s.nextPair++

	top = Obstacle{
		ID:     s.takeID(),
		Pair:   pair,
		X:      s.playfield.Width,
		Y:      0,
		W:      s.obstacles.Width,
		H:      topH,
		Motion: s.motion(moving, 0, phase),
	}
	bottom = Obstacle{
		ID:     s.takeID(),
		Pair:   pair,
		X:      s.playfield.Width,
		Y:      bottomY,
		W:      s.obstacles.Width,
		H:      bottomH,
		Motion: s.motion(moving, bottomY, phase),
	}
	return top, bottom
}

func (s *Spawner) motion(moving bool, initialY, phase float64) Motion {
	if !moving {
		return Static{}
	}
	return Oscillation{
		InitialY:  initialY,
		Amplitude: s.obstacles.Amplitude,
		Period:    s.obstacles.OscillationPeriod,
		Phase:     phase,
	}
}

func (s *Spawner) takeID() int {
	id := s.nextID
	s.nextID++
	return id
}

// ObstacleField is the ordered sequence of live pipes: pairs are appended at
// the tail as they spawn and removed from the head once off-screen.
type ObstacleField struct {
	items []Obstacle
}

// Len returns the number of pipes (twice the number of pairs).
func (f *ObstacleField) Len() int {
	return len(f.items)
}

// Items returns the live pipes. The slice must not be modified.
func (f *ObstacleField) Items() []Obstacle {
	return f.items
}

// Reset removes every pipe.
func (f *ObstacleField) Reset() {
	f.items = f.items[:0]
}

// PushPair appends a freshly spawned pair.
func (f *ObstacleField) PushPair(top, bottom Obstacle) {
	f.items = append(f.items, top, bottom)
}

// NeedsSpawn reports whether a new pair should enter: the field is empty or
// the newest pipe has moved at least gap units in from the right edge.
func (f *ObstacleField) NeedsSpawn(width, gap float64) bool {
	if len(f.items) == 0 {
		return true
	}
	last := f.items[len(f.items)-1]
	return width-last.X >= gap
}

// Advance moves every pipe left by speed and repositions moving pipes for
// elapsed seconds of run time.
func (f *ObstacleField) Advance(speed, elapsed float64) {
	for i := range f.items {
		o := &f.items[i]
		o.X -= speed
		if osc, ok := o.Motion.(Oscillation); ok {
			o.Y = osc.At(elapsed)
		}
	}
}

// Collides reports whether r overlaps any pipe.
func (f *ObstacleField) Collides(r core.Rect) bool {
	for _, o := range f.items {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// MarkPassed flags every pipe whose trailing edge is behind playerX.
func (f *ObstacleField) MarkPassed(playerX float64) {
	for i := range f.items {
		if !f.items[i].Passed && playerX > f.items[i].Right() {
			f.items[i].Passed = true
		}
	}
}

// HeadOffscreen reports whether the oldest pipe has been passed and its
// trailing edge is more than margin units left of the playfield.
func (f *ObstacleField) HeadOffscreen(margin float64) bool {
	if len(f.items) == 0 {
		return false
	}
	head := f.items[0]
	return head.Passed && head.Right() < -margin
}

// PopPair removes exactly one pair from the head. It returns an error and
// leaves the field untouched if the head is not a complete pair.
func (f *ObstacleField) PopPair() error {
	if len(f.items) < 2 {
		return fmt.Errorf("obstacle field: cannot remove a pair from %d pipe(s)", len(f.items))
	}
	if f.items[0].Pair != f.items[1].Pair {
		return fmt.Errorf("obstacle field: head pipes %d and %d belong to different pairs (%d, %d)",
			f.items[0].ID, f.items[1].ID, f.items[0].Pair, f.items[1].Pair)
	}
	n := copy(f.items, f.items[2:])
	clear(f.items[n:])
	f.items = f.items[:n]
	return nil
}
