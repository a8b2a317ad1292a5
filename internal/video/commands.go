package video

import "github.com/nybblesio/ckong/internal/core"

// Queue capacities.
const (
	PreCommandsMax  = 1024
	PostCommandsMax = 256
)

// CommandKind selects the primitive a pre-pass command draws.
type CommandKind uint8

const (
	CmdFillRect CommandKind = iota
	CmdRect
	CmdHLine
	CmdVLine
	CmdStampTile
)

// Command is a raster primitive drawn into the foreground after the
// background copy and before sprites.
type Command struct {
	Kind    CommandKind
	Bounds  core.Rect
	Color   core.Color
	Tile    uint16
	Palette uint8
	Flags   SprFlags
}

// TextCommand is post-pass text handed to the presentation layer.
type TextCommand struct {
	X, Y  int
	Color core.Color
	Text  string
}

// queue is a bounded FIFO reset every frame. Pushes past capacity are
// counted and discarded.
type queue[T any] struct {
	items   []T
	dropped int
}

func newQueue[T any](capacity int) queue[T] {
	return queue[T]{items: make([]T, 0, capacity)}
}

func (q *queue[T]) push(item T) bool {
	if len(q.items) == cap(q.items) {
		q.dropped++
		return false
	}
	q.items = append(q.items, item)
	return true
}

func (q *queue[T]) reset() {
	q.items = q.items[:0]
	q.dropped = 0
}

func (q *queue[T]) len() int { return len(q.items) }
