package core

// Command is a primitive drawing instruction emitted during one tick.
// The set of variants is closed; see RectCommand.
type Command interface {
	command()
}

// RectCommand fills a rectangle with a solid color.
type RectCommand struct {
	Rect  Rect
	Color Color
}

func (RectCommand) command() {}

// DrawList is the append-only command buffer a game fills during Step.
// Commands are painted in insertion order, so later ones cover earlier ones.
type DrawList struct {
	cmds []Command
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{}
}

// Rect appends a filled rectangle.
func (d *DrawList) Rect(x, y int, w, h uint, c Color) {
	d.cmds = append(d.cmds, RectCommand{Rect: NewRect(x, y, w, h), Color: c})
}

// Commands returns the recorded commands in paint order.
func (d *DrawList) Commands() []Command {
	return d.cmds
}

// Len returns the number of recorded commands.
func (d *DrawList) Len() int {
	return len(d.cmds)
}

// Reset empties the list, keeping its storage for the next tick.
func (d *DrawList) Reset() {
	clear(d.cmds)
	d.cmds = d.cmds[:0]
}
