package bomber

// Command is a player intent produced by the input layer.
type Command uint8

const (
	CmdMoveUp Command = iota
	CmdMoveRight
	CmdMoveDown
	CmdMoveLeft
	CmdPlaceBomb
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdMoveUp:
		return "MoveUp"
	case CmdMoveRight:
		return "MoveRight"
	case CmdMoveDown:
		return "MoveDown"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdPlaceBomb:
		return "PlaceBomb"
	default:
		return "Unknown"
	}
}

// Dir returns the direction of a move command and false for PlaceBomb.
func (c Command) Dir() (Dir, bool) {
	switch c {
	case CmdMoveUp:
		return DirUp, true
	case CmdMoveRight:
		return DirRight, true
	case CmdMoveDown:
		return DirDown, true
	case CmdMoveLeft:
		return DirLeft, true
	default:
		return 0, false
	}
}

// CommandQueue is a last-in-first-out stack of commands.
// The most recently pushed command is popped first.
type CommandQueue struct {
	stack []Command
}

// Push adds a command on top of the stack.
func (q *CommandQueue) Push(c Command) {
	q.stack = append(q.stack, c)
}

// Pop removes and returns the most recently pushed command.
func (q *CommandQueue) Pop() (Command, bool) {
	n := len(q.stack)
	if n == 0 {
		return 0, false
	}
	c := q.stack[n-1]
	q.stack = q.stack[:n-1]
	return c, true
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	return len(q.stack)
}

// Clear drops every queued command.
func (q *CommandQueue) Clear() {
	q.stack = q.stack[:0]
}
