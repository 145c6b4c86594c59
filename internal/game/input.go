package game

import "github.com/gdamore/tcell/v2"

// CommandKind is what a decoded key asks the game to do.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdMove
	CmdSkip
	CmdPickup
	CmdInventory
	CmdDrop
	CmdDescend
	CmdUp
	CmdDown
	CmdConfirm
	CmdCancel
	CmdSelect
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "none"
	case CmdMove:
		return "move"
	case CmdSkip:
		return "skip"
	case CmdPickup:
		return "pickup"
	case CmdInventory:
		return "inventory"
	case CmdDrop:
		return "drop"
	case CmdDescend:
		return "descend"
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdConfirm:
		return "confirm"
	case CmdCancel:
		return "cancel"
	case CmdSelect:
		return "select"
	case CmdQuit:
		return "quit"
	}
	return "unknown"
}

// Command is one decoded key. DX/DY are set for CmdMove and Index for
// CmdSelect.
type Command struct {
	Kind   CommandKind
	DX, DY int
	Index  int
}

func move(dx, dy int) Command { return Command{Kind: CmdMove, DX: dx, DY: dy} }

// InputMode selects the key map used by Decode.
type InputMode uint8

const (
	ModePlay InputMode = iota
	ModeItemMenu
	ModeMainMenu
	ModeNone // states that advance without a key
)

// Decode maps a tcell key event to a command for the given mode. Ctrl-C
// always quits.
func Decode(ev *tcell.EventKey, mode InputMode) Command {
	if ev == nil {
		return Command{}
	}
	if isCtrlC(ev) {
		return Command{Kind: CmdQuit}
	}
	switch mode {
	case ModePlay:
		return decodePlay(ev)
	case ModeItemMenu:
		return decodeItemMenu(ev)
	case ModeMainMenu:
		return decodeMainMenu(ev)
	}
	return Command{}
}

// isCtrlC accepts both the legacy control key code and a rune with the Ctrl
// modifier, which newer terminals report.
func isCtrlC(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 &&
		(ev.Rune() == 'c' || ev.Rune() == 'C')
}

func decodePlay(ev *tcell.EventKey) Command {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return move(0, -1)
	case tcell.KeyDown:
		return move(0, 1)
	case tcell.KeyRight:
		return move(1, 0)
	case tcell.KeyLeft:
		return move(-1, 0)
	case tcell.KeyHome:
		return move(-1, -1)
	case tcell.KeyPgUp:
		return move(1, -1)
	case tcell.KeyEnd:
		return move(-1, 1)
	case tcell.KeyPgDn:
		return move(1, 1)
	}
	if ev.Key() != tcell.KeyRune {
		return Command{}
	}

	// Rune keys: vi keys and the numpad digits.
	switch ev.Rune() {
	case 'k', '8':
		return move(0, -1)
	case 'j', '2':
		return move(0, 1)
	case 'l', '6':
		return move(1, 0)
	case 'h', '4':
		return move(-1, 0)
	case 'y', '7':
		return move(-1, -1)
	case 'u', '9':
		return move(1, -1)
	case 'b', '1':
		return move(-1, 1)
	case 'n', '3':
		return move(1, 1)
	case '5', ' ':
		return Command{Kind: CmdSkip}
	case 'g', 'G', ',':
		return Command{Kind: CmdPickup}
	case 'i', 'I':
		return Command{Kind: CmdInventory}
	case 'd', 'D':
		return Command{Kind: CmdDrop}
	case '>', '.':
		return Command{Kind: CmdDescend}
	}
	return Command{}
}

func decodeItemMenu(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyEscape {
		return Command{Kind: CmdCancel}
	}
	if ev.Key() != tcell.KeyRune {
		return Command{}
	}
	r := ev.Rune()
	if r >= 'a' && r <= 'z' {
		return Command{Kind: CmdSelect, Index: int(r - 'a')}
	}
	return Command{}
}

func decodeMainMenu(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return Command{Kind: CmdUp}
	case tcell.KeyDown:
		return Command{Kind: CmdDown}
	case tcell.KeyEnter:
		return Command{Kind: CmdConfirm}
	case tcell.KeyEscape:
		return Command{Kind: CmdCancel}
	}
	return Command{}
}
