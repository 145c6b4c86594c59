// Package game is the turn orchestrator: it owns the world and advances the
// run state machine one tick per call.
package game

import (
	"fmt"
	"math/rand"

	"belsin/internal/component"
	"belsin/internal/config"
	"belsin/internal/ecs"
	"belsin/internal/gamelog"
	"belsin/internal/gamemap"
	"belsin/internal/intent"
	"belsin/internal/render"
	"belsin/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// StateKind is the main state machine.
type StateKind uint8

const (
	StateMenu StateKind = iota
	StatePreRun
	StateAwaitingInput
	StatePlayerTurn
	StateMonsterTurn
	StateShowInventory
	StateShowDropItem
	StateNextLevel
	StateGameOver
)

func (k StateKind) String() string {
	switch k {
	case StateMenu:
		return "menu"
	case StatePreRun:
		return "pre-run"
	case StateAwaitingInput:
		return "awaiting-input"
	case StatePlayerTurn:
		return "player-turn"
	case StateMonsterTurn:
		return "monster-turn"
	case StateShowInventory:
		return "show-inventory"
	case StateShowDropItem:
		return "show-drop-item"
	case StateNextLevel:
		return "next-level"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// MenuSelection is the highlighted main menu entry.
type MenuSelection uint8

const (
	MenuNewGame MenuSelection = iota
	MenuQuit
)

// RunState is the current state. Selection only matters in StateMenu.
type RunState struct {
	Kind      StateKind
	Selection MenuSelection
}

var menuOptions = []string{"Start New Game", "Quit"}

// Game is the top-level orchestrator.
type Game struct {
	cfg     *config.Config
	rng     *rand.Rand
	logger  *logrus.Entry
	world   *ecs.World
	gmap    *gamemap.Map
	log     *gamelog.Log
	intents *intent.Queues
	player  ecs.EntityID
	state   RunState
	turns   int
}

// New builds the first level and leaves the game on the main menu.
func New(cfg *config.Config, logger *logrus.Logger, rng *rand.Rand) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		rng:     rng,
		logger:  logger.WithField("component", "game"),
		intents: &intent.Queues{},
		state:   RunState{Kind: StateMenu, Selection: MenuNewGame},
	}
	if err := g.newWorld(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) World() *ecs.World { return g.world }
func (g *Game) Map() *gamemap.Map { return g.gmap }
func (g *Game) Log() *gamelog.Log { return g.log }
func (g *Game) Player() ecs.EntityID { return g.player }
func (g *Game) State() RunState { return g.state }
func (g *Game) Intents() *intent.Queues { return g.intents }

// Turns counts completed player turns in the current run.
func (g *Game) Turns() int { return g.turns }

func (g *Game) context(phase system.Phase) *system.Context {
	return &system.Context{
		World:   g.world,
		Map:     g.gmap,
		Log:     g.log,
		Intents: g.intents,
		Player:  g.player,
		Phase:   phase,
		Logger:  g.logger,
	}
}

func (g *Game) runSystems(phase system.Phase) error {
	return system.RunPipeline(g.context(phase), system.Turn)
}

// NeedsInput reports whether the current state waits for a key.
func (g *Game) NeedsInput() bool {
	return g.InputMode() != ModeNone
}

// InputMode is the key map for the current state.
func (g *Game) InputMode() InputMode {
	switch g.state.Kind {
	case StateMenu, StateGameOver:
		return ModeMainMenu
	case StateAwaitingInput:
		return ModePlay
	case StateShowInventory, StateShowDropItem:
		return ModeItemMenu
	}
	return ModeNone
}

// Tick advances the state machine by one step using cmd, then removes the
// dead. It returns quit=true when the player asked to leave.
func (g *Game) Tick(cmd Command) (quit bool, err error) {
	if cmd.Kind == CmdQuit {
		return true, nil
	}

	prev := g.state
	next := g.state
	switch g.state.Kind {
	case StateMenu:
		switch cmd.Kind {
		case CmdUp, CmdDown:
			next.Selection = toggle(g.state.Selection)
		case CmdCancel:
			next.Selection = MenuQuit
		case CmdConfirm:
			if g.state.Selection == MenuQuit {
				return true, nil
			}
			next = RunState{Kind: StatePreRun}
		}

	case StatePreRun:
		if err := g.runSystems(system.PhasePreRun); err != nil {
			return false, err
		}
		next = RunState{Kind: StateAwaitingInput}

	case StateAwaitingInput:
		if next, err = g.playerInput(cmd); err != nil {
			return false, err
		}

	case StatePlayerTurn:
		if err := g.runSystems(system.PhasePlayer); err != nil {
			return false, err
		}
		g.turns++
		next = RunState{Kind: StateMonsterTurn}

	case StateMonsterTurn:
		if err := g.runSystems(system.PhaseMonster); err != nil {
			return false, err
		}
		next = RunState{Kind: StateAwaitingInput}

	case StateShowInventory:
		next = g.itemMenu(cmd, &g.intents.Drink)

	case StateShowDropItem:
		next = g.itemMenu(cmd, &g.intents.Drop)

	case StateNextLevel:
		if err := g.nextLevel(); err != nil {
			return false, err
		}
		next = RunState{Kind: StatePreRun}

	case StateGameOver:
		if cmd.Kind == CmdConfirm || cmd.Kind == CmdCancel {
			if err := g.newWorld(); err != nil {
				return false, err
			}
			g.setState(RunState{Kind: StateMenu, Selection: MenuNewGame})
		}
		return false, nil
	}
	g.setState(next)

	dead, err := system.RemoveCorpses(g.context(system.PhasePreRun))
	if err != nil {
		return false, fmt.Errorf("remove corpses: %w", err)
	}
	if dead {
		g.log.Add("You are dead.")
		g.logger.WithFields(logrus.Fields{
			"depth": g.gmap.Depth,
			"turns": g.turns,
			"from":  prev.Kind.String(),
		}).Info("player died")
		g.setState(RunState{Kind: StateGameOver})
	}
	return false, nil
}

func (g *Game) setState(s RunState) {
	if s.Kind != g.state.Kind {
		g.logger.WithFields(logrus.Fields{
			"from": g.state.Kind.String(),
			"to":   s.Kind.String(),
		}).Trace("state change")
	}
	g.state = s
}

func toggle(s MenuSelection) MenuSelection {
	if s == MenuNewGame {
		return MenuQuit
	}
	return MenuNewGame
}

// playerInput handles one command while waiting for the player.
func (g *Game) playerInput(cmd Command) (RunState, error) {
	stay := RunState{Kind: StateAwaitingInput}
	ctx := g.context(system.PhasePlayer)
	switch cmd.Kind {
	case CmdMove:
		if _, err := system.TryMovePlayer(ctx, cmd.DX, cmd.DY); err != nil {
			return stay, err
		}
		return RunState{Kind: StatePlayerTurn}, nil
	case CmdSkip:
		if err := system.SkipTurn(ctx); err != nil {
			return stay, err
		}
		return RunState{Kind: StatePlayerTurn}, nil
	case CmdPickup:
		if _, err := system.QueuePickup(ctx); err != nil {
			return stay, err
		}
		return stay, nil
	case CmdInventory:
		return RunState{Kind: StateShowInventory}, nil
	case CmdDrop:
		return RunState{Kind: StateShowDropItem}, nil
	case CmdDescend:
		ok, err := system.CanDescend(ctx)
		if err != nil {
			return stay, err
		}
		if ok {
			return RunState{Kind: StateNextLevel}, nil
		}
	}
	return stay, nil
}

// itemMenu resolves a backpack menu: cancel goes back to play, a valid letter
// queues an intent for the chosen item and spends the turn.
func (g *Game) itemMenu(cmd Command, q *intent.Queue[ecs.EntityID]) RunState {
	switch cmd.Kind {
	case CmdCancel:
		return RunState{Kind: StateAwaitingInput}
	case CmdSelect:
		items := system.Backpack(g.world, g.player)
		if cmd.Index < 0 || cmd.Index >= len(items) {
			return g.state
		}
		q.Set(g.player, items[cmd.Index])
		return RunState{Kind: StatePlayerTurn}
	}
	return g.state
}

// BackpackNames lists the player's backpack in menu order.
func (g *Game) BackpackNames() []string {
	items := system.Backpack(g.world, g.player)
	names := make([]string, len(items))
	for i, id := range items {
		names[i] = component.NameOf(g.world, id)
	}
	return names
}

// Draw renders the current state.
func (g *Game) Draw(r *render.Renderer) {
	r.Clear()
	defer r.Show()

	if g.state.Kind == StateMenu {
		r.DrawMainMenu("Belsin", menuOptions, int(g.state.Selection))
		return
	}

	r.DrawMap(g.world, g.gmap, g.player)
	r.DrawHUD(g.world, g.player, g.gmap.Depth, g.log)

	switch g.state.Kind {
	case StateShowInventory:
		r.DrawItemMenu("Inventory", "Esc to close", g.BackpackNames())
	case StateShowDropItem:
		r.DrawItemMenu("Drop Which Item?", "Esc to close", g.BackpackNames())
	case StateGameOver:
		r.DrawBanner("You are dead.", fmt.Sprintf("You reached depth %d after %d turns.", g.gmap.Depth, g.turns), "Press Enter")
	}
}

// Run is the main loop: draw, wait for a key when the state needs one, tick.
// It returns when the player quits, the screen is finalized, or a turn fails.
func (g *Game) Run(screen tcell.Screen) error {
	r := render.NewRenderer(screen, g.cfg.UI.LogLines)
	for {
		g.Draw(r)

		var cmd Command
		if g.NeedsInput() {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return nil
			case *tcell.EventResize:
				screen.Sync()
				continue
			case *tcell.EventKey:
				cmd = Decode(ev, g.InputMode())
			default:
				continue
			}
		}

		quit, err := g.Tick(cmd)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
