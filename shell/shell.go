// Package shell is an interactive console for playing and watching the
// solver. Thin glue over the api and autoplay packages.
package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/twenty48-ai/solver/api"
	"github.com/twenty48-ai/solver/autoplay"
	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/config"
	"github.com/twenty48-ai/solver/engine"
	"github.com/twenty48-ai/solver/heuristics"
	"github.com/twenty48-ai/solver/strategy"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	eng    *engine.Engine
	solver *api.Solver
	rng    *frand.RNG

	b     board.Board
	moves int
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtwenty48>\033[0m ",
		HistoryFile:     "/tmp/twenty48-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := &ShellController{
		l:   l,
		cfg: cfg,
		eng: engine.New(),
		rng: frand.New(),
		solver: api.NewSolver(cfg.StrategyType, cfg.HeuristicName,
			cfg.Depth, cfg.Probability),
	}
	sc.solver.SetTrials(cfg.Trials)
	sc.newGame()
	return sc
}

func (sc *ShellController) newGame() {
	sc.b = sc.eng.NewGame(sc.rng)
	sc.moves = 0
}

var directionNames = map[string]int{
	"u": engine.Up, "up": engine.Up,
	"d": engine.Down, "down": engine.Down,
	"l": engine.Left, "left": engine.Left,
	"r": engine.Right, "right": engine.Right,
}

func (sc *ShellController) showBoard() {
	msg := fmt.Sprintf("%vscore: %d  max tile: %d  moves: %d",
		sc.b, api.GetScore(sc.b), api.GetMaxTile(sc.b), sc.moves)
	if api.IsGameOver(sc.b) {
		msg += "  GAME OVER"
	}
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) applyMove(dir int) error {
	if !api.IsValidMove(sc.b, dir) {
		return fmt.Errorf("that move doesn't change the board")
	}
	sc.b = sc.eng.SpawnRandom(api.MakeMove(sc.b, dir), sc.rng)
	sc.moves++
	return nil
}

func (sc *ShellController) handleMove(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("move requires a direction (u/d/l/r)")
	}
	dir, ok := directionNames[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("unknown direction %q", args[0])
	}
	return sc.applyMove(dir)
}

// step lets the solver make one move.
func (sc *ShellController) step() error {
	if api.IsGameOver(sc.b) {
		return fmt.Errorf("game is over; use 'new' to start another")
	}
	dir := sc.solver.PickMove(sc.b)
	if !api.IsValidMove(sc.b, dir) {
		for d := 0; d < engine.NumDirections; d++ {
			if api.IsValidMove(sc.b, d) {
				dir = d
				break
			}
		}
	}
	return sc.applyMove(dir)
}

// play lets the solver finish the current game.
func (sc *ShellController) play() error {
	for !api.IsGameOver(sc.b) {
		if err := sc.step(); err != nil {
			return err
		}
	}
	return nil
}

func (sc *ShellController) handleSet(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <strategy|heuristic|depth|probability|trials> <value>")
	}
	key, val := strings.ToLower(args[0]), args[1]
	cfg := sc.solver.Config()
	switch key {
	case "strategy":
		sc.solver.Configure(val, cfg.Heuristic, cfg.Depth, cfg.Probability)
	case "heuristic":
		sc.solver.Configure(cfg.Type, val, cfg.Depth, cfg.Probability)
	case "depth":
		depth, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("bad depth %q: %w", val, err)
		}
		sc.solver.Configure(cfg.Type, cfg.Heuristic, depth, cfg.Probability)
	case "probability":
		prob, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("bad probability %q: %w", val, err)
		}
		sc.solver.Configure(cfg.Type, cfg.Heuristic, cfg.Depth, prob)
	case "trials":
		trials, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("bad trial count %q: %w", val, err)
		}
		sc.solver.SetTrials(trials)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	showMessage(fmt.Sprintf("config now %+v", sc.solver.Config()), sc.l.Stderr())
	return nil
}

func (sc *ShellController) handleAutoplay(args []string) error {
	n := sc.cfg.GameCount
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad game count %q: %w", args[0], err)
		}
		n = parsed
	}
	showMessage(fmt.Sprintf("playing %d games...", n), sc.l.Stderr())
	runner := autoplay.NewRunner(sc.solver.Config(), sc.cfg.Parallelism)
	summary, err := runner.Run(n)
	if err != nil {
		return err
	}
	showMessage(fmt.Sprintf(
		"games: %d  mean score: %.1f ± %.1f (95%%)  stdev: %.1f  median: %.1f  best: %d\nmax tiles: %v",
		len(summary.Results), summary.MeanScore, summary.ScoreCI95,
		summary.StdevScore, summary.MedianScore, summary.BestScore,
		summary.MaxTileCounts), sc.l.Stderr())
	return nil
}

const helpText = `Commands:
  new                 start a new game
  show                print the current board
  move <u|d|l|r>      make a move yourself
  step                let the solver make one move
  play                let the solver finish the game
  eval                current heuristic value of the board
  set <key> <value>   strategy, heuristic, depth, probability, trials
  autoplay [n]        self-play n games and print statistics
  names               list strategy and heuristic names
  help                this message
  exit                leave the shell`

func (sc *ShellController) executeCommand(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "new":
		sc.newGame()
		sc.showBoard()
	case "show", "print":
		sc.showBoard()
	case "move", "m":
		if err := sc.handleMove(args); err != nil {
			return err
		}
		sc.showBoard()
	case "step", "s":
		if err := sc.step(); err != nil {
			return err
		}
		sc.showBoard()
	case "play":
		if err := sc.play(); err != nil {
			return err
		}
		sc.showBoard()
	case "eval":
		showMessage(fmt.Sprintf("%v", sc.solver.EvaluateBoard(sc.b)), sc.l.Stderr())
	case "set":
		return sc.handleSet(args)
	case "autoplay":
		return sc.handleAutoplay(args)
	case "names":
		showMessage("strategies: "+strings.Join(strategy.TypeNames(), ", "), sc.l.Stderr())
		showMessage("heuristics: "+strings.Join(heuristics.Names(), ", "), sc.l.Stderr())
	case "help":
		showMessage(helpText, sc.l.Stderr())
	default:
		return fmt.Errorf("unknown command %q; try 'help'", cmd)
	}
	return nil
}

// Loop runs the read-eval loop until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	sc.showBoard()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			break
		}
		if err := sc.executeCommand(line); err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
	log.Debug().Msg("exiting readline loop")
}
