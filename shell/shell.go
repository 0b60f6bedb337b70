package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/harshisingh777/tic-tac-toe/ai/turnplayer"
	"github.com/harshisingh777/tic-tac-toe/board"
	"github.com/harshisingh777/tic-tac-toe/config"
	"github.com/harshisingh777/tic-tac-toe/game"
	"github.com/harshisingh777/tic-tac-toe/minimax"
	"github.com/harshisingh777/tic-tac-toe/policy"
)

const Farewell = "Exiting. Goodbye!"

var (
	errQuit    = errors.New("quit")
	errNewGame = errors.New("new game")
)

// lineReader is the part of *readline.Instance the shell uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

type ShellController struct {
	cfg *config.Config
	l   lineReader
	out io.Writer
	tty *termenv.Output

	game  *game.Game
	ai    *turnplayer.AIPlayer
	human board.Cell

	cleanup func() error
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

// NewShellController sets up a readline prompt on the terminal and an AI
// that plays from p.
func NewShellController(cfg *config.Config, p policy.Policy) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc := newController(cfg, l, l.Stdout(), p)
	sc.cleanup = l.Close
	return sc, nil
}

func newController(cfg *config.Config, l lineReader, out io.Writer, p policy.Policy) *ShellController {
	var opts []termenv.OutputOption
	if !cfg.GetBool(config.ConfigColor) {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &ShellController{
		cfg: cfg,
		l:   l,
		out: out,
		tty: termenv.NewOutput(out, opts...),
		ai:  turnplayer.NewAIPlayer(p),
	}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

// Cleanup releases the terminal.
func (sc *ShellController) Cleanup() {
	if sc.cleanup != nil {
		if err := sc.cleanup(); err != nil {
			log.Debug().Err(err).Msg("closing-readline")
		}
	}
}

func (sc *ShellController) chooseHumanSymbol() board.Cell {
	switch strings.ToLower(sc.cfg.GetString(config.ConfigFirstPlayer)) {
	case config.FirstPlayerAI:
		return board.O
	case config.FirstPlayerRandom:
		if frand.Intn(2) == 1 {
			return board.O
		}
		return board.X
	case config.FirstPlayerHuman:
	default:
		log.Warn().Str("first-player", sc.cfg.GetString(config.ConfigFirstPlayer)).
			Msg("unknown-first-player; human moves first")
	}
	return board.X
}

func (sc *ShellController) newGame() {
	sc.game = game.NewGame()
	sc.human = sc.chooseHumanSymbol()
	sc.showMessage(fmt.Sprintf("Starting Human vs AI mode (X = %s, O = %s).",
		sc.playerName(board.X), sc.playerName(board.O)))
}

func (sc *ShellController) playerName(c board.Cell) string {
	if c == sc.human {
		return "Human"
	}
	return "AI"
}

// Loop plays games until one ends, the human quits, or input is closed.
// Typing "new" abandons the current game and starts another.
func (sc *ShellController) Loop() error {
	for {
		sc.newGame()
		err := sc.playGame()
		switch {
		case err == nil:
			return nil
		case errors.Is(err, errNewGame):
			continue
		case errors.Is(err, errQuit):
			sc.showMessage("\n" + Farewell)
			return nil
		default:
			return err
		}
	}
}

func (sc *ShellController) playGame() error {
	for {
		sc.showMessage(sc.renderBoard())
		var move int
		var err error
		if sc.game.PlayerOnTurn() == sc.human {
			move, err = sc.promptHumanMove()
		} else {
			move, err = sc.aiMove()
		}
		if err != nil {
			return err
		}
		if err := sc.game.PlayMove(move); err != nil {
			return err
		}
		if sc.game.Over() {
			sc.showMessage(sc.renderBoard())
			sc.showMessage(sc.resultMessage())
			return nil
		}
	}
}

func (sc *ShellController) resultMessage() string {
	switch sc.game.Winner() {
	case board.Empty:
		return "\nIt's a draw!"
	case sc.human:
		return "\nYou win!"
	}
	return "\nAI wins!"
}

func (sc *ShellController) aiMove() (int, error) {
	c, err := sc.ai.ChooseMove(sc.game.Board(), sc.game.PlayerOnTurn())
	if err != nil {
		return 0, err
	}
	sc.showMessage(fmt.Sprintf("\nAI chooses position %d.", c.Move+1))
	return c.Move, nil
}

func playerNumber(c board.Cell) int {
	if c == board.X {
		return 1
	}
	return 2
}

// promptHumanMove reads lines until one is a legal move. Commands are
// handled in between; bad input is reported and asked for again.
func (sc *ShellController) promptHumanMove() (int, error) {
	sc.l.SetPrompt(fmt.Sprintf("Player %d (%s), enter your move (1-9): ",
		playerNumber(sc.human), sc.human))
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return 0, errQuit
		} else if err != nil {
			return 0, err
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			sc.showMessage(err.Error())
			continue
		}
		if len(fields) > 0 {
			handled, err := sc.command(fields[0])
			if err != nil {
				return 0, err
			}
			if handled {
				continue
			}
		}
		b := sc.game.Board()
		cell, err := game.ParseHumanMove(line, &b)
		if err != nil {
			sc.showMessage(moveErrorMessage(err))
			continue
		}
		return cell, nil
	}
}

func moveErrorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrNotANumber):
		return "Please enter a number between 1 and 9."
	case errors.Is(err, game.ErrOutOfRange):
		return "Invalid position. Choose a number between 1 and 9."
	case errors.Is(err, game.ErrCellTaken):
		return "That cell is already taken. Choose another one."
	}
	return err.Error()
}

// command runs a shell command. handled is false if the input is not a
// command and should be read as a move.
func (sc *ShellController) command(name string) (handled bool, err error) {
	switch strings.ToLower(name) {
	case "help":
		usage(sc.out)
	case "hint":
		sc.showMessage(sc.hint())
	case "board":
		sc.showMessage(sc.renderBoard())
	case "new":
		return true, errNewGame
	case "quit", "exit", "bye":
		return true, errQuit
	default:
		return false, nil
	}
	return true, nil
}

func (sc *ShellController) hint() string {
	score, pv := sc.ai.Analyze(sc.game.Board(), sc.human)
	m, ok := pv.BestMove()
	if !ok {
		return "No moves left."
	}
	outcome := "a draw"
	switch score {
	case minimax.WinScore:
		outcome = "a win"
	case minimax.LossScore:
		outcome = "a loss"
	}
	return fmt.Sprintf("Hint: position %d leads to %s with best play.\n%s",
		m+1, outcome, pv.Describe(sc.human))
}

func (sc *ShellController) renderBoard() string {
	b := sc.game.Board()
	return b.Render(func(i int, c board.Cell) string {
		s := board.PlainCell(i, c)
		switch c {
		case board.X:
			return sc.tty.String(s).Foreground(sc.tty.Color("1")).Bold().String()
		case board.O:
			return sc.tty.String(s).Foreground(sc.tty.Color("4")).Bold().String()
		}
		return sc.tty.String(s).Faint().String()
	})
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "1-9   - play in that position\n")
	io.WriteString(w, "hint  - show the best move and the expected line of play\n")
	io.WriteString(w, "board - show the board again\n")
	io.WriteString(w, "new   - abandon this game and start a new one\n")
	io.WriteString(w, "quit  - leave\n")
}
