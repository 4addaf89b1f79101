package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fadedpez/balatro/internal/logging"
	"github.com/fadedpez/balatro/internal/types"
	"github.com/fadedpez/balatro/pkg/cards"
	"github.com/fadedpez/balatro/pkg/display"
	"github.com/fadedpez/balatro/pkg/entities"
	"github.com/fadedpez/balatro/pkg/game"
	"github.com/fadedpez/balatro/pkg/repositories/history"
	"github.com/fadedpez/balatro/pkg/scoring"
)

const commandPrompt = "(p=play, d=discard, s=sort, e=eval, h=help, q=quit): "

// Console drives a game from line-oriented input
type Console struct {
	game    *game.Game
	history history.Repository
	printer *display.Printer
	logger  *logging.Logger
	in      *bufio.Scanner

	lines chan string   // Fed by the reader goroutine, closed at end of input
	done  chan struct{} // Closed when Run returns
	eof   bool
}

// New creates a console reading commands from in
func New(g *game.Game, repo history.Repository, printer *display.Printer, logger *logging.Logger, in io.Reader) *Console {
	return &Console{
		game:    g,
		history: repo,
		printer: printer,
		logger:  logger,
		in:      bufio.NewScanner(in),
	}
}

// Run loops until the game is over, the player quits, input ends or ctx is cancelled,
// then prints the summary. Cancellation ends the game like quit.
func (c *Console) Run(ctx context.Context) error {
	c.startReader()
	defer close(c.done)

	c.showHand()

	for !c.game.IsOver() {
		line, ok := c.readLine(ctx, commandPrompt)
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		quit, err := c.dispatch(ctx, strings.ToLower(fields[0]), fields[1:])
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}

	if c.eof {
		if err := c.in.Err(); err != nil {
			return types.WrapError(types.ErrInternalError, "reading input", err)
		}
	}
	if ctx.Err() != nil {
		c.logger.Info("Game %s interrupted", c.game.ID)
		c.printer.Prompt("\n")
		ctx = context.WithoutCancel(ctx)
	}
	return c.finish(ctx)
}

// startReader scans input on its own goroutine so a blocked read never delays cancellation
func (c *Console) startReader() {
	c.lines = make(chan string)
	c.done = make(chan struct{})
	go func() {
		defer close(c.lines)
		for c.in.Scan() {
			select {
			case c.lines <- c.in.Text():
			case <-c.done:
				return
			}
		}
	}()
}

// dispatch runs one command. Problems with the player's input are reported and swallowed.
func (c *Console) dispatch(ctx context.Context, cmd string, args []string) (quit bool, err error) {
	switch cmd[0] {
	case 'p':
		err = c.play(ctx, args)
	case 'd':
		err = c.discard(ctx, args)
	case 's':
		c.game.SortHand()
		c.showHand()
	case 'e':
		err = c.eval(args)
	case 'h':
		err = c.printer.Help()
	case 'q':
		return true, nil
	default:
		err = types.NewGameErrorf(types.ErrInvalidCommand, "unknown command %q", cmd)
	}
	if ctx.Err() != nil {
		// Interrupted while prompting for more input
		return true, nil
	}
	return false, c.report(err)
}

func (c *Console) play(ctx context.Context, args []string) error {
	if len(c.game.Hand) == 0 {
		return types.NewGameError(types.ErrInvalidSelection, "no cards in hand")
	}
	indices, err := c.indices(ctx, args, fmt.Sprintf("Enter indices (space separated, at least 1, at most %d): ", game.MaxPlaySelection))
	if err != nil {
		return err
	}

	record, err := c.game.Play(ctx, indices)
	if err != nil {
		return err
	}
	c.printer.Play(record)
	c.showHand()
	return nil
}

func (c *Console) discard(ctx context.Context, args []string) error {
	if c.game.DiscardsLeft <= 0 {
		return types.NewGameError(types.ErrNoDiscardsLeft, "no discard left")
	}
	if len(c.game.Hand) == 0 {
		return types.NewGameError(types.ErrInvalidSelection, "no cards in hand")
	}
	indices, err := c.indices(ctx, args, "Enter indices to discard (space separated): ")
	if err != nil {
		return err
	}

	discarded, err := c.game.Discard(indices)
	if err != nil {
		return err
	}
	c.printer.Discard(discarded, c.game.DiscardsLeft)
	c.showHand()
	return nil
}

func (c *Console) eval(args []string) error {
	if len(args) == 0 {
		return types.NewGameError(types.ErrInvalidArgument, "give the cards to evaluate, e.g. e As Ks Qs Js 10s")
	}
	cs, err := cards.ParseCards(strings.Join(args, " "))
	if err != nil {
		return err
	}
	c.printer.Evaluation(cs, scoring.Evaluate(cs))
	return nil
}

// indices parses args, or the next input line when args is empty
func (c *Console) indices(ctx context.Context, args []string, prompt string) ([]int, error) {
	if len(args) == 0 {
		line, ok := c.readLine(ctx, prompt)
		if !ok && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !ok {
			return nil, types.NewGameError(types.ErrInvalidArgument, "no indices given")
		}
		args = strings.Fields(line)
	}
	return parseIndices(args)
}

func parseIndices(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, types.NewGameError(types.ErrInvalidSelection, "please choose at least one card")
	}
	out := make([]int, 0, len(args))
	for _, a := range args {
		i, err := strconv.Atoi(a)
		if err != nil {
			return nil, types.WrapError(types.ErrInvalidArgument, "input format error", err)
		}
		out = append(out, i)
	}
	return out, nil
}

// report shows player-facing errors and passes everything else up
func (c *Console) report(err error) error {
	if err == nil {
		return nil
	}
	var gameErr *types.GameError
	if !types.As(err, &gameErr) || gameErr.Code == types.ErrInternalError {
		c.logger.LogError(err)
		return err
	}
	c.logger.Debug("Rejected input: %v", err)
	c.printer.Warning("%s", gameErr.Message)
	return nil
}

// readLine returns false at end of input or once ctx is cancelled
func (c *Console) readLine(ctx context.Context, prompt string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	c.printer.Prompt(prompt)
	select {
	case line, ok := <-c.lines:
		if !ok {
			c.eof = true
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-ctx.Done():
		return "", false
	}
}

func (c *Console) showHand() {
	c.game.SortHand()
	c.printer.Hand(c.game.Hand, c.game.PlaysLeft, c.game.DiscardsLeft, c.game.TotalScore)
}

func (c *Console) finish(ctx context.Context) error {
	stats := entities.NewSessionStatistics(c.game.ID)
	if c.history != nil {
		var err error
		stats, err = c.history.GetStatistics(ctx, c.game.ID)
		if err != nil {
			return fmt.Errorf("loading session statistics: %w", err)
		}
	}
	if err := c.printer.Summary(stats); err != nil {
		return err
	}
	c.printer.Info("Thanks for playing.")
	return nil
}
