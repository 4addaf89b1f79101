package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fadedpez/balatro/internal/logging"
	"github.com/fadedpez/balatro/pkg/cards"
	"github.com/fadedpez/balatro/pkg/display"
	"github.com/fadedpez/balatro/pkg/game"
	"github.com/fadedpez/balatro/pkg/repositories/history"
	"github.com/stretchr/testify/suite"
)

type ConsoleTestSuite struct {
	suite.Suite
	out  *bytes.Buffer
	repo *history.MemoryRepository
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

func (s *ConsoleTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.repo = history.NewMemoryRepository()
}

// deckStartingWith returns a full deck whose first cards are the given ones
func (s *ConsoleTestSuite) deckStartingWith(first string) *cards.Deck {
	top, err := cards.ParseCards(first)
	s.Require().NoError(err)

	used := make(map[cards.Card]bool, len(top))
	for _, c := range top {
		used[c] = true
	}
	deck := &cards.Deck{Cards: top}
	for _, c := range cards.NewDeck().Cards {
		if !used[c] {
			deck.Cards = append(deck.Cards, c)
		}
	}
	return deck
}

func (s *ConsoleTestSuite) run(first, input string) *game.Game {
	g := game.NewGame(s.deckStartingWith(first), game.WithHistory(s.repo))
	g.Deal()
	printer := display.NewPrinter(s.out, false)
	c := New(g, s.repo, printer, logging.Discard, strings.NewReader(input))

	s.Require().NoError(c.Run(context.Background()))
	return g
}

func (s *ConsoleTestSuite) TestPlayWithInlineIndices() {
	// sorted hand: ♠10 ♠J ♠Q ♠K ♠A ♥2 ♦3
	g := s.run("As Ks Qs Js 10s 2h 3d", "p 0 1 2 3 4\nq\n")

	out := s.out.String()
	s.Contains(out, "Cards in hand: [0]♠10 [1]♠J [2]♠Q [3]♠K [4]♠A [5]♥2 [6]♦3")
	s.Contains(out, "Cards type: Straight flush")
	s.Contains(out, "Counting: (100 + 60) × 8 = 1280")
	s.Contains(out, "Game Over!")
	s.Contains(out, "Total score: 1280")
	s.Contains(out, "Thanks for playing.")
	s.Equal(1280, g.TotalScore)
	s.Equal(game.MaxPlays-1, g.PlaysLeft)
}

func (s *ConsoleTestSuite) TestPlayWithIndicesOnNextLine() {
	// sorted hand: ♠2 ♥7 ♦7 ♦9 ♣7 ...
	g := s.run("7h 7d 7c 2s 9d Kc Qc", "play\n1 2 4\nquit\n")

	s.Contains(s.out.String(), "Enter indices")
	s.Contains(s.out.String(), "Cards type: Three of a kind")
	s.Equal(153, g.TotalScore)
}

func (s *ConsoleTestSuite) TestInvalidInputIsReported() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "unknown command", input: "x\nq\n", expected: "unknown command \"x\""},
		{name: "not a number", input: "p a b\nq\n", expected: "input format error"},
		{name: "duplicate index", input: "p 0 0\nq\n", expected: "duplicate index 0"},
		{name: "out of range", input: "p 9\nq\n", expected: "index 9 out of range"},
		{name: "too many cards", input: "p 0 1 2 3 4 5\nq\n", expected: "choose at most 5 cards"},
		{name: "empty selection", input: "p\n\nq\n", expected: "please choose at least one card"},
		{name: "bad card in eval", input: "e 1s\nq\n", expected: "unknown rank"},
		{name: "eval without cards", input: "e\nq\n", expected: "give the cards to evaluate"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			g := s.run("2s 4h 6d 9c Js Kh 3c", tc.input)

			s.Contains(s.out.String(), tc.expected)
			s.Equal(game.MaxPlays, g.PlaysLeft, "Rejected input must not use a play")
			s.Equal(0, g.TotalScore)
		})
	}
}

func (s *ConsoleTestSuite) TestDiscard() {
	// sorted hand: ♠2 ♠J ♥4 ♥K ♦6 ♣3 ♣9; next cards drawn: ♠A ♥A
	g := s.run("2s 4h 6d 9c Js Kh 3c As Ah", "d 0 1\nq\n")

	s.Contains(s.out.String(), "Discard: ♠2 ♠J")
	s.Contains(s.out.String(), "Remaining discards: 3")
	s.Equal(game.MaxDiscards-1, g.DiscardsLeft)
	s.Contains(cards.Strings(g.Hand), "♠A")
	s.Contains(cards.Strings(g.Hand), "♥A")
}

func (s *ConsoleTestSuite) TestDiscardsExhausted() {
	input := strings.Repeat("d 0\n", game.MaxDiscards+1) + "q\n"

	g := s.run("2s 4h 6d 9c Js Kh 3c", input)

	s.Equal(0, g.DiscardsLeft)
	s.Contains(s.out.String(), "no discard left")
}

func (s *ConsoleTestSuite) TestEval() {
	g := s.run("2s 4h 6d 9c Js Kh 3c", "e As 2h 3d 4c 5s\nq\n")

	s.Contains(s.out.String(), "Straight")
	s.Contains(s.out.String(), "(40 + 28) × 4 = 272")
	s.Equal(game.MaxPlays, g.PlaysLeft, "Evaluating does not play")
}

func (s *ConsoleTestSuite) TestSortAndHelp() {
	s.run("2s 4h 6d 9c Js Kh 3c", "s\nh\nq\n")

	s.Contains(s.out.String(), "Commands")
	s.Contains(s.out.String(), "Straight flush")
}

func (s *ConsoleTestSuite) TestGameEndsAfterAllPlays() {
	input := strings.Repeat("p 0\n", game.MaxPlays) + "p 0\n"

	g := s.run("2s 4h 6d 9c Js Kh 3c", input)

	s.True(g.IsOver())
	s.Equal(0, g.PlaysLeft)
	s.Contains(s.out.String(), "Game Over!")
	s.Contains(s.out.String(), "Plays: 5")
}

func (s *ConsoleTestSuite) TestEndOfInputQuits() {
	g := s.run("2s 4h 6d 9c Js Kh 3c", "p 0")

	s.Equal(game.MaxPlays-1, g.PlaysLeft)
	s.Contains(s.out.String(), "Game Over!")
}

func (s *ConsoleTestSuite) TestCancelledBeforeRun() {
	g := game.NewGame(s.deckStartingWith("2s"))
	g.Deal()
	c := New(g, nil, display.NewPrinter(s.out, false), logging.Discard, strings.NewReader("p 0\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.Require().NoError(c.Run(ctx))
	s.Equal(game.MaxPlays, g.PlaysLeft, "No command runs after cancellation")
	s.Contains(s.out.String(), "Game Over!")
}

func (s *ConsoleTestSuite) TestCancelWhileWaitingForInput() {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "at the command prompt", input: ""},
		{name: "at the indices prompt", input: "p\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			pr, pw := io.Pipe()
			defer pw.Close()

			g := game.NewGame(s.deckStartingWith("2s 4h 6d 9c Js Kh 3c"), game.WithHistory(s.repo))
			g.Deal()
			c := New(g, s.repo, display.NewPrinter(s.out, false), logging.Discard, pr)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			result := make(chan error, 1)
			go func() {
				result <- c.Run(ctx)
			}()

			if tc.input != "" {
				_, err := io.WriteString(pw, tc.input)
				s.Require().NoError(err)
			}
			time.Sleep(50 * time.Millisecond)
			cancel()

			select {
			case err := <-result:
				s.Require().NoError(err)
			case <-time.After(2 * time.Second):
				s.FailNow("Run did not return after cancel")
			}
			s.Equal(game.MaxPlays, g.PlaysLeft)
			s.Contains(s.out.String(), "Game Over!")
			s.NotContains(s.out.String(), "WARNING")
		})
	}
}

func (s *ConsoleTestSuite) TestParseIndices() {
	indices, err := parseIndices([]string{"3", "0", "6"})
	s.Require().NoError(err)
	s.Equal([]int{3, 0, 6}, indices)

	_, err = parseIndices([]string{"1", "x"})
	s.Error(err)
}
