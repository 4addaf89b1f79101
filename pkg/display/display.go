package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/balatro/pkg/cards"
	"github.com/fadedpez/balatro/pkg/entities"
	"github.com/fadedpez/balatro/pkg/scoring"
	"github.com/pterm/pterm"
)

// FormatCard renders a card suit first, hearts and diamonds in red
func FormatCard(c cards.Card) string {
	switch c.Suit() {
	case cards.Hearts, cards.Diamonds:
		return pterm.LightRed(c.String())
	default:
		return pterm.LightWhite(c.String())
	}
}

// FormatCards renders cards separated by spaces
func FormatCards(cs []cards.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = FormatCard(c)
	}
	return strings.Join(parts, " ")
}

// HandLine renders a hand with selection indices, e.g. "[0]♠A [1]♥K"
func HandLine(hand []cards.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = fmt.Sprintf("[%d]%s", i, FormatCard(c))
	}
	return strings.Join(parts, " ")
}

// Counting renders the score formula of a result, e.g. "(100 + 60) × 8 = 1280"
func Counting(r scoring.Result) string {
	return fmt.Sprintf("(%d + %d) × %d = %d", r.Base, r.ChipSum(), r.Multiplier, r.Score())
}

// Printer writes game screens to w
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer. Color is a process-wide pterm setting.
func NewPrinter(w io.Writer, color bool) *Printer {
	if color {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
	return &Printer{w: w}
}

func (p *Printer) println(a ...interface{}) {
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) separator() {
	p.println(strings.Repeat("=", 50))
}

// Banner prints the title and the rules
func (p *Printer) Banner(plays, discards int) {
	p.println(pterm.DefaultHeader.Sprint("Simple Balatro Game!"))
	rules := []string{
		fmt.Sprintf("You have %d chances to play cards and %d chances to discard.", plays, discards),
		"Different card combinations score differently based on their difficulty.",
		"Objective: achieve the highest possible total score!",
	}
	p.println(pterm.DefaultBox.WithTitle("Game rules").Sprint(strings.Join(rules, "\n")))
}

// Hand prints the hand with indices and the session counters
func (p *Printer) Hand(hand []cards.Card, playsLeft, discardsLeft, total int) {
	p.println("Cards in hand:", HandLine(hand))
	p.println(fmt.Sprintf("Remaining plays: %d, Remaining discards: %d", playsLeft, discardsLeft))
	p.println(fmt.Sprintf("Total score: %d", total))
	p.separator()
}

// Play prints the outcome of a play
func (p *Printer) Play(record *entities.PlayRecord) {
	r := record.Result
	lines := []string{
		fmt.Sprintf("The cards you played: %s", FormatCards(record.Played)),
		fmt.Sprintf("Cards used for score: %s", FormatCards(r.Scoring)),
		fmt.Sprintf("Cards type: %s", pterm.LightCyan(r.Name)),
		fmt.Sprintf("Counting: %s", Counting(r)),
		fmt.Sprintf("Your score: %d", record.Score),
		fmt.Sprintf("Total score: %d", record.TotalScore),
	}
	p.println(pterm.DefaultBox.WithTitle(fmt.Sprintf("Play %d", record.Turn)).Sprint(strings.Join(lines, "\n")))
}

// Evaluation prints the classification of arbitrary cards without playing them
func (p *Printer) Evaluation(cs []cards.Card, r scoring.Result) {
	p.println(fmt.Sprintf("%s -> %s, scoring %s, %s",
		FormatCards(cs), pterm.LightCyan(r.Name), FormatCards(r.Scoring), Counting(r)))
}

// Discard prints the discarded cards
func (p *Printer) Discard(discarded []cards.Card, discardsLeft int) {
	p.println(fmt.Sprintf("Discard: %s", FormatCards(discarded)))
	p.println(fmt.Sprintf("Remaining discards: %d", discardsLeft))
}

// Info prints an informational message
func (p *Printer) Info(format string, args ...interface{}) {
	p.println(pterm.Info.Sprintf(format, args...))
}

// Warning prints a user-facing problem with the last input
func (p *Printer) Warning(format string, args ...interface{}) {
	p.println(pterm.Warning.Sprintf(format, args...))
}

// CategoryTable renders the fixed base and multiplier of every category
func CategoryTable() (string, error) {
	data := pterm.TableData{{"Type", "Base", "Mult"}}
	for i := len(scoring.CardTypes) - 1; i >= 0; i-- {
		t := scoring.CardTypes[i]
		data = append(data, []string{t.Name(), fmt.Sprint(t.Base()), fmt.Sprint(t.Multiplier())})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// Summary prints the final score and the per-category breakdown of the session
func (p *Printer) Summary(stats *entities.SessionStatistics) error {
	p.println()
	p.println(pterm.DefaultHeader.Sprint("Game Over!"))
	p.println(fmt.Sprintf("Total score: %d", stats.TotalScore))
	if stats.Plays == 0 {
		return nil
	}

	p.println(fmt.Sprintf("Plays: %d, average score: %.1f", stats.Plays, stats.AverageScore()))
	if best := stats.BestPlay; best != nil {
		p.println(fmt.Sprintf("Best play: %s with %s for %d", best.Result.Name, FormatCards(best.Result.Scoring), best.Score))
	}

	data := pterm.TableData{{"Type", "Count"}}
	for i := len(scoring.CardTypes) - 1; i >= 0; i-- {
		t := scoring.CardTypes[i]
		if n := stats.TypeCounts[t]; n > 0 {
			data = append(data, []string{t.Name(), fmt.Sprint(n)})
		}
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering summary table: %w", err)
	}
	p.println(table)
	return nil
}

// Prompt prints text without a trailing newline
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.w, text)
}

// Help prints the command list and the category table
func (p *Printer) Help() error {
	commands := []string{
		"p, play [indices]      play 1-5 cards, e.g. p 0 2 4",
		"d, discard [indices]   discard cards and draw replacements",
		"s, sort                sort the hand by suit and strength",
		"e, eval <cards>        score arbitrary cards, e.g. e As Ks Qs Js 10s",
		"h, help                show this help",
		"q, quit                end the game",
	}
	p.println(pterm.DefaultBox.WithTitle("Commands").Sprint(strings.Join(commands, "\n")))
	table, err := CategoryTable()
	if err != nil {
		return fmt.Errorf("rendering category table: %w", err)
	}
	p.println(table)
	return nil
}
