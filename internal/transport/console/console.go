package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const promptPrefix = "==> "

type line struct {
	text string
	err  error
}

// Console is the line-based prompt the games talk through.
type Console struct {
	logger *slog.Logger
	out    io.Writer

	lines chan line
}

// New starts reading in from a background goroutine so Ask can give up when its context is canceled.
func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	that := &Console{
		logger: logger.With("component", "console"),
		out:    out,
		lines:  make(chan line),
	}

	go that.readLines(bufio.NewReader(in))

	return that
}

func (that *Console) readLines(reader *bufio.Reader) {
	defer close(that.lines)

	for {
		text, err := reader.ReadString('\n')
		if text != "" || err == nil {
			that.lines <- line{text: text}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				that.lines <- line{err: err}
			}

			return
		}
	}
}

// Ask prints the question and blocks until a line arrives. The answer is trimmed and lower-cased.
func (that *Console) Ask(ctx context.Context, question string) (string, error) {
	that.Say(question)

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("prompt abandoned: %w", ctx.Err())
	case answer, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}

		if answer.err != nil {
			return "", fmt.Errorf("failed to read input: %w", answer.err)
		}

		token := strings.ToLower(strings.TrimSpace(answer.text))
		that.logger.Debug("answer received", "question", question, "answer", token)

		return token, nil
	}
}

func (that *Console) Say(msg string) {
	that.printf("%s%s\n", promptPrefix, msg)
}

// Clear pushes a blank line between rounds.
func (that *Console) Clear() {
	that.printf("\n")
}

func (that *Console) ShowBoard(board *entity.Board) {
	row := func(first int) string {
		return fmt.Sprintf("  %s  |  %s  |  %s",
			board.Square(first), board.Square(first+1), board.Square(first+2))
	}

	const (
		spacer    = "     |     |"
		separator = "-----+-----+-----"
	)

	lines := []string{
		"",
		spacer, row(1), spacer,
		separator,
		spacer, row(4), spacer,
		separator,
		spacer, row(7), spacer,
		"",
	}

	that.printf("%s\n", strings.Join(lines, "\n"))
}

func (that *Console) ShowHand(label string, hand *entity.Hand) {
	that.Say(fmt.Sprintf("%s: %s (score %d)", label, hand, hand.Score()))
}

func (that *Console) ShowTally(kind entity.GameKind, tally entity.Tally) {
	that.Say(fmt.Sprintf("Record in %s: %d won, %d lost, %d tied", kind, tally.Wins, tally.Losses, tally.Draws))
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
