package quiz

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/docquiz"
)

// Game runs the interactive quiz over a line-oriented terminal.
//
// Each round generates a quiz, reads an answer, reveals the outcome and asks
// whether to continue. Skipped rounds go straight to the next quiz and are
// not counted in Session.Rounds.
type Game struct {
	generator docquiz.QuizGenerator
	in        *bufio.Scanner
	out       io.Writer
}

// NewGame creates a Game reading answers from in and writing to out.
func NewGame(generator docquiz.QuizGenerator, in io.Reader, out io.Writer) *Game {
	return &Game{
		generator: generator,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Play runs rounds until the player declines to continue or input ends,
// then prints the final score. Session counters are updated in place.
// A generation error ends the game and is returned.
func (g *Game) Play(ctx context.Context, session *docquiz.Session, links []string) error {
	fmt.Fprintln(g.out, "Welcome to the Python Quiz Game! 🐍")
	fmt.Fprintln(g.out, "You will receive a random question from the Python doc, try to answer it correctly ✅.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(g.out, "Generating a question...")
		round, err := g.generator.Generate(ctx, links)
		if err != nil {
			return fmt.Errorf("generating question: %w", err)
		}
		g.printRound(round)

		choice, ok := g.readChoice(len(round.Quiz.Options))
		if !ok {
			break
		}
		if choice == 0 {
			fmt.Fprintln(g.out, "Skipping...")
			continue
		}

		if round.Quiz.Options[choice-1].Correct {
			fmt.Fprintln(g.out, "Correct! 🎉")
			session.Points++
		} else {
			fmt.Fprintln(g.out, "Wrong! 😢")
			fmt.Fprintln(g.out, "The correct answer is: ")
			for _, i := range round.Quiz.CorrectOptions() {
				fmt.Fprintf(g.out, "%d. %s\n", i+1, round.Quiz.Options[i].Answer)
			}
		}
		session.Rounds++

		fmt.Fprint(g.out, "Do you want to continue? (y/n) ")
		line, ok := g.readLine()
		if !ok || line != "y" {
			break
		}
	}

	fmt.Fprintf(g.out, "Your score is: %s 🎉\n", session.Score())
	return nil
}

func (g *Game) printRound(round *docquiz.Round) {
	fmt.Fprintf(g.out, "Question: %s from %s\n", round.Quiz.Question, round.SourceURL)
	for i, opt := range round.Quiz.Options {
		fmt.Fprintf(g.out, "%d. %s\n", i+1, opt.Answer)
	}
	fmt.Fprintf(g.out, "Choose an answer (1-%d): or enter 0 to skip\n", len(round.Quiz.Options))
}

// readChoice reads until the player enters exactly "0" (skip) or a valid
// option number. It reports false when input ends.
func (g *Game) readChoice(n int) (int, bool) {
	for {
		fmt.Fprint(g.out, "Your answer: ")
		line, ok := g.readLine()
		if !ok {
			return 0, false
		}
		if line == "0" {
			return 0, true
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= n {
			return choice, true
		}
		fmt.Fprintf(g.out, "Please enter a number between 0 and %d.\n", n)
	}
}

func (g *Game) readLine() (string, bool) {
	if !g.in.Scan() {
		return "", false
	}
	return g.in.Text(), true
}
