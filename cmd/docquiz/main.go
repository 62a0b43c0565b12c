package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docquiz"
	"github.com/fwojciec/docquiz/gemini"
	"github.com/fwojciec/docquiz/goquery"
	"github.com/fwojciec/docquiz/html"
	dqhttp "github.com/fwojciec/docquiz/http"
	"github.com/fwojciec/docquiz/quiz"
	"github.com/fwojciec/docquiz/rod"
	dqslog "github.com/fwojciec/docquiz/slog"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, they are built from flags.
	Fetcher   docquiz.Fetcher
	Completer docquiz.Completer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run parses args, wires services and plays one quiz session.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docquiz"),
		kong.Description("Quiz yourself on random sections of an online documentation tree"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"index_url": docquiz.DefaultIndexURL,
			"base_url":  docquiz.DefaultBaseURL,
			"model":     gemini.DefaultModel,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" || arg == "help" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cli.LogLevel, err)
	}
	session := &docquiz.Session{ID: uuid.NewString()}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("session", session.ID)

	fetcher := m.Fetcher
	if fetcher == nil {
		if cli.Render {
			rodFetcher, err := rod.NewFetcher(
				rod.WithFetchTimeout(cli.Timeout),
				rod.WithRenderDelay(cli.RenderDelay),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = dqhttp.NewFetcher(dqhttp.WithTimeout(cli.Timeout))
		}
	}
	defer fetcher.Close()
	fetcher = dqslog.NewLoggingFetcher(fetcher, logger)

	completer := m.Completer
	if completer == nil {
		if cli.APIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return docquiz.Errorf(docquiz.EUNAUTHORIZED, "GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		completer = gemini.NewCompleter(client, cli.Model)
	}
	completer = dqslog.NewLoggingCompleter(completer, logger)

	generator := &quiz.Generator{
		Fetcher:        fetcher,
		Extractor:      newContentExtractor(cli),
		Completer:      completer,
		MaxBlockTokens: cli.MaxBlockTokens,
	}
	if cli.MaxBlockTokens > 0 {
		tokenCounter, err := gemini.NewTokenCounter(cli.Model)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		generator.TokenCounter = tokenCounter
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Fetcher:   fetcher,
		Links:     goquery.NewLinkSelector(),
		Generator: dqslog.NewLoggingGenerator(generator, logger),
		Session:   session,
	}

	cmd := &PlayCmd{
		IndexURL: cli.IndexURL,
		BaseURL:  cli.BaseURL,
	}
	return cmd.Run(deps)
}

func newContentExtractor(cli *CLI) *html.ContentExtractor {
	if cli.NoTrailingFlush {
		return html.NewContentExtractor(html.WithoutTrailingFlush())
	}
	return html.NewContentExtractor()
}
