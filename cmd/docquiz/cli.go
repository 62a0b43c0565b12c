package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docquiz"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   docquiz.Fetcher
	Links     docquiz.LinkSelector
	Generator docquiz.QuizGenerator
	Session   *docquiz.Session
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	IndexURL        string        `name:"index-url" default:"${index_url}" help:"Documentation index page listing the pages to quiz on"`
	BaseURL         string        `name:"base-url" default:"${base_url}" help:"Prefix joined with each internal link href"`
	Model           string        `short:"m" default:"${model}" env:"DOCQUIZ_MODEL" help:"Gemini model used to write questions"`
	APIKey          string        `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Timeout         time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Render          bool          `short:"r" help:"Render pages in headless Chrome before extracting"`
	RenderDelay     time.Duration `name:"render-delay" default:"0s" help:"Extra wait after page load when rendering"`
	MaxBlockTokens  int           `name:"max-block-tokens" default:"0" help:"Skip sections longer than this many tokens (0 = no limit)"`
	NoTrailingFlush bool          `name:"no-trailing-flush" help:"Ignore text after the last heading of a page"`
	LogLevel        string        `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level for diagnostics on stderr"`
}

// PlayCmd runs one interactive quiz session.
type PlayCmd struct {
	IndexURL string
	BaseURL  string
}
