// Command normalize prints the spoken form of Russian text.
//
// Input is taken from --text, from the named files in order, or from stdin
// when neither is given. With --report, numerals that could not be spelled
// out are listed on stderr.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/alex-dev-neo/xtts-api-server/internal/app"
	"github.com/alex-dev-neo/xtts-api-server/internal/config"
)

var cli struct {
	Config string   `name:"config" short:"c" help:"Config file (default: CONFIG_PATH or ./config.yaml)" type:"path"`
	Text   string   `name:"text" short:"t" help:"Text to normalize"`
	Report bool     `name:"report" help:"Print render failures to stderr"`
	Files  []string `arg:"" optional:"" help:"Files to normalize" type:"existingfile"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("normalize"),
		kong.Description("Normalize Russian text for speech synthesis"),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := app.BuildNormalizer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build normalizer: %w", err)
	}
	defer n.Close()

	inputs, err := readInputs(cli.Text, cli.Files)
	if err != nil {
		return err
	}

	for _, in := range inputs {
		report, err := n.Service.Process(ctx, in.text)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		fmt.Fprintln(os.Stdout, report.Text)

		if cli.Report {
			for _, f := range report.Failures {
				fmt.Fprintf(os.Stderr, "%s: %q left as digits (%s): %v\n", in.name, f.Text, f.Decision, f.Err)
			}
		}
		logger.Debug("normalized",
			slog.String("input", in.name),
			slog.Int("rendered", report.Rendered),
			slog.Int("failures", len(report.Failures)),
		)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path, true)
	}
	return config.Load()
}

type input struct {
	name string
	text string
}

func readInputs(text string, files []string) ([]input, error) {
	if text != "" {
		return []input{{name: "--text", text: text}}, nil
	}
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []input{{name: "stdin", text: string(data)}}, nil
	}

	out := make([]input, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		out = append(out, input{name: f, text: string(data)})
	}
	return out, nil
}
