// Command cubewalk folds a cube net, walks the instruction line over the
// folded surface and prints the final score.
//
// Usage:
//
//	cubewalk [-config cubewalk.yaml] [-input puzzle.txt]
//
// Settings come from the optional YAML file, a .env file and CUBEWALK_*
// variables; -input overrides them all. Input "-" reads standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/cubewalk/config"
	"github.com/katalvlaran/cubewalk/facegraph"
	"github.com/katalvlaran/cubewalk/logger"
	"github.com/katalvlaran/cubewalk/netgrid"
	"github.com/katalvlaran/cubewalk/walk"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	input := flag.String("input", "", "puzzle file, - for stdin (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cubewalk:", err)
		os.Exit(2)
	}
	if *input != "" {
		cfg.Input = *input
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cubewalk:", err)
		os.Exit(2)
	}
	log = log.With().Str("run", uuid.NewString()).Logger()

	in, err := openInput(cfg.Input)
	if err != nil {
		log.Error().Err(err).Str("input", cfg.Input).Msg("open input")
		os.Exit(1)
	}
	err = run(cfg, in, os.Stdout, log)
	_ = in.Close()
	if err != nil {
		log.Error().Err(err).Str("input", cfg.Input).Msg("cubewalk failed")
		os.Exit(1)
	}
}

// openInput opens the puzzle file, or standard input for "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// run parses the puzzle from in, folds and walks it, and writes the final
// state and score to out.
func run(cfg config.Config, in io.Reader, out io.Writer, log zerolog.Logger) error {
	puzzle, err := netgrid.Parse(in)
	if err != nil {
		return err
	}
	net, err := puzzle.Grid.AutoNet()
	if err != nil {
		return err
	}
	log.Info().Int("width", puzzle.Grid.Width).Int("height", puzzle.Grid.Height).
		Int("face_size", net.FaceSize()).Msg("net parsed")

	g, err := facegraph.Build(net,
		facegraph.WithMaxPasses(cfg.Build.MaxPasses),
		facegraph.WithLogger(log),
	)
	if err != nil {
		return err
	}

	program, err := walk.ParseInstructions(puzzle.Path)
	if err != nil {
		return err
	}
	opts := []walk.Option{walk.WithLogger(log)}
	if cfg.Walk.Trace {
		opts = append(opts, walk.WithTrace())
	}
	res, err := walk.Walk(g, net, walk.Start(), program, opts...)
	if err != nil {
		return err
	}
	for i, s := range res.Trace {
		log.Debug().Int("i", i).Stringer("state", s).Msg("visited")
	}

	score, err := walk.Score(g, res.Final)
	if err != nil {
		return err
	}
	log.Info().Stringer("final", res.Final).Int("moved", res.Moved).
		Int("crossings", res.Crossings).Int("blocked", res.Blocked).Msg("walk finished")

	if _, err := fmt.Fprintf(out, "final: %v\nscore: %d\n", res.Final, score); err != nil {
		return err
	}
	if cfg.Walk.Trace {
		_, err = fmt.Fprintf(out, "visited: %d\n", len(res.Trace))
	}
	return err
}
