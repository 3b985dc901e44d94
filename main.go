package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"loa/engine"
	"loa/experiments"
	"loa/game"
	"loa/searcher"
)

func main() {
	blackSpec := flag.String("black", "machine:3", "black agent, machine:<depth> or random")
	whiteSpec := flag.String("white", "machine:3", "white agent, machine:<depth> or random")
	limit := flag.Int("limit", game.DefaultMoveLimit, "moves per side before the game is a tie")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for random agents")
	level := flag.String("level", "info", "log level")
	experiment := flag.Bool("experiment", false, "run the depth experiment instead of a single game")
	flag.Parse()

	setupLogging(*level)

	if *experiment {
		if err := experiments.RunDepthExperiment(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	black, err := newAgent(game.Black, *blackSpec, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("bad black agent")
	}
	white, err := newAgent(game.White, *whiteSpec, *seed+1)
	if err != nil {
		log.Fatal().Err(err).Msg("bad white agent")
	}

	match := engine.NewMatch(black, white)
	match.Board.SetMoveLimit(*limit)
	winner, _ := match.Run()

	fmt.Println(match.Board)
	if winner == game.Empty {
		fmt.Println("Tie game.")
	} else {
		fmt.Printf("%s wins.\n", winner)
	}
}

func newAgent(side game.Piece, spec string, seed uint64) (engine.Agent, error) {
	kind, arg, _ := strings.Cut(spec, ":")
	switch kind {
	case "machine":
		depth := searcher.DefaultDepth
		if arg != "" {
			d, err := strconv.Atoi(arg)
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("bad machine depth %q", arg)
			}
			depth = d
		}
		search := searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithMetrics())
		return engine.NewMachineAgent(side, search), nil
	case "random":
		return engine.NewRandomAgent(side, seed), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
