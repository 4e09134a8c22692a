package main

import (
	"context"
	"flag"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/okhazov/minesweeper-agent/internal/agent"
	"github.com/okhazov/minesweeper-agent/internal/board"
	"github.com/okhazov/minesweeper-agent/internal/config"
)

var log = logrus.New()

var (
	level   string
	shape   string
	games   int
	verbose bool
	logPath string
)

func init() {
	flag.StringVar(&level, "level", "intermediate",
		"difficulty preset (beginner, intermediate, expert, professional)")
	flag.StringVar(&shape, "shape", "square", "board shape (square, hexagon)")
	flag.IntVar(&games, "games", 100, "number of games to play")
	flag.BoolVar(&verbose, "v", false, "log every game")
	flag.StringVar(&logPath, "log", "", "also log to a rotating file")
}

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if verbose || config.Development() {
		log.SetLevel(logrus.DebugLevel)
	}
	if logPath == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create log file hook: ", err)
	}
	log.AddHook(hook)
}

func main() {
	flag.Parse()
	setupLogging()

	params, ok := board.Levels[level]
	if !ok {
		log.Fatal("unknown level ", level)
	}
	params.Shape = board.Shape(shape)
	if !params.Shape.Valid() {
		log.Fatal("unknown shape ", shape)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rnd := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))

	player := agent.New()
	player.Solver.MaxFrontier = config.SolverMaxFrontier(player.Solver.MaxFrontier)
	player.Solver.MaxNodes = config.SolverMaxNodes(player.Solver.MaxNodes)
	// Route the agent's slog output into logrus so everything lands in
	// the same stream and file hook.
	player.Logger = slog.New(slog.NewTextHandler(log.Writer(), nil))
	player.Solver.Logger = player.Logger

	log.WithFields(logrus.Fields{
		"level": level,
		"shape": shape,
		"games": games,
	}).Info("starting batch")

	var won, lost, guessed int
	for n := range games {
		if ctx.Err() != nil {
			break
		}
		b, err := board.New(params, rnd)
		if err != nil {
			log.Fatal("bad params: ", err)
		}
		res, err := player.Play(ctx, b)
		if err != nil {
			log.WithField("game", n).Error("agent stopped: ", err)
			break
		}
		if res.Won {
			won++
		} else {
			lost++
		}
		if res.Guesses > 0 {
			guessed++
		}
		log.WithFields(logrus.Fields{
			"game":    n,
			"moves":   res.Moves,
			"guesses": res.Guesses,
		}).Debug(res)
	}

	played := won + lost
	if played == 0 {
		return
	}
	log.WithFields(logrus.Fields{
		"played":   played,
		"won":      won,
		"win_rate": fmt.Sprintf("%.1f%%", 100*float64(won)/float64(played)),
		"guessed":  guessed,
	}).Info("batch finished")
}
