package main

import (
	"context"
	"errors"
	"flag"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	envPath    string
	difficulty string
	seed       string
)

func init() {
	const (
		difficultyUsage = "preset (easy, medium, hard) or W:H:M; overrides MINES_DIFFICULTY"
		seedUsage       = "two PCG seeds as a:b for a reproducible game; overrides MINES_SEED"
	)
	flag.StringVar(&envPath, "env", "", "env file to load (default .env if present)")
	flag.StringVar(&difficulty, "difficulty", "", difficultyUsage)
	flag.StringVar(&difficulty, "d", "", difficultyUsage+" (shorthand)")
	flag.StringVar(&seed, "seed", "", seedUsage)
	flag.StringVar(&seed, "s", "", seedUsage+" (shorthand)")
}

func setupLogging(cfg *config.Logging) {
	loggers := []*logrus.Logger{log, mines.Log, console.Log}

	for _, l := range loggers {
		l.SetLevel(cfg.Level)
		// the board owns stdout
		l.SetOutput(os.Stderr)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: config.Development()})
	}

	if cfg.File == "" {
		return
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Level:      cfg.Level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create log file hook: ", err)
	}
	for _, l := range loggers {
		l.AddHook(hook)
	}
}

func loadSetup() mines.Setup {
	var (
		setup mines.Setup
		err   error
	)
	if difficulty != "" {
		setup, err = config.ParseDifficulty(difficulty)
	} else {
		setup, err = config.Difficulty()
	}
	if err != nil {
		log.Fatal("unable to load difficulty: ", err)
	}
	return setup
}

func createRand() *rand.Rand {
	var (
		s   [2]uint64
		ok  bool
		err error
	)
	if seed != "" {
		s, err = config.ParseSeed(seed)
		ok = err == nil
	} else {
		s, ok, err = config.Seed()
	}
	if err != nil {
		log.Fatal("unable to load seed: ", err)
	}
	if !ok {
		s = [2]uint64{new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64()}
	}
	log.WithField("seed", s).Debug("random source")
	return rand.New(rand.NewPCG(s[0], s[1]))
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	var envPaths []string
	if envPath != "" {
		envPaths = append(envPaths, envPath)
	}
	if err := config.LoadEnv(envPaths...); err != nil {
		log.Fatal(err)
	}

	logging, err := config.NewLogging()
	if err != nil {
		log.Fatal("unable to load logging config: ", err)
	}
	setupLogging(logging)
	log.WithFields(logging.Fields()).Debug("logging")

	setup := loadSetup()
	log.Info("starting up, setup = ", setup)

	session, err := mines.NewSession(setup, createRand())
	if err != nil {
		log.Fatal("unable to start a game: ", err)
	}

	shell := console.New(session, os.Stdout)
	if err := shell.Run(mainCtx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("exit reason: ", err)
	}
	log.Info("bye")
}
