package main

import (
	"flag"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minefield/internal/mines"
)

var (
	log = logrus.New()

	difficulty string
	logPath    string
	debug      bool
)

func init() {
	flag.StringVar(&difficulty, "difficulty", mines.Easy.String(), "easy, medium, hard or a grid size")
	flag.StringVar(&logPath, "log", "", "log file path, rotated; logging is off when empty")
	flag.BoolVar(&debug, "debug", false, "log every command")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if debug {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(io.Discard)

	if logPath == "" {
		return
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("unable to open log file: ", err)
	}
	log.AddHook(hook)
}

func main() {
	flag.Parse()
	setupLogging()

	d, err := mines.ParseDifficulty(difficulty)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	rnd := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
	e := mines.NewEngine(mines.NewBernoulli(rnd))

	log.WithFields(logrus.Fields{"difficulty": d.String()}).Info("starting")
	if err := run(os.Stdin, os.Stdout, e, d); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
