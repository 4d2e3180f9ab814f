package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/command"
	"github.com/vancomm/minefield/internal/mines"
)

const help = `commands:
  o <row> <col>   reveal a cell
  f <row> <col>   toggle a flag
  n <difficulty>  new game (after x)
  x               reset
  g               redraw
  q               quit
`

func describe(ev mines.Event) string {
	switch ev.Kind {
	case mines.EventNoFlags:
		return "no flags left"
	case mines.EventExploded:
		return fmt.Sprintf("boom at %s", ev.Point)
	case mines.EventWon:
		return "you win!"
	case mines.EventLost:
		return "you lose"
	}
	return ""
}

// run plays e from commands read on in and draws the board on out. It
// returns when in is exhausted or the player quits.
func run(in io.Reader, out io.Writer, e *mines.Engine, d mines.Difficulty) error {
	if _, err := e.Start(int(d)); err != nil {
		return err
	}

	fmt.Fprint(out, help)
	fmt.Fprint(out, e.Snapshot())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" {
			return nil
		}

		cmd, err := command.Parse(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		events, err := cmd.Apply(e)
		log.WithFields(logrus.Fields{
			"command": cmd.String(),
			"state":   e.State().String(),
			"events":  len(events),
		}).Debug("applied")
		if err != nil {
			log.WithField("command", cmd.String()).Warn(err)
			fmt.Fprintln(out, err)
			continue
		}

		for _, ev := range events {
			if msg := describe(ev); msg != "" {
				fmt.Fprintln(out, msg)
			}
			if ev.Kind == mines.EventWon || ev.Kind == mines.EventLost {
				log.WithFields(logrus.Fields{
					"result": ev.Kind,
					"size":   e.Size(),
					"mines":  e.TotalMines(),
				}).Info("game over")
			}
		}
		if e.State() != mines.Waiting {
			fmt.Fprint(out, e.Snapshot())
		}
	}
	return scanner.Err()
}
