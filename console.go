package main

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	log "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/paulcager/sectorradar/radar"
)

// Console drives a Tracker from single-character commands.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	logger  log.Logger
	tracker *radar.Tracker
	gen     *Generator

	// Optional.
	exporter     *Exporter
	scenarioPath string
}

func NewConsole(in io.Reader, out io.Writer, logger log.Logger, gen *Generator) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger,
		tracker: radar.NewTracker(logger),
		gen:     gen,
	}
}

// Run processes commands until 'q' or the end of input.
func (c *Console) Run() error {
	for {
		c.printMenu()
		cmd, err := c.readCommand()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := c.handle(cmd)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out, "get objects' position press g")
	fmt.Fprintln(c.out, "clear objects press c")
	fmt.Fprintln(c.out, "print result press p")
	if c.scenarioPath != "" {
		fmt.Fprintln(c.out, "load scenario press l")
	}
	fmt.Fprintln(c.out, "quit program press q")
}

// readCommand returns the next non-space character.
func (c *Console) readCommand() (rune, error) {
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

func (c *Console) handle(cmd rune) (quit bool, err error) {
	switch cmd {
	case 'g':
		objs := c.gen.Generate()
		level.Info(c.logger).Log("msg", "generated objects", "nb_objects", len(objs))
		c.populate(objs)

	case 'c':
		c.tracker.Clear()

	case 'p':
		res := c.tracker.Classify()
		if _, err := fmt.Fprintln(c.out, res.Grid.String()); err != nil {
			return false, err
		}
		if c.exporter != nil {
			c.exporter.Observe(res)
		}
		c.tracker.Clear()

	case 'l':
		if c.scenarioPath == "" {
			level.Warn(c.logger).Log("msg", "no scenario file configured")
			break
		}
		objs, err := loadScenario(c.scenarioPath)
		if err != nil {
			level.Error(c.logger).Log("msg", "loading scenario", "file", c.scenarioPath, "err", err)
			break
		}
		level.Info(c.logger).Log("msg", "loaded scenario", "file", c.scenarioPath, "nb_objects", len(objs))
		c.populate(objs)

	case 'q':
		return true, nil

	default:
		level.Debug(c.logger).Log("msg", "ignoring command", "cmd", string(cmd))
	}
	return false, nil
}

func (c *Console) populate(objs []radar.TrackedObject) {
	if err := c.tracker.Populate(objs...); err != nil {
		level.Error(c.logger).Log("msg", "rejected objects", "err", err)
	}
}
