package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/genricoloni/mediastage/internal/domain"
	"go.uber.org/zap"
)

// Driver is the engine surface the console drives
type Driver interface {
	Editor
	Load(path string) error
	Clear() error
	PointerDown(p domain.Point) error
	PointerMove(p domain.Point) error
	PointerUp() error
	Wheel(deltaY float64, modifier bool) error
	Key(key domain.Key) error
	Play() error
	Pause() error
	Seek(t float64) error
	State() domain.PlaybackState
	Snapshot() (image.Image, error)
}

// SnapshotWriter persists a rendered canvas
type SnapshotWriter interface {
	Save(img image.Image, path string) (string, error)
}

var errUsage = errors.New("usage")

// Console is a line-oriented driver: one command per line, one reply per command
type Console struct {
	logger    *zap.Logger
	driver    Driver
	panel     *Panel
	snapshots SnapshotWriter
	in        io.Reader
	out       io.Writer
}

// NewConsole creates a console reading commands from in and replying on out
func NewConsole(logger *zap.Logger, driver Driver, snapshots SnapshotWriter, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:    logger,
		driver:    driver,
		panel:     NewPanel(driver),
		snapshots: snapshots,
		in:        in,
		out:       out,
	}
}

// Run reads commands until the input ends or ctx is cancelled
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.logger.Info("Console ready")
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				c.logger.Info("Console input closed")
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if reply := c.Execute(line); reply != "" {
				fmt.Fprintln(c.out, reply)
			}
		}
	}
}

// Execute runs one command line and returns the reply
func (c *Console) Execute(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return ""
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	reply, err := c.dispatch(cmd, args, line)
	if errors.Is(err, errUsage) {
		return "error: " + usage(cmd)
	}
	if err != nil {
		c.logger.Debug("Console command failed", zap.String("command", cmd), zap.Error(err))
		return "error: " + err.Error()
	}
	if reply == "" {
		return "ok"
	}
	return reply
}

func (c *Console) dispatch(cmd string, args []string, line string) (string, error) {
	switch cmd {
	case "load":
		// paths may contain spaces
		path := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fieldsHead(line)))
		if path == "" {
			return "", errUsage
		}
		return "", c.driver.Load(path)

	case "clear":
		return "", c.driver.Clear()

	case "down", "move":
		p, err := parsePoint(args)
		if err != nil {
			return "", err
		}
		if cmd == "down" {
			return "", c.driver.PointerDown(p)
		}
		return "", c.driver.PointerMove(p)

	case "up":
		return "", c.driver.PointerUp()

	case "wheel":
		if len(args) < 1 {
			return "", errUsage
		}
		modifier := len(args) > 1 && strings.EqualFold(args[1], "ctrl")
		return "", c.driver.Wheel(ParseNumber(args[0]), modifier)

	case "key":
		if len(args) != 1 {
			return "", errUsage
		}
		key, ok := ParseKey(args[0])
		if !ok {
			return "", fmt.Errorf("unknown key %q", args[0])
		}
		return "", c.driver.Key(key)

	case "set":
		if len(args) != 2 {
			return "", errUsage
		}
		return "", c.panel.Set(args[0], args[1])

	case "play":
		return "", c.driver.Play()

	case "pause":
		return "", c.driver.Pause()

	case "seek":
		if len(args) != 1 {
			return "", errUsage
		}
		return "", c.driver.Seek(ParseNumber(args[0]))

	case "status":
		return FormatState(c.driver.State()), nil

	case "snapshot":
		if len(args) != 1 {
			return "", errUsage
		}
		img, err := c.driver.Snapshot()
		if err != nil {
			return "", err
		}
		path, err := c.snapshots.Save(img, args[0])
		if err != nil {
			return "", err
		}
		return "saved " + path, nil
	}

	return "", fmt.Errorf("unknown command %q", cmd)
}

func fieldsHead(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func parsePoint(args []string) (domain.Point, error) {
	if len(args) != 2 {
		return domain.Point{}, errUsage
	}
	return domain.Point{X: ParseNumber(args[0]), Y: ParseNumber(args[1])}, nil
}

func usage(cmd string) string {
	switch cmd {
	case "load":
		return "load <path>"
	case "down", "move":
		return cmd + " <x> <y>"
	case "wheel":
		return "wheel <dy> [ctrl]"
	case "key":
		return "key <space|left|right>"
	case "set":
		return "set <" + strings.Join(Fields, "|") + "> <value>"
	case "seek":
		return "seek <seconds>"
	case "snapshot":
		return "snapshot <file.png>"
	}
	return cmd
}

// FormatState renders a one-line status report
func FormatState(s domain.PlaybackState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "status=%s time=%.1f visible=%t zoom=%.2f gesture=%s",
		s.Status, s.CurrentTime, s.Visible, s.Zoom, s.Gesture)
	if s.Item != nil {
		it := s.Item
		fmt.Fprintf(&b, " kind=%s pos=(%g,%g) size=%gx%g range=[%g,%g] source=%s",
			it.Kind, it.Position.X, it.Position.Y, it.Size.Width, it.Size.Height,
			it.Range.Start, it.Range.End, it.Source)
	}
	return b.String()
}
