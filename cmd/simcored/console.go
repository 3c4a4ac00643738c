package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/google/uuid"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/rpc"
	"github.com/hiveworld/simcore/engine/world"
)

const (
	consolePromptPrefix = "> "
	maxHistoryEntries   = 128
)

// console is the operator REPL issuing PlaceStructure/TakeRoom/ListUsers/
// Ping boundary commands against a running engine, the same role the
// teacher's server/console.Console plays for its world.Tx command
// pipeline: a thin line reader dispatching into the already-synchronized
// world boundary rather than its own locking.
type console struct {
	cmds    *rpc.Commands
	log     *slog.Logger
	reader  io.Reader
	history []string
}

func newConsole(cmds *rpc.Commands, log *slog.Logger) *console {
	if log == nil {
		log = slog.Default()
	}
	return &console{cmds: cmds, log: log, reader: os.Stdin}
}

// run blocks, consuming commands until ctx is cancelled or the reader hits
// EOF. Piped input (reader != os.Stdin) falls back to a plain scanner so
// the console works in tests and non-interactive pipelines.
func (c *console) run(ctx context.Context) {
	if c.reader != os.Stdin {
		c.runScanner(ctx)
		return
	}
	c.runInteractive(ctx)
}

func (c *console) runScanner(ctx context.Context) {
	scanner := bufio.NewScanner(c.reader)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				c.log.Error("console input error", "err", err)
			}
			return
		}
		c.execute(strings.TrimSpace(scanner.Text()))
	}
}

func (c *console) runInteractive(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := prompt.Input(consolePromptPrefix, c.complete,
			prompt.OptionTitle("simcored console"),
			prompt.OptionHistory(c.history),
			prompt.OptionPrefix(consolePromptPrefix),
			prompt.OptionCompletionOnDown(),
			prompt.OptionMaxSuggestion(12),
		)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c.execute(line)
	}
}

var consoleCommands = []string{"place", "take", "users", "info", "ping", "quit"}

func (c *console) complete(doc prompt.Document) []prompt.Suggest {
	word := doc.GetWordBeforeCursor()
	suggestions := make([]prompt.Suggest, 0, len(consoleCommands))
	for _, name := range consoleCommands {
		suggestions = append(suggestions, prompt.Suggest{Text: name})
	}
	sort.Slice(suggestions, func(i, j int) bool { return suggestions[i].Text < suggestions[j].Text })
	return prompt.FilterHasPrefix(suggestions, word, true)
}

func (c *console) execute(line string) {
	if line == "" {
		return
	}
	c.history = append(c.history, line)
	if len(c.history) > maxHistoryEntries {
		c.history = c.history[len(c.history)-maxHistoryEntries:]
	}

	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]
	var err error
	switch name {
	case "place":
		err = c.place(args)
	case "take":
		err = c.take(args)
	case "users":
		c.listUsers()
	case "info":
		err = c.userInfo(args)
	case "ping":
		err = c.cmds.Ping()
		if err == nil {
			fmt.Println("pong")
		}
	case "quit":
		os.Exit(0)
	default:
		err = fmt.Errorf("unknown command %q (try: %s)", name, strings.Join(consoleCommands, ", "))
	}
	if err != nil {
		c.log.Error("console command failed", "command", name, "err", err)
	}
}

// place <user-uuid> <room-q> <room-r> <q> <r>
func (c *console) place(args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("usage: place <user-uuid> <room-q> <room-r> <q> <r>")
	}
	user, err := parseUser(args[0])
	if err != nil {
		return err
	}
	pos, err := parsePosition(args[1:])
	if err != nil {
		return err
	}
	return c.cmds.PlaceStructure(user, pos)
}

// take <user-uuid> <room-q> <room-r>
func (c *console) take(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: take <user-uuid> <room-q> <room-r>")
	}
	user, err := parseUser(args[0])
	if err != nil {
		return err
	}
	room, err := parseAxial(args[1], args[2])
	if err != nil {
		return err
	}
	return c.cmds.TakeRoom(user, room)
}

func (c *console) listUsers() {
	for _, id := range c.cmds.ListUsers() {
		fmt.Println(uuid.UUID(id).String())
	}
}

func (c *console) userInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: info <user-uuid>")
	}
	user, err := parseUser(args[0])
	if err != nil {
		return err
	}
	info, ok := c.cmds.GetUserInfo(user)
	if !ok {
		return fmt.Errorf("user %s is not registered", args[0])
	}
	fmt.Printf("%s: %d rooms\n", args[0], len(info.Rooms))
	return nil
}

func parseUser(s string) (world.UserId, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return world.UserId{}, fmt.Errorf("invalid user uuid %q: %w", s, err)
	}
	return world.UserId(id), nil
}

func parseAxial(qStr, rStr string) (geom.Axial, error) {
	q, err := strconv.Atoi(qStr)
	if err != nil {
		return geom.Axial{}, fmt.Errorf("invalid q %q: %w", qStr, err)
	}
	r, err := strconv.Atoi(rStr)
	if err != nil {
		return geom.Axial{}, fmt.Errorf("invalid r %q: %w", rStr, err)
	}
	return geom.NewAxial(int32(q), int32(r)), nil
}

func parsePosition(args []string) (world.WorldPosition, error) {
	room, err := parseAxial(args[0], args[1])
	if err != nil {
		return world.WorldPosition{}, err
	}
	pos, err := parseAxial(args[2], args[3])
	if err != nil {
		return world.WorldPosition{}, err
	}
	return world.WorldPosition{Room: room, Pos: pos}, nil
}
