package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
)

// CommandKind identifies a scripted navigation request
type CommandKind string

const (
	CommandNext  CommandKind = "next"
	CommandPrev  CommandKind = "prev"
	CommandGoTo  CommandKind = "goto"
	CommandReset CommandKind = "reset"
	CommandMode  CommandKind = "mode"
)

// Command is one parsed script instruction
type Command struct {
	Kind        CommandKind
	Destination wizard.Destination
	Mode        string
	Raw         string
}

// ParseScript parses a comma separated list of commands:
//
//	next | prev | reset | mode NAME | goto N | goto +N | goto -N | goto id:ID
func ParseScript(script string) ([]Command, error) {
	var cmds []Command
	for i, part := range strings.Split(script, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		cmd, err := ParseCommand(part)
		if err != nil {
			return nil, fmt.Errorf("script: command %d: %w", i, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// ParseCommand parses a single command
func ParseCommand(raw string) (Command, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	cmd := Command{Kind: CommandKind(strings.ToLower(fields[0])), Raw: raw}
	args := fields[1:]

	switch cmd.Kind {
	case CommandNext, CommandPrev, CommandReset:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%q takes no argument", cmd.Kind)
		}
	case CommandMode:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%q requires a mode name", cmd.Kind)
		}
		cmd.Mode = args[0]
	case CommandGoTo:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%q requires a destination", cmd.Kind)
		}
		d, err := parseDestination(args[0])
		if err != nil {
			return Command{}, err
		}
		cmd.Destination = d
	default:
		return Command{}, fmt.Errorf("unknown command: %s", fields[0])
	}
	return cmd, nil
}

func parseDestination(arg string) (wizard.Destination, error) {
	if id, ok := strings.CutPrefix(arg, "id:"); ok {
		if id == "" {
			return nil, fmt.Errorf("empty step id")
		}
		return wizard.ByStepID(id), nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid destination: %s", arg)
	}
	if strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-") {
		return wizard.ByOffset(n), nil
	}
	return wizard.ToIndex(n), nil
}

// Apply executes cmd against the session. Rejected transitions are not
// errors; only invalid destinations and programmer errors are returned.
func (s *Session) Apply(ctx context.Context, cmd Command) error {
	nav := s.Navigation()
	switch cmd.Kind {
	case CommandNext:
		return nav.GoToNextStep(ctx)
	case CommandPrev:
		return nav.GoToPreviousStep(ctx)
	case CommandGoTo:
		return nav.GoTo(ctx, cmd.Destination)
	case CommandReset:
		return nav.Reset()
	case CommandMode:
		s.State.SetNavigationMode(cmd.Mode)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", cmd.Kind)
	}
}

// Run applies cmds in order and stops at the first error
func (s *Session) Run(ctx context.Context, cmds []Command) error {
	for i, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Apply(ctx, cmd); err != nil {
			return fmt.Errorf("script: command %d %q: %w", i, cmd.Raw, err)
		}
		if t, ok := s.State.LastTransition(); ok && cmd.Kind != CommandReset && cmd.Kind != CommandMode {
			s.logger.Debug("command applied", "command", cmd.Raw,
				"from", t.From, "to", t.To, "accepted", t.Accepted, "journal_seq", s.Journal.Seq())
		}
	}
	return nil
}
