package command

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PizzaHomicide/reel/internal/log"
	"github.com/PizzaHomicide/reel/internal/service"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrExit is returned by Execute when the user asked to leave
var ErrExit = errors.New("exit requested")

// InvalidCommandMessage is printed for unknown commands and wrong argument counts
const InvalidCommandMessage = "Please enter a valid command, type HELP for a list of available commands."

// maxSuggestionDistance is the largest edit distance for which a "did you mean" hint is offered
const maxSuggestionDistance = 3

// Dispatcher parses command lines and routes each one to exactly one session operation
type Dispatcher struct {
	session *service.Session
	out     io.Writer
}

func NewDispatcher(session *service.Session, out io.Writer) *Dispatcher {
	return &Dispatcher{session: session, out: out}
}

// Execute runs a single command line.  Blank lines are ignored.  Returns ErrExit for EXIT, every other outcome is
// reported to the user as text.
func (d *Dispatcher) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]
	cmd, ok := Lookup(name)
	if !ok {
		log.Debug("Unknown command", "command", name)
		d.println(InvalidCommandMessage)
		if suggestion := Suggest(name); suggestion != "" {
			d.println(fmt.Sprintf("Did you mean %s?", suggestion))
		}
		return nil
	}

	switch cmd.Name {
	case Exit:
		log.Info("Exit requested", "session_id", d.session.ID)
		return ErrExit
	case Help:
		_, _ = io.WriteString(d.out, HelpText())
		return nil
	}

	if !cmd.accepts(len(args)) {
		log.Debug("Wrong number of arguments", "command", cmd.Name, "args", len(args))
		d.println(InvalidCommandMessage)
		return nil
	}

	log.Trace("Executing command", "command", cmd.Name, "args", args)
	cmd.run(d.session, args)
	return nil
}

func (d *Dispatcher) println(msg string) {
	_, _ = fmt.Fprintln(d.out, msg)
}

// Suggest returns the command name closest to input, or an empty string when nothing is close.  Inputs that are a
// fuzzy match of a command name (e.g. "random" for PLAY_RANDOM) are preferred over plain typos.
func Suggest(input string) string {
	if input == "" {
		return ""
	}

	names := make([]string, 0, len(commandTable))
	for _, c := range commandTable {
		names = append(names, string(c.Name))
	}

	ranks := fuzzy.RankFindFold(input, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", maxSuggestionDistance+1
	upper := strings.ToUpper(input)
	for _, name := range names {
		if d := fuzzy.LevenshteinDistance(upper, name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}
