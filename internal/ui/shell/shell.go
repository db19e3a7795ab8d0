package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PizzaHomicide/reel/internal/command"
	"github.com/PizzaHomicide/reel/internal/log"
)

const (
	welcomeMessage  = "Hello and welcome to reel, what would you like to do?"
	helpHintMessage = "Enter HELP for list of available commands or EXIT to terminate."
	goodbyeMessage  = "reel has now terminated its execution. Thank you and goodbye!"
)

// Executor runs one command line.  Implemented by command.Dispatcher.
type Executor interface {
	Execute(line string) error
}

// Shell is the line oriented front end.  It reads commands from in and also answers search selection prompts from
// the same stream, so it doubles as the session's Prompter.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func New(in io.Reader, out io.Writer, prompt string) *Shell {
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
	}
}

// Prompt blocks until the next line of input is available.  Returns io.EOF once the input is exhausted.
func (s *Shell) Prompt() (string, error) {
	return s.readLine()
}

// Run reads and executes commands until EXIT or the end of input
func (s *Shell) Run(executor Executor) error {
	s.println(welcomeMessage)
	s.println(helpHintMessage)

	for {
		_, _ = io.WriteString(s.out, s.prompt)

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			log.Info("Input closed, leaving shell")
			s.println("")
			s.println(goodbyeMessage)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := executor.Execute(line); err != nil {
			if errors.Is(err, command.ErrExit) {
				s.println(goodbyeMessage)
				return nil
			}
			return err
		}
	}
}

// readLine returns the next line without its line ending.  A final line with no newline is still returned, io.EOF is
// only reported once nothing is left.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}
