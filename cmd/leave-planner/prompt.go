package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/username/leave-planner/internal/report"
)

// prompter asks for values on out and reads answers from in.
// Empty answers keep the default; invalid ones print a notice and keep it too.
type prompter struct {
	in   *bufio.Reader
	out  io.Writer
	msgs report.Messages
}

func newPrompter(in io.Reader, out io.Writer, msgs report.Messages) *prompter {
	return &prompter{
		in:   bufio.NewReader(in),
		out:  out,
		msgs: msgs,
	}
}

func (p *prompter) readLine(prompt string) string {
	fmt.Fprint(p.out, prompt)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// askInt asks for an integer accepted by valid
func (p *prompter) askInt(format string, def int, valid func(int) bool) int {
	answer := p.readLine(fmt.Sprintf(format, def))
	if answer == "" {
		return def
	}

	n, err := strconv.Atoi(answer)
	if err != nil || (valid != nil && !valid(n)) {
		fmt.Fprintf(p.out, p.msgs.InvalidInput+"\n", def)
		return def
	}
	return n
}

// askBool asks a yes/no question
func (p *prompter) askBool(format string, def bool) bool {
	shown := p.msgs.No
	if def {
		shown = p.msgs.Yes
	}

	answer := strings.ToLower(p.readLine(fmt.Sprintf(format, shown)))
	switch answer {
	case "":
		return def
	case p.msgs.Yes, "y", "yes", "e", "evet", "true", "1":
		return true
	case p.msgs.No, "n", "no", "h", "hayır", "false", "0":
		return false
	default:
		fmt.Fprintf(p.out, p.msgs.InvalidInput+"\n", shown)
		return def
	}
}
