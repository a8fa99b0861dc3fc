package gcode

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// SyntaxError is returned for a line that could not be tokenized. The
// Parser remains usable after returning one.
type SyntaxError struct {
	Line int
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: invalid or unhandled line: %s", e.Line, e.Text)
}

type Parser struct {
	br   *bufio.Reader
	line int
}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

var (
	rx      = regexp.MustCompile(`^([A-Z][0-9.+\-]*)+$`)
	rxSplit = regexp.MustCompile(`[A-Z][0-9.+\-]*`)
	rxName  = regexp.MustCompile(`^([GMT])([0-9]+(?:\.[0-9]+)?)`)
)

// commands whose argument is free text
var textCommands = map[string]bool{
	"M23":  true,
	"M28":  true,
	"M30":  true,
	"M32":  true,
	"M117": true,
	"M118": true,
}

// Line returns the 1-based file line of the last command returned by Read.
func (p *Parser) Line() int { return p.line }

// Read returns the next non-blank line. Comment-only lines are returned
// with an empty Name.
func (p *Parser) Read() (Command, error) {
	for {
		s, err := p.br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			return Command{}, err
		}
		p.line++

		cmd, ok, err := parseLine(s)
		if err != nil {
			return Command{}, &SyntaxError{Line: p.line, Text: strings.TrimSpace(s)}
		}
		if !ok {
			continue
		}
		return cmd, nil
	}
}

// ParseLine tokenizes a single line of gcode.
func ParseLine(s string) (Command, error) {
	cmd, _, err := parseLine(s)
	if err != nil {
		return Command{}, &SyntaxError{Text: strings.TrimSpace(s)}
	}
	return cmd, nil
}

func parseLine(s string) (cmd Command, ok bool, err error) {
	parts := strings.SplitN(s, ";", 2)
	if len(parts) == 2 {
		cmd.Comment = strings.TrimSpace(parts[1])
	}
	s = strings.SplitN(parts[0], "*", 2)[0]
	s = strings.TrimSpace(s)
	if s == "" {
		return cmd, cmd.Comment != "", nil
	}

	// text arguments (M117 Printing...) keep their case and are not tokenized
	upper := strings.ToUpper(s)
	if upper[0] == 'N' {
		i := strings.IndexAny(upper, " GMT")
		if i < 0 {
			return cmd, false, fmt.Errorf("line number without command")
		}
		upper = strings.TrimSpace(upper[i:])
	}

	m := rxName.FindStringSubmatch(upper)
	if m == nil {
		return cmd, false, fmt.Errorf("missing command")
	}
	num, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return cmd, false, err
	}
	cmd.Name = m[1] + formatFloat(num, 5)

	if textCommands[cmd.Name] {
		return cmd, true, nil
	}

	rest := strings.Replace(upper[len(m[0]):], " ", "", -1)
	rest = strings.Replace(rest, "\t", "", -1)
	if rest == "" || !rx.MatchString(rest) {
		return cmd, true, nil
	}

	codes := rxSplit.FindAllString(rest, -1)
	cmd.Params = make([]Word, len(codes))
	for i, c := range codes {
		cmd.Params[i].W = c[0]
		if len(c) == 1 {
			// bare axis letter, as in G28 X Y
			continue
		}
		cmd.Params[i].Arg, err = strconv.ParseFloat(c[1:], 64)
		if err != nil {
			return Command{}, false, err
		}
	}

	return cmd, true, nil
}
