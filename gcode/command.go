package gcode

import "strings"

// Command is one parsed line of gcode.
//
// Name is the normalized mnemonic (G1, M83, G92.1). It is empty for lines that
// only carry a comment.
type Command struct {
	Name    string
	Params  []Word
	Comment string
}

// Arg returns the value of the first parameter named w.
func (c Command) Arg(w byte) (bool, float64) {
	for _, g := range c.Params {
		if g.W == w {
			return true, g.Arg
		}
	}
	return false, 0
}

// Has reports whether a parameter named w is present.
func (c Command) Has(w byte) bool {
	ok, _ := c.Arg(w)
	return ok
}

// IsComment reports whether c carries no mnemonic.
func (c Command) IsComment() bool { return c.Name == "" }

func (c Command) Clone() Command {
	if c.Params != nil {
		p := make([]Word, len(c.Params))
		copy(p, c.Params)
		c.Params = p
	}
	return c
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for _, p := range c.Params {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	if c.Comment != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("; ")
		sb.WriteString(c.Comment)
	}
	return sb.String()
}

func (c Command) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Command) UnmarshalText(b []byte) error {
	cmd, err := ParseLine(string(b))
	if err != nil {
		return err
	}
	*c = cmd
	return nil
}
