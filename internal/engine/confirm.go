package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sweepr-io/sweepr/internal/resource"
)

// Gate reads confirmation phrases from the operator. Any input other
// than the exact expected phrase is a refusal; the gate is fail-closed
// and never treats ambiguous input as consent.
//
// Tests substitute a scripted reader for the interactive stdin.
type Gate struct {
	in  *bufio.Reader
	out io.Writer
}

func NewGate(in io.Reader, out io.Writer) *Gate {
	return &Gate{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints prompt and reports whether the operator typed exactly
// phrase. A read error counts as a refusal.
func (g *Gate) Confirm(prompt, phrase string) bool {
	fmt.Fprint(g.out, prompt)
	line, err := g.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.TrimRight(line, "\r\n") == phrase
}

// ConfirmItem gates one resource behind a phrase embedding its own
// name, guarding against misidentification in a list that may have
// changed since it was printed.
func (g *Gate) ConfirmItem(ref resource.Ref) bool {
	phrase := "delete " + ref.Name
	prompt := fmt.Sprintf("Type %q to confirm deletion: ", phrase)
	return g.Confirm(prompt, phrase)
}
