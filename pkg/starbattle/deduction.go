// deduction.go: the values schemas emit. A Deduction is a proven forced cell
// state; an Application bundles a schema's deductions with a structured
// explanation a driver can render for the user.
package starbattle

import (
	"fmt"
	"strings"
)

// Deduction forces one cell to a value that every valid completion of the
// board agrees on. Value is Star or Excluded, never Undetermined.
type Deduction struct {
	Cell  int
	Value CellState
}

// String returns a compact form like "12=*" or "7=x".
func (d Deduction) String() string {
	return fmt.Sprintf("%d=%s", d.Cell, d.Value)
}

// Step is one line of a structured explanation. Note carries the prose; the
// optional references name the groups, bands, blocks, and cells the step
// reasons about so a UI can highlight them.
type Step struct {
	Note   string
	Group  *Group
	Band   *Band
	Blocks []Block
	Cells  []int
}

// Application is one proven application of a schema: the deductions it
// forces (possibly none, for pure bookkeeping results like a pigeonhole
// confirmation) and the justification trail. Applications are immutable
// values constructed per query and discarded by the driver.
type Application struct {
	Schema     string
	Params     map[string]int
	Deductions []Deduction
	Steps      []Step
}

// String renders the application for logs: schema name, deduction list, and
// the explanation notes.
func (a Application) String() string {
	var sb strings.Builder
	sb.WriteString(a.Schema)
	if len(a.Deductions) > 0 {
		sb.WriteString(" [")
		for i, d := range a.Deductions {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(d.String())
		}
		sb.WriteString("]")
	}
	for _, s := range a.Steps {
		sb.WriteString("\n  ")
		sb.WriteString(s.Note)
	}
	return sb.String()
}
