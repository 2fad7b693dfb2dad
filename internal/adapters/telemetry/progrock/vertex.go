package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex is one (target, file) unit recorded on the progrock tape. Collaborator
// output is streamed into the vertex logs; the unit outcome is written to
// stdout once the artifact exists.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the vertex's standard output log.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns the vertex's error log. Plugin stderr lands here.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Outcome writes how the artifact was produced, e.g. "overridden".
func (v *Vertex) Outcome(outcome domain.UnitOutcome) {
	_, _ = fmt.Fprintln(v.vertex.Stdout(), outcome.Verb())
}

// Complete finishes the vertex. A nil err marks the unit successful.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks a unit whose artifacts already held the written content.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
