package report

import (
	"io"
	"log/slog"
	"sync"

	"directions/game"
	"directions/protocol"
)

// Reporter writes one line per reported move to a sink it does not own.
type Reporter struct {
	out    io.Writer
	outMu  sync.Mutex
	logger *slog.Logger
}

func NewReporter(out io.Writer, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		out:    out,
		logger: logger,
	}
}

// ValidateAndReport checks direction against the four direction words and
// reports either the move or why it was rejected.
func (r *Reporter) ValidateAndReport(direction string) {
	valid := protocol.IsDirection(direction)
	r.logger.Debug("Validating direction", "direction", direction, "valid", valid)

	if valid {
		r.Send(protocol.MovedMessage(direction))
	} else {
		r.Send(protocol.InvalidMessage(direction))
	}
}

func (r *Reporter) ReportMove(direction game.Direction) {
	label := game.LabelOf(direction)
	r.logger.Debug("Reporting move", "direction", label)

	r.Send(protocol.MovedMessage(label))
}

// Run reports every text sample, then every move, in order.
func (r *Reporter) Run(texts []string, moves []game.Direction) {
	for _, text := range texts {
		r.ValidateAndReport(text)
	}
	for _, move := range moves {
		r.ReportMove(move)
	}
}

// Send writes line followed by a newline. Lines from concurrent callers are
// never interleaved.
func (r *Reporter) Send(line string) {
	r.outMu.Lock()
	defer r.outMu.Unlock()

	if _, err := io.WriteString(r.out, line+"\n"); err != nil {
		r.logger.Error("Write error", "error", err)
	}
}
