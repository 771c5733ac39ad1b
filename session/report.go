package session

import (
	"fmt"

	"github.com/katalvlaran/pathpad/core"
	"github.com/katalvlaran/pathpad/label"
)

// ReportKind classifies the outcome of a key press.
type ReportKind int

const (
	// ReportNone means the key produced nothing to show.
	ReportNone ReportKind = iota
	// ReportPath carries a found path and its cost.
	ReportPath
	// ReportMissingEndpoints means start or goal was not set.
	ReportMissingEndpoints
	// ReportNoPath means start and goal are in different components.
	ReportNoPath
)

// Report texts.
const (
	textMissingEndpoints = "Missing starting or goal node!"
	textNoPath           = "No current available path"
)

// Report is the user-facing result of a key press.
type Report struct {
	Kind ReportKind
	Cost int64
	Path []core.NodeID
	Text string
}

func missingEndpoints() Report {
	return Report{Kind: ReportMissingEndpoints, Text: textMissingEndpoints}
}

func noPath() Report {
	return Report{Kind: ReportNoPath, Text: textNoPath}
}

func found(cost int64, path []core.NodeID) Report {
	return Report{
		Kind: ReportPath,
		Cost: cost,
		Path: path,
		Text: fmt.Sprintf("Path length: %d, Path: %s", cost, label.Path(path)),
	}
}

// report prints r to the report writer, if any, and returns it.
func (s *Session) report(r Report) Report {
	if s.out == nil || r.Text == "" {
		return r
	}
	if _, err := fmt.Fprintln(s.out, r.Text); err != nil {
		s.log.Warn("report not written", "err", err)
	}

	return r
}
