package view

import (
	"fmt"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows the current image and the accepted/rejected counters.
type SessionStats interface {
	SetCurrent(name string, index, total int)
	SetCounts(accepted, rejected int)
}

type sessionStats struct {
	currentLbl *LabelWidget
	countsLbl  *LabelWidget
}

// NewSessionStats creates the status labels in the given grid row.
func NewSessionStats(row int) SessionStats {
	s := &sessionStats{
		currentLbl: Label(Anchor("w")),
		countsLbl:  Label(Anchor("e")),
	}
	Grid(s.currentLbl, Row(row), Column(0), Sticky("we"), Padx("0.2m"))
	Grid(s.countsLbl, Row(row), Column(1), Sticky("e"), Padx("0.2m"))
	s.countsLbl.Configure(Txt("accepted 0 / rejected 0"))
	return s
}

// SetCurrent updates the displayed image name and gallery position.
func (s *sessionStats) SetCurrent(name string, index, total int) {
	if s == nil || s.currentLbl == nil {
		return
	}
	s.currentLbl.Configure(Txt(fmt.Sprintf("%s (%d/%d)", name, index, total)))
}

// SetCounts updates the accept/reject counters.
func (s *sessionStats) SetCounts(accepted, rejected int) {
	if s == nil || s.countsLbl == nil {
		return
	}
	s.countsLbl.Configure(Txt(fmt.Sprintf("accepted %d / rejected %d", accepted, rejected)))
}
