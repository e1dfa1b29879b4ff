package selection

import (
	"strconv"
	"strings"
	"sync"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Mode is the state of the selection machine.
type Mode int

const (
	Idle Mode = iota
	RecessionMode
	YearlyMode
)

func (m Mode) String() string {
	switch m {
	case RecessionMode:
		return "recession"
	case YearlyMode:
		return "yearly"
	default:
		return "idle"
	}
}

// ModeOf maps a report type to the machine mode it puts the machine in.
func ModeOf(t domain.ReportType) Mode {
	switch t {
	case domain.ReportRecession:
		return RecessionMode
	case domain.ReportYearly:
		return YearlyMode
	default:
		return Idle
	}
}

// Machine tracks one caller's report type and year choice.
// It never terminates; every input event is applied in place.
type Machine struct {
	mu    sync.RWMutex
	state domain.SelectionState
}

func New() *Machine {
	return &Machine{}
}

// SetReportType applies a report type picker event. Inputs other than the
// two report labels leave the machine unchanged and report false.
func (m *Machine) SetReportType(raw string) bool {
	t, ok := domain.ParseReportType(raw)
	if !ok {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.ReportType = t
	return true
}

// SetYear applies a year picker event. It only has an effect in YearlyMode.
// Input that is not a plain integer puts the year back into the pending state.
func (m *Machine) SetYear(raw string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.ReportType != domain.ReportYearly {
		return false
	}
	m.state.Year = ParseYear(raw)
	return true
}

// State returns a copy of the current selection.
func (m *Machine) State() domain.SelectionState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := m.state
	if st.Year != nil {
		y := *st.Year
		st.Year = &y
	}
	return st
}

func (m *Machine) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return ModeOf(m.state.ReportType)
}

// YearEnabled reports whether the year picker is active.
func (m *Machine) YearEnabled() bool {
	return m.Mode() == YearlyMode
}

// YearPending reports whether the machine is in YearlyMode without a usable year.
func (m *Machine) YearPending() bool {
	st := m.State()
	return st.ReportType == domain.ReportYearly && st.Year == nil
}

// ParseYear returns nil unless raw is made only of decimal digits.
func ParseYear(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil
		}
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &y
}

// FromInput builds a selection by replaying the two picker fields through a
// fresh machine, the way a stateless request carries them.
func FromInput(reportType, year string) (domain.SelectionState, bool) {
	m := New()
	if strings.TrimSpace(reportType) != "" && !m.SetReportType(reportType) {
		return domain.SelectionState{}, false
	}
	m.SetYear(year)
	return m.State(), true
}
