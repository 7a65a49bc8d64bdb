// Package progress renders per-entity progress while a scenario is replayed:
// a spinner on the terminal and one ✓/✗ line per finished entity.
package progress

import "errors"

// StageStatus represents the execution state of a stage
type StageStatus int

const (
	// StagePending indicates the stage has not started yet
	StagePending StageStatus = iota
	// StageInProgress indicates the stage is currently running
	StageInProgress
	// StageCompleted indicates the stage finished successfully
	StageCompleted
	// StageFailed indicates the stage failed with an error
	StageFailed
)

// String returns the string representation of StageStatus
func (s StageStatus) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageInProgress:
		return "in_progress"
	case StageCompleted:
		return "completed"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageInfo describes one stage of a replay. Each replayed entity is a stage.
type StageInfo struct {
	// Name is the entity name from the scenario
	Name string
	// Number is the stage number (1-based index)
	Number int
	// TotalStages is the number of entities in the scenario
	TotalStages int
	// Status is the current execution status
	Status StageStatus
}

// Validate checks that all StageInfo fields meet validation requirements
func (p StageInfo) Validate() error {
	if p.Name == "" {
		return errors.New("stage name cannot be empty")
	}
	if p.Number <= 0 {
		return errors.New("stage number must be > 0")
	}
	if p.TotalStages <= 0 {
		return errors.New("total stages must be > 0")
	}
	if p.Number > p.TotalStages {
		return errors.New("stage number cannot exceed total stages")
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether the output is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
