package cli

import (
	"io"

	"github.com/ariel-frischer/notifybehaviour/internal/progress"
	"github.com/ariel-frischer/notifybehaviour/internal/scenario"
	"github.com/rs/zerolog"
)

// replayProgress shows one progress stage per replayed entity.
type replayProgress struct {
	display *progress.ProgressDisplay
	log     zerolog.Logger
}

var _ scenario.Progress = (*replayProgress)(nil)

// newReplayProgress returns the progress display for w, or nil when w is
// not a terminal.
func newReplayProgress(w io.Writer, log zerolog.Logger) *replayProgress {
	caps := progress.DetectTerminalCapabilities(w)
	if !caps.IsTTY {
		return nil
	}
	return &replayProgress{display: progress.NewProgressDisplay(w, caps), log: log}
}

func stageFor(index, total int, name string, status progress.StageStatus) progress.StageInfo {
	return progress.StageInfo{Name: name, Number: index + 1, TotalStages: total, Status: status}
}

func (p *replayProgress) EntityStarted(index, total int, name string) {
	if err := p.display.StartStage(stageFor(index, total, name, progress.StageInProgress)); err != nil {
		p.log.Debug().Err(err).Str("entity", name).Msg("progress stage rejected")
	}
}

func (p *replayProgress) EntityFinished(index, total int, name string, err error) {
	var derr error
	if err != nil {
		derr = p.display.FailStage(stageFor(index, total, name, progress.StageFailed), err)
	} else {
		derr = p.display.CompleteStage(stageFor(index, total, name, progress.StageCompleted))
	}
	if derr != nil {
		p.log.Debug().Err(derr).Str("entity", name).Msg("progress stage rejected")
	}
}

func (p *replayProgress) stop() {
	p.display.StopSpinner()
}
