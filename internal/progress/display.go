package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressDisplay shows a spinner while stages run and a ✓/✗ line per
// finished stage. Stages may start and finish from several goroutines.
type ProgressDisplay struct {
	mu           sync.Mutex
	out          io.Writer
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	spinner      *spinner.Spinner
	running      int
	finished     int
}

// NewProgressDisplay creates a display writing to out with the given terminal capabilities
func NewProgressDisplay(out io.Writer, caps TerminalCapabilities) *ProgressDisplay {
	return &ProgressDisplay{
		out:          out,
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// StartStage begins displaying progress for a stage
func (p *ProgressDisplay) StartStage(stage StageInfo) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.running++
	msg := buildRunningMessage(stage, p.running, p.finished)

	if !p.capabilities.IsTTY {
		fmt.Fprintf(p.out, "%s Replaying %s\n", formatStageCounter(stage.Number, stage.TotalStages), stage.Name)
		return nil
	}

	if p.spinner == nil {
		p.spinner = spinner.New(spinner.CharSets[p.symbols.SpinnerSet], 100*time.Millisecond)
		p.spinner.Writer = p.out
		if f, ok := p.out.(*os.File); ok {
			p.spinner.WriterFile = f
		}
		p.spinner.Suffix = " " + msg
		p.spinner.Start()
		return nil
	}
	p.spinner.Stop()
	p.spinner.Suffix = " " + msg
	p.spinner.Start()
	return nil
}

// CompleteStage prints the completion line for stage
func (p *ProgressDisplay) CompleteStage(stage StageInfo) error {
	mark := checkmark(p.symbols, p.capabilities.SupportsColor)
	return p.finish(fmt.Sprintf("%s %s %s replayed", mark,
		formatStageCounter(stage.Number, stage.TotalStages), stage.Name))
}

// FailStage prints the failure line for stage
func (p *ProgressDisplay) FailStage(stage StageInfo, err error) error {
	mark := failureMark(p.symbols, p.capabilities.SupportsColor)
	return p.finish(fmt.Sprintf("%s %s %s failed: %v", mark,
		formatStageCounter(stage.Number, stage.TotalStages), stage.Name, err))
}

// finish prints line above the spinner, which keeps running while other
// stages are still in progress.
func (p *ProgressDisplay) finish(line string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running > 0 {
		p.running--
	}
	p.finished++

	if p.spinner == nil {
		fmt.Fprintln(p.out, line)
		return nil
	}

	p.spinner.Stop()
	fmt.Fprintln(p.out, line)
	if p.running > 0 {
		p.spinner.Start()
	} else {
		p.spinner = nil
	}
	return nil
}

// StopSpinner stops the spinner without showing completion/failure
func (p *ProgressDisplay) StopSpinner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
