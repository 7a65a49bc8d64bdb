// Package health runs the checks behind `notifyctl doctor`: whether the
// platform can display and play notifications with the configured backend.
package health

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/notifybehaviour/internal/notify"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
	// Warning marks a result that is reported but does not fail the report.
	Warning bool
}

// HealthReport contains all health check results
type HealthReport struct {
	Platform string
	Checks   []CheckResult
	Passed   bool
}

func (r *HealthReport) add(c CheckResult) {
	r.Checks = append(r.Checks, c)
	if !c.Passed && !c.Warning {
		r.Passed = false
	}
}

// RunHealthChecks checks sender availability for the output type in cfg,
// the custom sound file and CI suppression.
func RunHealthChecks(sender notify.Sender, cfg notify.BackendConfig) *HealthReport {
	report := &HealthReport{
		Platform: notify.Platform(),
		Checks:   make([]CheckResult, 0, 4),
		Passed:   true,
	}

	wantVisual := cfg.Type != notify.OutputSound
	wantSound := cfg.Type == notify.OutputSound || cfg.Type == notify.OutputBoth

	report.add(CheckVisual(sender, wantVisual))
	report.add(CheckSound(sender, wantSound))
	report.add(CheckSoundFile(cfg.SoundFile))
	report.add(CheckCI(cfg.SuppressInCI))

	return report
}

// CheckVisual checks if visual notifications can be displayed. A missing
// backend only fails the report when the output type needs it.
func CheckVisual(sender notify.Sender, required bool) CheckResult {
	if sender.VisualAvailable() {
		return CheckResult{Name: "Visual notifications", Passed: true, Message: "notification backend found"}
	}
	return CheckResult{
		Name:    "Visual notifications",
		Message: "no notification backend available (missing tool or display)",
		Warning: !required,
	}
}

// CheckSound checks if sounds can be played.
func CheckSound(sender notify.Sender, required bool) CheckResult {
	if sender.SoundAvailable() {
		return CheckResult{Name: "Sound", Passed: true, Message: "audio player found"}
	}
	return CheckResult{
		Name:    "Sound",
		Message: "no audio player available",
		Warning: !required,
	}
}

// CheckSoundFile validates the configured custom sound. An unusable file is
// a warning because the sender falls back to the platform sound.
func CheckSoundFile(path string) CheckResult {
	if path == "" {
		return CheckResult{Name: "Sound file", Passed: true, Message: "using platform default"}
	}
	if _, err := notify.ValidateSoundFile(path); err != nil {
		return CheckResult{Name: "Sound file", Message: err.Error(), Warning: true}
	}
	return CheckResult{Name: "Sound file", Passed: true, Message: path}
}

// CheckCI reports whether notifications will be suppressed in this
// environment.
func CheckCI(suppress bool) CheckResult {
	if suppress && notify.IsCI() {
		return CheckResult{
			Name:    "CI suppression",
			Message: "CI environment detected, notifications are suppressed",
			Warning: true,
		}
	}
	return CheckResult{Name: "CI suppression", Passed: true, Message: "notifications enabled"}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Platform: %s\n", report.Platform)
	for _, check := range report.Checks {
		switch {
		case check.Passed:
			fmt.Fprintf(&b, "✓ %s: %s\n", check.Name, check.Message)
		case check.Warning:
			fmt.Fprintf(&b, "! %s: %s\n", check.Name, check.Message)
		default:
			fmt.Fprintf(&b, "✗ Error: %s: %s\n", check.Name, check.Message)
		}
	}
	return b.String()
}
