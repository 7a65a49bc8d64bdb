package progress

import "fmt"

// formatStageCounter returns the [N/Total] stage counter string
func formatStageCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}

// buildRunningMessage is the spinner suffix while stages run concurrently.
func buildRunningMessage(latest StageInfo, running, finished int) string {
	return fmt.Sprintf("%s Replaying %s (%d running, %d/%d done)",
		formatStageCounter(latest.Number, latest.TotalStages), latest.Name,
		running, finished, latest.TotalStages)
}

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Checkmark
	if supportsColor && symbols.Checkmark == "✓" {
		mark = "\033[32m" + mark + "\033[0m" // Green
	}
	return mark
}

// failureMark returns the appropriate failure symbol
func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Failure
	if supportsColor && symbols.Failure == "✗" {
		mark = "\033[31m" + mark + "\033[0m" // Red
	}
	return mark
}
