package notify

import (
	"context"
	"errors"
	"os"
	"sync"
)

// ErrDispatchTimeout is returned by Show when the platform tool did not finish
// within BackendConfig.DispatchTimeout. The tool keeps running in the background.
var ErrDispatchTimeout = errors.New("notification dispatch timed out")

// Desktop is a mutable desktop notification shared between a behaviour and
// its property handlers. Setters take the write lock; Show works on a snapshot
// taken under the read lock so a slow platform tool never blocks updates.
type Desktop struct {
	mu     sync.RWMutex
	n      Notification
	config BackendConfig
	sender Sender
}

// NewDesktop creates a Desktop with initial state n.
// A nil sender selects the platform sender.
func NewDesktop(n Notification, config BackendConfig, sender Sender) *Desktop {
	if sender == nil {
		sender = NewSender()
	}
	defaults := DefaultConfig()
	if config.DispatchTimeout <= 0 {
		config.DispatchTimeout = defaults.DispatchTimeout
	}
	if !ValidOutputType(string(config.Type)) {
		config.Type = defaults.Type
	}
	return &Desktop{
		n:      n,
		config: config,
		sender: sender,
	}
}

// Notification returns a snapshot of the current notification state.
func (d *Desktop) Notification() Notification {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.n
}

// Config returns the backend configuration in effect.
func (d *Desktop) Config() BackendConfig {
	return d.config
}

func (d *Desktop) SetAppName(appName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.n.AppName = appName
}

func (d *Desktop) SetSummary(summary string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.n.Summary = summary
}

func (d *Desktop) SetBody(body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.n.Body = body
}

func (d *Desktop) SetIcon(icon string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.n.Icon = icon
}

func (d *Desktop) SetTimeout(timeout Timeout) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.n.Timeout = timeout
}

// Show displays the current notification.
//
// Under CI with SuppressInCI set, Show is a no-op. Errors from the platform
// tool are returned as-is; callers treat them as fire-and-forget.
func (d *Desktop) Show() error {
	n := d.Notification()

	if d.config.SuppressInCI && IsCI() {
		return nil
	}

	return d.dispatch(n)
}

// dispatch sends a notification with a bounded wait.
//
// Concurrency pattern: goroutine + buffered result channel + select with timeout.
// The buffer lets the sender goroutine finish and exit after a timeout.
func (d *Desktop) dispatch(n Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.config.DispatchTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- d.send(n)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ErrDispatchTimeout
	}
}

// send sends the notification based on configured output type
func (d *Desktop) send(n Notification) error {
	switch d.config.Type {
	case OutputSound:
		return d.sender.SendSound(d.config.SoundFile)
	case OutputBoth:
		return errors.Join(
			d.sender.SendVisual(n),
			d.sender.SendSound(d.config.SoundFile),
		)
	default:
		return d.sender.SendVisual(n)
	}
}

// IsCI reports whether a common CI environment variable is set.
func IsCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
		"TF_BUILD",            // Azure DevOps
		"BITBUCKET_PIPELINES", // Bitbucket
		"CODEBUILD_BUILD_ID",  // AWS CodeBuild
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
