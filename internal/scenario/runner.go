package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/ariel-frischer/notifybehaviour/internal/behaviour"
	"github.com/ariel-frischer/notifybehaviour/internal/notify"
	"github.com/ariel-frischer/notifybehaviour/internal/reactive"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of a replay, one entry per entity in file order.
type Report struct {
	Entities []EntityReport
	Elapsed  time.Duration
}

// EntityReport describes one replayed entity.
type EntityReport struct {
	Name string
	ID   uuid.UUID
	// Attached reports whether a desktop notification behaviour was
	// registered for the entity after creation.
	Attached bool
	// Notification is the behaviour's state after the last step. It is the
	// zero value when nothing attached.
	Notification notify.Notification
	Steps        int
	Deleted      bool
}

// Attached returns the number of entities that carried a behaviour.
func (r *Report) Attached() int {
	n := 0
	for _, e := range r.Entities {
		if e.Attached {
			n++
		}
	}
	return n
}

// Progress receives a notification when an entity starts and finishes its
// replay. Calls arrive from the replaying goroutines. index is the entity's
// position in the scenario and total the number of entities.
type Progress interface {
	EntityStarted(index, total int, name string)
	EntityFinished(index, total int, name string, err error)
}

// Runner replays scenarios against a graph whose behaviours are managed by
// provider. The provider must already be registered with the graph.
type Runner struct {
	graph    *reactive.Graph
	provider *behaviour.Provider
	log      zerolog.Logger

	// MaxParallel bounds the number of entities replayed at once.
	// Zero means no limit.
	MaxParallel int

	// Progress, when set, is told about every entity replay.
	Progress Progress
}

// NewRunner creates a Runner.
func NewRunner(graph *reactive.Graph, provider *behaviour.Provider, log zerolog.Logger) *Runner {
	return &Runner{
		graph:    graph,
		provider: provider,
		log:      log.With().Str("component", "scenario").Logger(),
	}
}

// Run creates every entity, replays their steps concurrently and deletes the
// entities marked for detach. A cancelled context stops pending waits and
// the remaining steps.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Report, error) {
	start := time.Now()
	report := &Report{Entities: make([]EntityReport, len(s.Entities))}

	instances := make([]*reactive.EntityInstance, len(s.Entities))
	for i, spec := range s.Entities {
		e := r.graph.Create(spec.Type, copyProps(spec.Properties))
		instances[i] = e

		_, attached := r.provider.Get(e.ID())
		report.Entities[i] = EntityReport{Name: spec.Name, ID: e.ID(), Attached: attached}
		r.log.Debug().
			Str("entity", spec.Name).
			Str("id", e.ID().String()).
			Bool("attached", attached).
			Msg("entity created")
	}

	g, ctx := errgroup.WithContext(ctx)
	if r.MaxParallel > 0 {
		g.SetLimit(r.MaxParallel)
	}

	for i := range s.Entities {
		g.Go(func() error {
			name := s.Entities[i].Name
			if r.Progress != nil {
				r.Progress.EntityStarted(i, len(s.Entities), name)
			}
			err := r.replay(ctx, s.Entities[i], instances[i], &report.Entities[i])
			if r.Progress != nil {
				r.Progress.EntityFinished(i, len(s.Entities), name, err)
			}
			return err
		})
	}

	err := g.Wait()
	report.Elapsed = time.Since(start)
	return report, err
}

func (r *Runner) replay(ctx context.Context, spec Entity, e *reactive.EntityInstance, out *EntityReport) error {
	for i, step := range spec.Steps {
		if step.Wait != nil {
			if err := sleep(ctx, *step.Wait); err != nil {
				return fmt.Errorf("entity %q step %d: %w", spec.Name, i, err)
			}
		} else {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("entity %q step %d: %w", spec.Name, i, err)
			}
			for _, name := range sortedKeys(step.Set) {
				e.Set(name, step.Set[name])
			}
		}
		out.Steps++
	}

	if b, ok := r.provider.Get(e.ID()); ok {
		out.Notification = b.Notification()
	}

	if spec.Detach {
		out.Deleted = r.graph.Delete(e.ID())
		r.log.Debug().Str("entity", spec.Name).Msg("entity deleted")
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func copyProps(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
