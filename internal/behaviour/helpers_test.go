// Package behaviour_test provides shared fixtures for behaviour tests: options, full property sets, and removal-counting entities.
// Related: internal/behaviour/*_test.go
// Tags: behaviour, fixtures, helpers
package behaviour

import (
	"sync"

	"github.com/ariel-frischer/notifybehaviour/internal/notify"
	"github.com/ariel-frischer/notifybehaviour/internal/notify/notifytest"
	"github.com/ariel-frischer/notifybehaviour/internal/reactive"
	"github.com/google/uuid"
)

func testOptions(mock *notifytest.MockSender) []Option {
	cfg := notify.DefaultConfig()
	cfg.SuppressInCI = false
	return []Option{WithSender(mock), WithBackendConfig(cfg)}
}

func fullProps() map[string]any {
	return map[string]any{
		"show":     false,
		"app_name": "app",
		"summary":  "summary",
		"body":     "body",
		"icon":     "icon",
		"timeout":  1000,
	}
}

// countingEntity wraps an EntityInstance and counts observer removals.
type countingEntity struct {
	*reactive.EntityInstance

	mu      sync.Mutex
	removes int
}

func newCountingEntity(props map[string]any) *countingEntity {
	return &countingEntity{EntityInstance: reactive.NewEntityInstance(DesktopNotificationType, props)}
}

func (c *countingEntity) Property(name string) (reactive.Property, bool) {
	p, ok := c.EntityInstance.Property(name)
	if !ok {
		return nil, false
	}
	return &countingProperty{Property: p, owner: c}, true
}

func (c *countingEntity) Removes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removes
}

type countingProperty struct {
	reactive.Property
	owner *countingEntity
}

func (p *countingProperty) Remove(handleID uuid.UUID) bool {
	p.owner.mu.Lock()
	p.owner.removes++
	p.owner.mu.Unlock()
	return p.Property.Remove(handleID)
}

func observerCount(e *reactive.EntityInstance, name string) int {
	cell, ok := e.Cell(name)
	if !ok {
		return 0
	}
	return cell.Observers()
}
