//go:build unit

package commands_test

import (
	"sync"
	"time"

	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/clock"
	"lease-engine/internal/usecase/commands"
	"lease-engine/tests/common/memstore"
)

const (
	ownerProject  = "owner"
	lesseeProject = "lessee"
	childProject  = "lessee-child"
	otherProject  = "other"
)

var base = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

// at returns base shifted by h hours.
func at(h int) *time.Time {
	t := base.Add(time.Duration(h) * time.Hour)
	return &t
}

type recorded struct {
	kind, operation, outcome string
}

type spyRecorder struct {
	mu          sync.Mutex
	outcomes    []recorded
	transitions map[string]int
}

func (r *spyRecorder) Reservation(kind, operation, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, recorded{kind, operation, outcome})
}

func (r *spyRecorder) Transition(kind, transition string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.transitions == nil {
		r.transitions = map[string]int{}
	}
	r.transitions[kind+"/"+transition] += count
}

func (r *spyRecorder) last() recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.outcomes) == 0 {
		return recorded{}
	}
	return r.outcomes[len(r.outcomes)-1]
}

type fixture struct {
	store   *memstore.Store
	dir     *memstore.Directory
	clk     *clock.MockClock
	rec     *spyRecorder
	ref     resource.Ref
	offers  commands.OfferCommands
	leases  commands.LeaseCommands
	changes commands.OwnerChangeCommands
	sweeper commands.Sweeper
}

func newFixture() *fixture {
	store := memstore.New()
	dir := memstore.NewDirectory()
	ref := dir.AddResource(resource.TypeIronicNode, "node-1", "rack-a-01", ownerProject)
	dir.AddProject(lesseeProject, "").AddProject(childProject, lesseeProject).AddProject(otherProject, "")

	clk := clock.NewMockClock(base)
	rec := &spyRecorder{}
	return &fixture{
		store:   store,
		dir:     dir,
		clk:     clk,
		rec:     rec,
		ref:     ref,
		offers:  commands.NewOfferCommands(store, dir, dir, rec, clk),
		leases:  commands.NewLeaseCommands(store, dir, dir, rec, clk),
		changes: commands.NewOwnerChangeCommands(store, dir, dir, rec, clk),
		sweeper: commands.NewSweeper(store, rec, clk),
	}
}

func (f *fixture) offerReq(start, end int) commands.CreateOfferRequest {
	return commands.CreateOfferRequest{
		ResourceType: f.ref.Type,
		ResourceID:   f.ref.ID,
		StartTime:    at(start),
		EndTime:      at(end),
	}
}

func (f *fixture) leaseReq(project string, start, end int) commands.CreateLeaseRequest {
	return commands.CreateLeaseRequest{
		ProjectID:    project,
		ResourceType: f.ref.Type,
		ResourceID:   f.ref.ID,
		StartTime:    at(start),
		EndTime:      at(end),
	}
}

func (f *fixture) changeReq(to string, start, end int) commands.CreateOwnerChangeRequest {
	return commands.CreateOwnerChangeRequest{
		ResourceType: f.ref.Type,
		ResourceID:   f.ref.ID,
		ToOwnerID:    to,
		StartTime:    at(start),
		EndTime:      at(end),
	}
}
