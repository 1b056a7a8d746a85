// Package workspace binds one draft editor and one record store to a web
// session. The session is the lifecycle owner: a workspace is created the
// first time a session touches it and is discarded with the session.
package workspace

import (
	"context"
	"encoding/gob"

	"github.com/alexedwards/scs/v2"

	applog "stabilitylog/internal/log"
	"stabilitylog/internal/stability"
)

const (
	stateKey  = "workspace:state"
	noticeKey = "workspace:notice"
)

func init() {
	gob.Register(State{})
}

// State is the session-encoded form of a workspace.
type State struct {
	Draft      stability.BatchRecord
	Records    []stability.BatchRecord
	DialogOpen bool
}

// Options tune how workspaces are created and queried.
type Options struct {
	Policy               stability.RowPolicy
	SeedSample           bool
	ChambersIncludeDraft bool
}

// DefaultOptions blocks removal of the last schedule row and seeds nothing.
func DefaultOptions() Options {
	return Options{Policy: stability.DefaultRowPolicy()}
}

// Workspace is the draft editor plus record store owned by one session.
type Workspace struct {
	Editor *stability.Editor
	Store  *stability.Store
	opts   Options
}

// New returns a fresh workspace.
func New(opts Options) *Workspace {
	store := stability.NewStore()
	if opts.SeedSample {
		store = stability.NewStore(stability.SampleRecord())
	}
	return &Workspace{
		Editor: stability.NewEditor(opts.Policy),
		Store:  store,
		opts:   opts,
	}
}

// FromState rebuilds a workspace from its session form. The session codec
// drops empty slices, so schedules come back as nil and are restored here.
func FromState(opts Options, state State) *Workspace {
	if state.Draft.Schedule == nil {
		state.Draft.Schedule = []stability.ScheduleEntry{}
	}
	for i := range state.Records {
		if state.Records[i].Schedule == nil {
			state.Records[i].Schedule = []stability.ScheduleEntry{}
		}
	}
	return &Workspace{
		Editor: stability.RestoreEditor(opts.Policy, state.Draft, state.DialogOpen),
		Store:  stability.NewStore(state.Records...),
		opts:   opts,
	}
}

// State captures the workspace for storage in the session.
func (w *Workspace) State() State {
	return State{
		Draft:      w.Editor.Draft(),
		Records:    w.Store.List(),
		DialogOpen: w.Editor.ScheduleDialogOpen(),
	}
}

// Chambers returns chamber suggestions from the stored records, plus the
// draft's own rows when includeDraft is set or the workspace is configured to
// always include them.
func (w *Workspace) Chambers(includeDraft bool) []string {
	records := w.Store.List()
	if includeDraft || w.opts.ChambersIncludeDraft {
		return stability.DistinctChambers(records, w.Editor.Draft().Schedule)
	}
	return stability.DistinctChambers(records)
}

// Finalize commits the draft into the store.
func (w *Workspace) Finalize() (stability.BatchRecord, error) {
	return w.Editor.Finalize(w.Store)
}

// Edit loads a copy of the stored record at index into the draft.
func (w *Workspace) Edit(index int) error {
	record, err := w.Store.At(index)
	if err != nil {
		return err
	}
	w.Editor.LoadForEditing(record)
	return nil
}

// Manager loads and saves workspaces through an scs session manager.
type Manager struct {
	sessions *scs.SessionManager
	opts     Options
}

// NewManager returns a Manager that stores workspaces in sessions.
func NewManager(sessions *scs.SessionManager, opts Options) *Manager {
	return &Manager{sessions: sessions, opts: opts}
}

// Options returns the options applied to every workspace.
func (m *Manager) Options() Options {
	return m.opts
}

// Load returns the workspace for the session in ctx, creating it when the
// session has none.
func (m *Manager) Load(ctx context.Context) *Workspace {
	if state, ok := m.sessions.Get(ctx, stateKey).(State); ok {
		return FromState(m.opts, state)
	}
	applog.Debug(ctx, "creating workspace for session", "seedSample", m.opts.SeedSample)
	return New(m.opts)
}

// Save writes the workspace back into the session in ctx.
func (m *Manager) Save(ctx context.Context, w *Workspace) {
	m.sessions.Put(ctx, stateKey, w.State())
}

// Update loads the workspace, applies fn and saves the result. The workspace
// is saved even when fn fails so that partial effects such as closing the
// schedule dialog stick; operations that fail leave the draft and store as
// they were.
func (m *Manager) Update(ctx context.Context, fn func(*Workspace) error) (*Workspace, error) {
	w := m.Load(ctx)
	err := fn(w)
	m.Save(ctx, w)
	return w, err
}

// Discard drops the session's workspace; the next Load starts fresh.
func (m *Manager) Discard(ctx context.Context) {
	m.sessions.Remove(ctx, stateKey)
}

// SetNotice stores a one-shot message for the next page render.
func (m *Manager) SetNotice(ctx context.Context, notice string) {
	m.sessions.Put(ctx, noticeKey, notice)
}

// PopNotice returns and clears the pending message.
func (m *Manager) PopNotice(ctx context.Context) string {
	return m.sessions.PopString(ctx, noticeKey)
}
