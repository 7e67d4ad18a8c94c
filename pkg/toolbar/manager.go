package toolbar

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tessarin/mindcanvas/pkg/watcher"
)

// Localizer resolves catalog keys for the active display language.
// *i18n.Manager satisfies it; tests substitute fakes.
type Localizer interface {
	T(key string) string
	Current() string
}

// languageNotifier is implemented by localizers that can push
// language-change events. Language switches refresh text immediately,
// without the debounce the width and structure triggers get.
type languageNotifier interface {
	OnChange(fn func(code string))
}

// DefaultAssistantName is shown on the assistant button when no name
// provider is wired or it returns an empty string.
const DefaultAssistantName = "MindMate AI"

// Debounce windows for the two recompute triggers. Resizes arrive in bursts
// while a window is dragged; structure mutations arrive in bursts when a
// plugin installs several buttons at once.
const (
	DefaultResizeDelay    = 100 * time.Millisecond
	DefaultStructureDelay = 150 * time.Millisecond
)

// Options tunes a Manager. The zero value is usable.
type Options struct {
	// AssistantName returns the assistant's current display name.
	// Nil or empty falls back to DefaultAssistantName.
	AssistantName func() string

	// ResizeDelay and StructureDelay override the debounce windows.
	// Zero keeps the defaults.
	ResizeDelay    time.Duration
	StructureDelay time.Duration

	// AutoCollapseThreshold collapses groups with more than this many
	// buttons on mobile entry. Zero disables the policy.
	AutoCollapseThreshold int

	// Logger receives engine diagnostics. Nil uses slog.Default().
	Logger *slog.Logger

	// OnApplied is called after every apply or text refresh, outside the
	// engine locks. UIs use it to schedule a repaint.
	OnApplied func(Tier)
}

// Manager drives the responsive layout cycle: it watches viewport width and
// toolbar structure, debounces each trigger independently, classifies the
// width into a tier, and applies tier state to the toolbar tree.
type Manager struct {
	mu sync.Mutex

	tb  *Toolbar
	loc Localizer

	assistantName func() string
	autoCollapse  int
	onApplied     func(Tier)
	log           *slog.Logger

	resizeDeb    *watcher.Debouncer
	structureDeb *watcher.Debouncer

	widthPx   int
	tier      Tier
	collapsed map[string]bool

	started bool
	inert   bool
}

// NewManager wires a manager to a toolbar and localizer. A nil localizer
// degrades to catalog keys as display text. Call Init to start the cycle.
func NewManager(tb *Toolbar, loc Localizer, opts Options) *Manager {
	if opts.ResizeDelay == 0 {
		opts.ResizeDelay = DefaultResizeDelay
	}
	if opts.StructureDelay == 0 {
		opts.StructureDelay = DefaultStructureDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if loc == nil {
		opts.Logger.Warn("localizer missing; toolbar text degrades to catalog keys")
		loc = fallbackLocalizer{}
	}
	return &Manager{
		tb:            tb,
		loc:           loc,
		assistantName: opts.AssistantName,
		autoCollapse:  opts.AutoCollapseThreshold,
		onApplied:     opts.OnApplied,
		log:           opts.Logger,
		resizeDeb:     watcher.NewDebouncer(opts.ResizeDelay),
		structureDeb:  watcher.NewDebouncer(opts.StructureDelay),
		tier:          tierNone,
		collapsed:     make(map[string]bool),
	}
}

// Init subscribes to structure and language changes and applies the first
// tier synchronously. A nil toolbar logs a warning and leaves the manager
// inert: every later call becomes a no-op. Init is idempotent.
func (m *Manager) Init(widthPx int) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	if m.tb == nil {
		m.inert = true
		m.mu.Unlock()
		m.log.Warn("toolbar not found; responsive layout disabled")
		return
	}
	m.widthPx = widthPx
	m.mu.Unlock()

	m.tb.OnStructure(func() {
		m.structureDeb.Trigger(m.Recompute)
	})
	if ln, ok := m.loc.(languageNotifier); ok {
		ln.OnChange(func(string) { m.RefreshText() })
	}

	m.Recompute()
}

// NotifyResize records the latest viewport width and schedules a debounced
// recompute. Only the width from the final call in a burst is classified.
func (m *Manager) NotifyResize(px int) {
	m.mu.Lock()
	if m.inert {
		m.mu.Unlock()
		return
	}
	m.widthPx = px
	m.mu.Unlock()

	m.resizeDeb.Trigger(m.Recompute)
}

// Recompute classifies the stored width and applies the resulting tier.
// Applying the tier already in effect reconciles text and structure without
// disturbing user collapse state.
func (m *Manager) Recompute() {
	m.mu.Lock()
	if m.inert || m.tb == nil {
		m.mu.Unlock()
		return
	}
	prev := m.tier
	tier := TierForWidth(m.widthPx)
	widthPx := m.widthPx
	m.applyTier(tier, prev)
	m.tier = tier
	m.mu.Unlock()

	if tier != prev {
		m.log.Debug("layout tier applied",
			"tier", tier.String(), "prev", prev.String(), "width_px", widthPx)
	}
	m.notifyApplied(tier)
}

// RefreshText re-resolves all toolbar text for the active language and
// assistant name at the current tier. Unlike width and structure changes
// this path is not debounced; language switches are single deliberate
// events and the swap should be instant.
func (m *Manager) RefreshText() {
	m.mu.Lock()
	if m.inert || m.tb == nil || m.tier == tierNone {
		m.mu.Unlock()
		return
	}
	tier := m.tier
	m.tb.mu.Lock()
	m.refreshTextLocked(tier)
	m.tb.mu.Unlock()
	m.mu.Unlock()

	m.notifyApplied(tier)
}

// CurrentTier returns the active tier, or a tier printing as "none" before
// the first apply.
func (m *Manager) CurrentTier() Tier {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tier
}

// WidthPx returns the most recently recorded viewport width.
func (m *Manager) WidthPx() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.widthPx
}

// Close cancels any pending debounced recomputes.
func (m *Manager) Close() {
	m.resizeDeb.Cancel()
	m.structureDeb.Cancel()
}

func (m *Manager) notifyApplied(tier Tier) {
	if m.onApplied != nil {
		m.onApplied(tier)
	}
}

// fallbackLocalizer stands in when no localizer is wired. Keys pass through
// untranslated and the language reports the studio default.
type fallbackLocalizer struct{}

func (fallbackLocalizer) T(key string) string { return key }
func (fallbackLocalizer) Current() string     { return "zh" }
