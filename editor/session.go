package editor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/pagedit/config"
	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/pagedit/export"
	"github.com/npillmayer/pagedit/page"
	"github.com/npillmayer/pagedit/panel"
	"github.com/npillmayer/pagedit/props"
	"github.com/npillmayer/pagedit/reconcile"
	"golang.org/x/net/html"
)

// ErrUnknownControl is flagged for control ids which are neither mode nor
// theme controls.
var ErrUnknownControl = errors.New("unknown control")

// Attributes of the surface mirroring the mode.
const (
	InspectAttr  = "data-inspect"
	EditableAttr = "contenteditable"
	GrabAttr     = "data-grab"
	ThemeAttr    = "data-bs-theme"
)

// Session is an editing session.
type Session struct {
	// PrefersDark is the host's dark-mode preference, used for scheme auto.
	PrefersDark bool
	conf        *config.Config
	surface     *dom.Surface
	sync        *reconcile.Synchronizer
	registry    *props.Registry
	panel       *panel.Panel
	mode        Mode
	selected    *html.Node
	drag        *drag
	listeners   []Listener
	script      string
	styleVars   map[string]string
	report      reconcile.Report
}

// NewSession creates a session in inspect mode.
//
// If surface is nil, a new surface is created and filled from pg (nil pg
// means the seed page). Otherwise the content of the given surface is
// adopted: pg is reconciled with it.
func NewSession(conf *config.Config, pg *page.Page, surface *dom.Surface) *Session {
	if conf == nil {
		conf = config.Default()
	}
	adopt := surface != nil
	if !adopt {
		surface = dom.NewSurface()
		if pg == nil {
			pg = page.New()
		}
	}
	s := &Session{
		conf:      conf,
		surface:   surface,
		sync:      reconcile.New(surface, pg),
		registry:  props.NewRegistry(),
		styleVars: make(map[string]string),
	}
	s.panel = panel.New(s.registry, s.DocumentChanged)
	s.Subscribe(deselectOutsideInspect)
	if adopt {
		s.report = s.sync.SyncFromDOM()
	} else {
		s.renderPage()
	}
	s.SetMode(Inspect)
	return s
}

// Config returns the session's configuration.
func (s *Session) Config() *config.Config { return s.conf }

// Page returns the page record tree.
func (s *Session) Page() *page.Page { return s.sync.Page() }

// Surface returns the live surface.
func (s *Session) Surface() *dom.Surface { return s.surface }

// Panel returns the property panel.
func (s *Session) Panel() *panel.Panel { return s.panel }

// Registry returns the property descriptors used by the panel.
func (s *Session) Registry() *props.Registry { return s.registry }

// LastReport returns the report of the most recent synchronization.
func (s *Session) LastReport() reconcile.Report { return s.report }

// Subscribe adds a listener for the session's notifications. Listeners
// are called in the order of subscription.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(e Event) {
	tracer().Debugf("%s", e)
	for _, l := range s.listeners {
		l(s, e)
	}
}

// DocumentChanged reconciles the page record tree with the surface and
// raises a document-changed notification. Hosts call it after editing
// the surface directly, e.g. by typing in edit mode.
func (s *Session) DocumentChanged() {
	s.report = s.sync.SyncFromDOM()
	s.emit(DocumentChanged)
}

// --- Modes -----------------------------------------------------------------

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// SetMode switches the mode. The surface attributes `data-inspect`,
// `contenteditable` and `data-grab` mirror the mode.
func (s *Session) SetMode(m Mode) {
	root := s.surface.Root()
	root.SetAttribute(InspectAttr, fmt.Sprint(m == Inspect))
	root.SetAttribute(EditableAttr, fmt.Sprint(m == Edit))
	root.SetAttribute(GrabAttr, fmt.Sprint(m == Move))
	s.mode = m
	s.drag = nil
	s.emit(ModeChanged)
}

// Detach removes the editor state from the surface: the selection and the
// mode attributes. The surface is left as a plain document, e.g. to be
// written to a file. Setting a mode attaches the session again.
func (s *Session) Detach() {
	s.Deselect()
	s.drag = nil
	root := s.surface.Root().HTMLNode()
	for _, attr := range []string{InspectAttr, EditableAttr, GrabAttr} {
		dom.RemoveAttr(root, attr)
	}
}

// deselectOutsideInspect drops the selection when leaving inspect mode.
func deselectOutsideInspect(s *Session, e Event) {
	if e == ModeChanged && s.mode != Inspect {
		s.Deselect()
	}
}

// Control handles a change of a mode or theme radio control, identified
// by its id.
func (s *Session) Control(id string) error {
	if m, ok := ModeFromControl(id); ok {
		s.SetMode(m)
		return nil
	}
	if sch, ok := config.SchemeFromControl(id); ok {
		return s.SetTheme(sch)
	}
	return fmt.Errorf("%w: %q", ErrUnknownControl, id)
}

// --- Selection -------------------------------------------------------------

// Selected returns the selected element, or nil.
func (s *Session) Selected() *dom.W3CNode {
	if s.selected == nil {
		return nil
	}
	return s.surface.Node(s.selected)
}

// Click handles a click on a node. In inspect mode, clicking an element
// on the surface selects it; clicking the surface itself, or anything not
// on the surface, deselects. Other modes ignore clicks.
func (s *Session) Click(target *html.Node) {
	if s.mode != Inspect {
		return
	}
	if target != nil && target.Type == html.TextNode {
		target = target.Parent
	}
	if target == nil || target == s.surface.Root().HTMLNode() ||
		!s.surface.Contains(target) || target.Type != html.ElementNode {
		s.Deselect()
		return
	}
	s.Select(target)
}

// Select selects an element on the surface and shows its properties.
func (s *Session) Select(h *html.Node) {
	if s.selected != nil {
		dom.RemoveAttr(s.selected, reconcile.SelectedAttr)
	}
	s.selected = h
	dom.SetAttr(h, reconcile.SelectedAttr, "true")
	s.panel.Render(s.surface.Node(h))
	s.emit(SelectionChanged)
}

// Deselect clears the selection and the property panel.
func (s *Session) Deselect() {
	if s.selected == nil {
		s.panel.Clear()
		return
	}
	dom.RemoveAttr(s.selected, reconcile.SelectedAttr)
	s.selected = nil
	s.panel.Clear()
	s.emit(SelectionChanged)
}

// --- Theme -----------------------------------------------------------------

// SetTheme sets the color scheme of the page, creating the default theme
// on first use, and re-renders the surface from the page record tree.
func (s *Session) SetTheme(scheme config.Scheme) error {
	sch, err := config.ParseScheme(string(scheme))
	if err != nil {
		return err
	}
	s.conf.EnsureTheme().Scheme = sch
	s.renderPage()
	s.emit(ThemeChanged)
	return nil
}

// renderPage replaces the surface content by the materialized page and
// applies the theme to the surface.
func (s *Session) renderPage() {
	s.Deselect()
	s.sync.Render()
	theme := s.conf.Theme
	if theme == nil {
		return
	}
	root := s.surface.Root()
	scheme := theme.Scheme
	if scheme == config.Auto {
		scheme = config.Light
		if s.PrefersDark {
			scheme = config.Dark
		}
	}
	root.SetAttribute(ThemeAttr, string(scheme))
	if theme.AccentColor != "" {
		root.Style().SetProperty("--accent-color", style.Property(theme.AccentColor))
	}
}

// --- Palette ---------------------------------------------------------------

// Palette creates a new element as described by a palette button and
// appends it to the surface. Malformed button attributes are ignored.
func (s *Session) Palette(b config.Button) (*dom.W3CNode, error) {
	tag := strings.TrimSpace(b.Tag)
	if tag == "" {
		return nil, fmt.Errorf("%w: button %q has no tag", config.ErrInvalidButton, b.Label)
	}
	h := dom.NewElement(tag)
	dom.SetAttr(h, dom.DataIDAttr, page.NewID())
	if b.Class != "" {
		dom.SetAttr(h, "class", b.Class)
	}
	attrs, err := b.DecodeAttributes()
	if err != nil {
		tracer().Errorf("ignoring attributes of palette button: %v", err)
	}
	for _, k := range sortedKeys(attrs) {
		dom.SetAttr(h, k, attrs[k])
	}
	s.surface.Append(h)
	s.DocumentChanged()
	return s.surface.Node(h), nil
}

// PaletteButton finds a button of the configured palette by label and
// applies it.
func (s *Session) PaletteButton(label string) (*dom.W3CNode, error) {
	for _, b := range s.conf.Palette {
		if strings.EqualFold(b.Label, label) {
			return s.Palette(b)
		}
	}
	return nil, fmt.Errorf("%w: no palette button %q", ErrUnknownControl, label)
}

// --- Script and style ------------------------------------------------------

// SetScript sets the user script of the exported page.
func (s *Session) SetScript(script string) {
	s.script = script
}

// Script returns the user script.
func (s *Session) Script() string {
	return s.script
}

// SetStyleVar sets a custom style property of the exported page, given
// with or without leading `--`. An empty value removes it.
func (s *Session) SetStyleVar(name, value string) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "--")
	if value = strings.TrimSpace(value); value == "" {
		delete(s.styleVars, name)
		return
	}
	s.styleVars[name] = value
}

// StyleVars returns the custom style properties.
func (s *Session) StyleVars() map[string]string {
	vars := make(map[string]string, len(s.styleVars))
	for k, v := range s.styleVars {
		vars[k] = v
	}
	return vars
}

// Export renders the page as a standalone HTML document.
func (s *Session) Export() (string, error) {
	return export.Render(export.Document{
		Config: s.conf,
		Page:   s.Page(),
		Script: s.script,
		Style:  s.StyleVars(),
	})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
