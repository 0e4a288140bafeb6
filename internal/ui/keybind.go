package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC a" is space then a.
// Single keys: "a", "q", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]keybind
}

type keybind struct {
	cmd  tea.Cmd
	desc string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]keybind)}
}

// Bind registers a key sequence with a description for the help view.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.bindings[normalizeSeq(seq)] = keybind{cmd: cmd, desc: desc}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// HasPrefix returns true if a longer binding starts with seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k, b := range r.bindings {
		if b.cmd != nil && strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Hints returns the next keys available after seq, sorted, as help bindings.
// Keys that open a longer sequence are shown with a trailing "…".
func (r *KeybindRegistry) Hints(seq string) []key.Binding {
	prefix := normalizeSeq(seq) + " "
	descs := make(map[string]string)
	for k, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(k, prefix) {
			continue
		}
		rest := strings.Fields(strings.TrimPrefix(k, prefix))
		next := rest[0]
		switch {
		case len(rest) > 1:
			descs[next] = next + "…"
		case b.desc != "":
			descs[next] = b.desc
		default:
			descs[next] = k
		}
	}

	keys := make([]string, 0, len(descs))
	for k := range descs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, descs[k])))
	}
	return out
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" and " " become "SPC".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() for space)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true the key must not be passed on to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{"SPC"}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		// Stay in leader mode while a longer binding may still match.
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s)); c != nil {
		return true, c
	}
	return false, nil
}

// Sequence returns the keys typed so far in leader mode.
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
