package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/road-fighter/engine"
)

// Rune aliases for keys that can't be written as a bare character in a config value
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Short action names accepted as config keys, besides the canonical action names
var actionAliases = map[string]engine.Action{
	"left":  engine.ActionMoveLeft,
	"right": engine.ActionMoveRight,
	"up":    engine.ActionMoveUp,
	"down":  engine.ActionMoveDown,
	"fire":  engine.ActionFire,
	"quit":  engine.ActionQuit,
}

// WithBindings returns a copy of base with rune bindings replaced per action
// bindings maps an action name to a key: a single character, an alias, or "none" to unbind
// Special keys are never touched, so arrows and Ctrl-C keep working
func WithBindings(base *KeyTable, bindings map[string]string) (*KeyTable, error) {
	kt := base.Clone()

	// Sorted for deterministic conflict handling
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := resolveAction(name)
		if err != nil {
			return nil, err
		}
		value := strings.TrimSpace(bindings[name])

		for r, a := range kt.Runes {
			if a == action {
				delete(kt.Runes, r)
			}
		}
		if strings.EqualFold(value, "none") {
			continue
		}

		r, err := resolveRune(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}
		kt.Runes[r] = action
	}
	return kt, nil
}

// resolveRune converts a config value to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts a config key to an action
func resolveAction(name string) (engine.Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if a, ok := actionAliases[name]; ok {
		return a, nil
	}
	if a, ok := engine.ParseAction(name); ok {
		return a, nil
	}
	return engine.ActionNone, fmt.Errorf("unknown action: %q", name)
}
