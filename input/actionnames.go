package input

// actionRegistry maps config action names to intents
// Used by the key config loader to resolve YAML action strings to bindings
var actionRegistry map[string]IntentType

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]IntentType {
	reg := make(map[string]IntentType, len(intentNames))
	for t, name := range intentNames {
		// Terminal and pointer events never come from a key
		switch t {
		case IntentResize, IntentFocus, IntentClick:
			continue
		}
		reg[name] = t
	}
	return reg
}

// ActionEntry returns the intent bound to an action name
func ActionEntry(name string) (IntentType, bool) {
	t, ok := actionRegistry[name]
	return t, ok
}

// ActionNames returns all bindable action names
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for n := range actionRegistry {
		names = append(names, n)
	}
	return names
}
