package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move up
	ActionDown             // S, Down arrow - move down
	ActionLeft             // A, Left arrow - move left
	ActionRight            // D, Right arrow - move right
	ActionMine             // Space - mine the faced tile
	ActionInventory        // I - toggle inventory screen
	ActionShop             // B - toggle shop screen
	ActionPickaxe          // P - toggle pickaxe info screen
	ActionBuy1             // 1 - shop: buy mining speed upgrade
	ActionBuy2             // 2 - shop: buy mining range upgrade
	ActionBuy3             // 3 - shop: buy ore multiplier upgrade
	ActionBuy4             // 4 - shop: upgrade pickaxe tier
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // Esc - go back / close screen
	ActionRestart          // R - restart the run (from pause)
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // Esc - pause/unpause game
	ActionDebug            // F1 - toggle debug overlay
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionMine:
		return "Mine"
	case ActionInventory:
		return "Inventory"
	case ActionShop:
		return "Shop"
	case ActionPickaxe:
		return "Pickaxe"
	case ActionBuy1:
		return "Buy1"
	case ActionBuy2:
		return "Buy2"
	case ActionBuy3:
		return "Buy3"
	case ActionBuy4:
		return "Buy4"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
