package selector

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	ActionCancel ActionKind = iota
	ActionSelect
	ActionCreateNew
	ActionDelete
)

func (k ActionKind) String() string {
	switch k {
	case ActionSelect:
		return "select"
	case ActionCreateNew:
		return "create"
	case ActionDelete:
		return "delete"
	default:
		return "cancel"
	}
}

// Action is the single result of a selector session.
//
// Text is the chosen label with its annotation stripped (Select, Delete) or
// the raw query (CreateNew). Index points into the candidate list the
// session was started with, or is -1 when no candidate is involved.
type Action struct {
	Kind  ActionKind
	Text  string
	Index int
}

func Select(text string, index int) Action {
	return Action{Kind: ActionSelect, Text: text, Index: index}
}

func CreateNew(name string) Action {
	return Action{Kind: ActionCreateNew, Text: name, Index: -1}
}

func Delete(text string, index int) Action {
	return Action{Kind: ActionDelete, Text: text, Index: index}
}

func Cancel() Action {
	return Action{Kind: ActionCancel, Index: -1}
}
