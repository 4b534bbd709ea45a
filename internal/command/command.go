// Package command defines the parsed command bundle passed to handlers.
package command

// Action is the operation kind selected on the command line.
type Action string

// Known actions.
const (
	ActionAdd      Action = "add"
	ActionSubtract Action = "subtract"
	ActionMultiply Action = "multiply"
	ActionDivide   Action = "divide"
	ActionGet      Action = "get"
	ActionRotate   Action = "rotate"
	ActionSearch   Action = "search"
)

// Actions returns the closed set of known actions.
func Actions() []Action {
	return []Action{
		ActionAdd,
		ActionSubtract,
		ActionMultiply,
		ActionDivide,
		ActionGet,
		ActionRotate,
		ActionSearch,
	}
}

// String returns the action as a string.
func (a Action) String() string {
	return string(a)
}

// IsValid returns true if the action belongs to the known set.
func (a Action) IsValid() bool {
	switch a {
	case ActionAdd, ActionSubtract, ActionMultiply, ActionDivide,
		ActionGet, ActionRotate, ActionSearch:
		return true
	default:
		return false
	}
}

// ParseAction converts a raw string into an Action.
// Returns false if the string is not a known action.
func ParseAction(s string) (Action, bool) {
	a := Action(s)
	return a, a.IsValid()
}

// Resource is the subject an action operates on.
type Resource string

// Known resources.
const (
	ResourceNumbers Resource = "numbers"
	ResourceCamera  Resource = "camera"
	ResourceStars   Resource = "stars"
	ResourceMoon    Resource = "moon"
)

// Resources returns the closed set of known resources.
func Resources() []Resource {
	return []Resource{
		ResourceNumbers,
		ResourceCamera,
		ResourceStars,
		ResourceMoon,
	}
}

// String returns the resource as a string.
func (r Resource) String() string {
	return string(r)
}

// IsValid returns true if the resource belongs to the known set.
func (r Resource) IsValid() bool {
	switch r {
	case ResourceNumbers, ResourceCamera, ResourceStars, ResourceMoon:
		return true
	default:
		return false
	}
}

// ParseResource converts a raw string into a Resource.
// Returns false if the string is not a known resource.
func ParseResource(s string) (Resource, bool) {
	r := Resource(s)
	return r, r.IsValid()
}
