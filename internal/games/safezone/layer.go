package safezone

// Container is the presentation attach point. Agents add themselves when drawn
// and remove themselves when destroyed; the core never inspects what a
// container renders to.
type Container interface {
	Contains(a Agent) bool
	Add(a Agent)
	Remove(a Agent)
}

// Layer is an ordered Container. Draw order is attach order.
type Layer struct {
	visible bool
	members []Agent
}

// NewLayer creates an empty, hidden layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Contains reports whether a is attached.
func (l *Layer) Contains(a Agent) bool {
	for _, m := range l.members {
		if m == a {
			return true
		}
	}
	return false
}

// Add attaches a. Adding an attached agent is a no-op.
func (l *Layer) Add(a Agent) {
	if l.Contains(a) {
		return
	}
	l.members = append(l.members, a)
}

// Remove detaches a. Removing an absent agent is a no-op.
func (l *Layer) Remove(a Agent) {
	for i, m := range l.members {
		if m == a {
			l.members = append(l.members[:i], l.members[i+1:]...)
			return
		}
	}
}

// Members returns the attached agents in draw order.
func (l *Layer) Members() []Agent {
	return l.members
}

// Len returns the number of attached agents.
func (l *Layer) Len() int {
	return len(l.members)
}

// SetVisible shows or hides the whole layer.
func (l *Layer) SetVisible(v bool) {
	l.visible = v
}

// Visible reports whether the layer is shown.
func (l *Layer) Visible() bool {
	return l.visible
}
