package notifications

// Notifier accumulates business-rule error messages for exactly one
// request. Handlers create a fresh Notifier per request and hand it to
// the response shaper; it is never shared across requests.
type Notifier struct {
	messages []string
}

// New creates an empty Notifier.
func New() *Notifier {
	return &Notifier{}
}

// AddError queues a human-readable error message.
func (n *Notifier) AddError(message string) {
	n.messages = append(n.messages, message)
}

// HasNotifications reports whether any error has been queued.
func (n *Notifier) HasNotifications() bool {
	return len(n.messages) > 0
}

// Messages returns the queued messages in insertion order.
func (n *Notifier) Messages() []string {
	return n.messages
}
