package sim

// recordingObserver captures notifications in arrival order for assertions.
type recordingObserver struct {
	notifications []Notification
}

func (o *recordingObserver) Notify(n Notification) {
	o.notifications = append(o.notifications, n)
}

// actions returns the (subject, action, id) triples of everything recorded,
// for compact sequence assertions.
func (o *recordingObserver) actions() [][3]string {
	out := make([][3]string, 0, len(o.notifications))
	for _, n := range o.notifications {
		out = append(out, [3]string{string(n.Subject), string(n.Action), n.ID})
	}
	return out
}
