package app

// DialogPage is a pending modal request.
type DialogPage interface {
	Title() string
}

// ChangeCity asks the user for a new place name.
type ChangeCity struct {
	Text string
}

func (ChangeCity) Title() string { return "Change city" }

// DialogQueue is a FIFO of dialogs. Only the front is shown and editable.
type DialogQueue struct {
	pages []DialogPage
}

// Push appends a dialog to the back of the queue.
func (q *DialogQueue) Push(p DialogPage) {
	q.pages = append(q.pages, p)
}

// Front returns the visible dialog, if any.
func (q DialogQueue) Front() (DialogPage, bool) {
	if len(q.pages) == 0 {
		return nil, false
	}
	return q.pages[0], true
}

// Pop removes the front dialog. It returns false on an empty queue.
func (q *DialogQueue) Pop() (DialogPage, bool) {
	if len(q.pages) == 0 {
		return nil, false
	}
	front := q.pages[0]
	q.pages[0] = nil
	q.pages = q.pages[1:]
	return front, true
}

// SetFrontText replaces the text buffer of the front dialog.
func (q *DialogQueue) SetFrontText(text string) bool {
	if len(q.pages) == 0 {
		return false
	}
	switch q.pages[0].(type) {
	case ChangeCity:
		q.pages[0] = ChangeCity{Text: text}
		return true
	}
	return false
}

// Len returns the number of pending dialogs.
func (q DialogQueue) Len() int {
	return len(q.pages)
}
