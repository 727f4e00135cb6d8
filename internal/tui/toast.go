package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MissQuinn-dev/todo-frontend/internal/tui/msg"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/view"
)

// toastQueue holds the visible notifications, oldest first.
type toastQueue struct {
	items  []view.Toast
	nextID int
	max    int
	ttl    time.Duration
}

func newToastQueue(maxItems int, ttl time.Duration) *toastQueue {
	return &toastQueue{max: max(maxItems, 1), ttl: ttl}
}

// push adds a notification, dropping the oldest when the queue is full, and
// returns the command that expires it.
func (q *toastQueue) push(kind view.ToastKind, text string) tea.Cmd {
	q.nextID++
	q.items = append(q.items, view.Toast{ID: q.nextID, Kind: kind, Text: text})
	if over := len(q.items) - q.max; over > 0 {
		q.items = q.items[over:]
	}
	return msg.ExpireToast(q.nextID, q.ttl)
}

func (q *toastQueue) expire(id int) {
	for i, t := range q.items {
		if t.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return
		}
	}
}
