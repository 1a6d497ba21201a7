package sim

import (
	"container/heap"
	"fmt"
)

// scheduledEvent pairs an event with the sequence number the heap assigned
// at insertion. The sequence is the deterministic tie-break for equal
// timestamps: within one tick, events execute in insertion order.
type scheduledEvent struct {
	event Event
	seq   uint64
}

// EventHeap is a min-priority queue of events keyed by (timestamp, sequence).
// Malformed events (nil, negative timestamp) are rejected at insertion by
// panic — the scheduler never partially applies an event, so a bad event
// must never reach execution.
type EventHeap struct {
	entries []scheduledEvent
	nextSeq uint64
}

// NewEventHeap creates an empty event heap.
func NewEventHeap() *EventHeap {
	h := &EventHeap{entries: make([]scheduledEvent, 0)}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *EventHeap) Len() int { return len(h.entries) }

// Less implements heap.Interface: timestamp first, insertion sequence second.
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.entries[i], h.entries[j]
	if ei.event.Timestamp() != ej.event.Timestamp() {
		return ei.event.Timestamp() < ej.event.Timestamp()
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface.
func (h *EventHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// Push implements heap.Interface.
func (h *EventHeap) Push(x interface{}) {
	h.entries = append(h.entries, x.(scheduledEvent))
}

// Pop implements heap.Interface.
func (h *EventHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[0 : n-1]
	return item
}

// Schedule validates and inserts an event, assigning its sequence number.
func (h *EventHeap) Schedule(e Event) {
	if e == nil {
		panic("Schedule: event must not be nil")
	}
	if e.Timestamp() < 0 {
		panic(fmt.Sprintf("Schedule: negative timestamp %d on %T", e.Timestamp(), e))
	}
	h.nextSeq++
	heap.Push(h, scheduledEvent{event: e, seq: h.nextSeq})
}

// PopNext removes and returns the earliest event, or nil if the heap is empty.
func (h *EventHeap) PopNext() Event {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(scheduledEvent).event
}

// Peek returns the earliest event without removing it, or nil if empty.
func (h *EventHeap) Peek() Event {
	if h.Len() == 0 {
		return nil
	}
	return h.entries[0].event
}
