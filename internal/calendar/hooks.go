package calendar

import "github.com/jfmartinez/almanac/internal/event"

// Hooks are the mutation callbacks the widget hands commit intents to.
// The embedding application owns the event collection; each hook is
// invoked synchronously, at most once per user commit action. Nil
// hooks make the corresponding intent a no-op.
type Hooks struct {
	// OnEventAdd receives a validated new event. The receiver assigns
	// an identity if the event does not carry one.
	OnEventAdd func(e *event.Event) error

	// OnEventUpdate merges the patch into the event identified by id.
	OnEventUpdate func(id int64, patch event.Patch) error

	// OnEventDelete removes the event identified by id.
	OnEventDelete func(id int64) error
}

// Add forwards a new event intent.
func (h Hooks) Add(e *event.Event) error {
	if h.OnEventAdd == nil {
		return nil
	}
	return h.OnEventAdd(e)
}

// Update forwards a partial update intent.
func (h Hooks) Update(id int64, patch event.Patch) error {
	if h.OnEventUpdate == nil {
		return nil
	}
	return h.OnEventUpdate(id, patch)
}

// Delete forwards a delete intent.
func (h Hooks) Delete(id int64) error {
	if h.OnEventDelete == nil {
		return nil
	}
	return h.OnEventDelete(id)
}
