package ops

import "github.com/birdiescript/birdie/internal/value"

// ListMarkStart implements "[" (spec §4.7): push the current stack
// length onto the list-mark stack.
func ListMarkStart(m value.Machine) error {
	m.PushListMark()
	return nil
}

// ListMarkEnd implements "]" (spec §4.7): pop the top mark (0 if none),
// take everything above that position in order, wrap into a List, push
// it.
func ListMarkEnd(m value.Machine) error {
	mark, _ := m.PopListMark()
	items := m.PopTill(mark)
	m.Push(value.NewList(items))
	return nil
}
