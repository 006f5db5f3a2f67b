package navigation

import (
	"wikisuggest/internal/domain"
)

// Service tracks the selected suggestion. The selection is keyed by link, so
// it stays on the same article when a refreshed list reorders it.
type Service struct {
	items    domain.SuggestionList
	selected string
	onMove   func(CursorMovedEvent)
}

// NewService creates a navigation service with nothing selected
func NewService() *Service {
	return &Service{}
}

// OnMove registers a callback for selection changes
func (s *Service) OnMove(fn func(CursorMovedEvent)) {
	s.onMove = fn
}

// SetItems replaces the list. The selection is kept if its link is still
// present, otherwise it moves to the first item.
func (s *Service) SetItems(items domain.SuggestionList) {
	s.items = items
	if items.IndexOf(s.selected) >= 0 {
		return
	}
	if len(items) == 0 {
		s.moveTo("")
		return
	}
	s.moveTo(items[0].Link)
}

// Navigate handles navigation in a direction, clamping at both ends
func (s *Service) Navigate(direction Direction) {
	if len(s.items) == 0 {
		return
	}

	cursor := s.Cursor()
	switch direction {
	case DirectionUp:
		cursor--
	case DirectionDown:
		cursor++
	case DirectionHome:
		cursor = 0
	case DirectionEnd:
		cursor = len(s.items) - 1
	}
	s.moveTo(s.items[s.clampIndex(cursor)].Link)
}

// Cursor returns the index of the selected item, or -1 when the list is empty
func (s *Service) Cursor() int {
	return s.items.IndexOf(s.selected)
}

// Selected returns the link of the selected item
func (s *Service) Selected() string {
	return s.selected
}

// Len returns the number of items
func (s *Service) Len() int {
	return len(s.items)
}

func (s *Service) moveTo(link string) {
	if link == s.selected {
		return
	}
	old := s.selected
	s.selected = link
	if s.onMove != nil {
		s.onMove(CursorMovedEvent{OldLink: old, NewLink: link})
	}
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > len(s.items)-1 {
		return len(s.items) - 1
	}
	return index
}
