package navigation

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionHome Direction = "home"
	DirectionEnd  Direction = "end"
)

// CursorMovedEvent describes a change of the selected suggestion
type CursorMovedEvent struct {
	OldLink string
	NewLink string
}
