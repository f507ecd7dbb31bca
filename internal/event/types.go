// internal/event/types.go
package event

const (
	PickCompleted     EventType = "PickCompleted"     // Клик обработан, Data: pick.Result
	SelectionChanged  EventType = "SelectionChanged"  // Data: SelectionChange
	HitBufferOverflow EventType = "HitBufferOverflow" // Буфер попаданий переполнен, Data: pick.Result
	StrategyChanged   EventType = "StrategyChanged"   // Data: pick.Strategy
	QuirkChanged      EventType = "QuirkChanged"      // Data: glsel.Quirk
)

var AllTypes = []EventType{PickCompleted, SelectionChanged, HitBufferOverflow, StrategyChanged, QuirkChanged}

// SelectionChange: было/стало
type SelectionChange struct {
	Previous int
	Current  int
}
