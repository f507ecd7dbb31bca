// internal/selection/state.go
package selection

import "image"

// None означает, что ни одна окружность не выбрана
const None = -1

// State хранит всё изменяемое состояние демо: текущий выбор, точку последнего
// клика (в координатах рендера, y вверх) и размер поверхности.
type State struct {
	Selected  int
	PickPoint image.Point
	Width     int
	Height    int
}

func New(width, height int) *State {
	return &State{
		Selected: None,
		Width:    width,
		Height:   height,
	}
}

func (s *State) Clear() {
	s.Selected = None
}

func (s *State) Select(id int) {
	s.Selected = id
}

func (s *State) HasSelection() bool {
	return s.Selected != None
}

func (s *State) IsSelected(id int) bool {
	return s.Selected != None && s.Selected == id
}

// Resize запоминает новый размер поверхности. Выбор не сбрасывается.
func (s *State) Resize(width, height int) {
	s.Width = width
	s.Height = height
}

// Aspect возвращает высоту, делённую на ширину. Для пустой поверхности: 1.
func (s *State) Aspect() float64 {
	if s.Width <= 0 || s.Height <= 0 {
		return 1
	}
	return float64(s.Height) / float64(s.Width)
}
