// internal/session/records.go
package session

import (
	"fmt"

	"selection-issue/internal/pick"
)

// RecordLines форматирует результат выбора построчно: заголовок и по строке
// на запись. Лишние записи сворачиваются в одну строку «... ещё N».
func RecordLines(res *pick.Result, err error, limit int) []string {
	if res == nil {
		return []string{"No pick yet. Click a circle, then press Tab."}
	}
	lines := []string{
		fmt.Sprintf("click %d,%d  pick %d,%d  hits %d  strategy %s  selected %d",
			res.Device.X, res.Device.Y, res.PickPoint.X, res.PickPoint.Y, res.Hits, res.Strategy, res.Selected),
	}
	if err != nil {
		lines = append(lines, fmt.Sprintf("error: %v", err))
	}
	for i, r := range res.Records {
		if len(lines) >= limit-1 && i < len(res.Records)-1 {
			lines = append(lines, fmt.Sprintf("... %d more", len(res.Records)-i))
			break
		}
		lines = append(lines, fmt.Sprintf("#%-3d %s", i, r))
	}
	return lines
}
