package navdoc

import "fmt"

// Summary describes the outcome of an export run.
type Summary struct {
	Succeeded int
	Total     int
	Path      string
}

// Percent returns the share of pages exported, 0 when there were none.
func (s Summary) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total) * 100
}

func (s Summary) String() string {
	return fmt.Sprintf("✅ combined %d/%d (%.1f%%) pages → %s", s.Succeeded, s.Total, s.Percent(), s.Path)
}
