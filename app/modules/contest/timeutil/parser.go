package contesttime

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// EndTimeParser turns admin input into a contest end time. RFC3339 is tried
// first; anything else goes through natural-language parsing ("friday 6pm",
// "in 2 hours").
type EndTimeParser struct {
	w *when.Parser
}

func NewEndTimeParser() *EndTimeParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &EndTimeParser{w: w}
}

// Parse resolves input relative to now. The result must lie in the future.
func (p *EndTimeParser) Parse(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("end time is required")
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		if !t.After(now) {
			return time.Time{}, fmt.Errorf("end time %s is not in the future", t.Format(time.RFC3339))
		}
		return t, nil
	}

	r, err := p.w.Parse(input, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse end time %q: %w", input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("could not understand end time %q", input)
	}
	if !r.Time.After(now) {
		return time.Time{}, fmt.Errorf("end time %q resolves to the past", input)
	}

	return r.Time, nil
}
