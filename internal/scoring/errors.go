package scoring

import "fmt"

// FeatureSetError reports a malformed rule declaration. It signals a programming error in
// an extractor, never bad input data.
type FeatureSetError struct {
	Index   int
	Rule    string
	Message string
}

func (e *FeatureSetError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("feature set error: rule %d (%s): %s", e.Index, e.Rule, e.Message)
	}
	return fmt.Sprintf("feature set error: rule %d: %s", e.Index, e.Message)
}
