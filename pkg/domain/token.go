package domain

// Token is a single `{name}` occurrence inside a path template.
// Name is the raw captured text; it is not validated as an identifier path.
type Token struct {
	Match string
	Name  string
	Start int
	End   int
}

// Strategy identifies which step of the chain produced (or failed to produce) a value.
type Strategy string

const (
	StrategyNone      Strategy = "none"
	StrategyResolver  Strategy = "resolver"
	StrategyNamespace Strategy = "namespace"
)

// Resolution is the outcome for one distinct token name within a rewrite.
type Resolution struct {
	Name        string   `json:"name"`
	Resolved    bool     `json:"resolved"`
	Strategy    Strategy `json:"strategy"`
	Value       string   `json:"value,omitempty"`
	Occurrences int      `json:"occurrences"`
	Err         error    `json:"-"`
}

// Result is what a rewrite hands back to the host.
// Changed is true iff at least one token was substituted.
type Result struct {
	Path        string       `json:"path"`
	Changed     bool         `json:"changed"`
	Resolutions []Resolution `json:"resolutions,omitempty"`
}

// Unresolved returns the names that were left verbatim in Path.
func (r Result) Unresolved() []string {
	var names []string
	for _, res := range r.Resolutions {
		if !res.Resolved {
			names = append(names, res.Name)
		}
	}
	return names
}
