package reorganizer

// Action names what a run did (or, in a dry run, would do) for one path.
type Action string

const (
	ActionMoved      Action = "moved"
	ActionInPlace    Action = "in-place"
	ActionMissing    Action = "not-found"
	ActionCreated    Action = "created"
	ActionSkipped    Action = "skipped-existing"
	ActionDescriptor Action = "descriptor"
)

// Entry is one recorded action.
type Entry struct {
	Group  string `json:"group"`
	Action Action `json:"action"`
	Source string `json:"source,omitempty"`
	Dest   string `json:"dest"`
}

// Report is the ordered record of a run.
type Report struct {
	SourceRoot string  `json:"source_root"`
	DestRoot   string  `json:"dest_root"`
	DryRun     bool    `json:"dry_run"`
	Entries    []Entry `json:"entries"`
}

// GroupSummary tallies the rule outcomes of one group.
type GroupSummary struct {
	Name    string `json:"name"`
	Moved   int    `json:"moved"`
	InPlace int    `json:"in_place"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
	Missing int    `json:"missing"`
}

// Count returns how many entries recorded action.
func (r *Report) Count(action Action) int {
	n := 0
	for _, e := range r.Entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

// Missing returns the entries whose source was not found.
func (r *Report) Missing() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Action == ActionMissing {
			out = append(out, e)
		}
	}
	return out
}

// Groups summarizes entries per group in first-seen order.
func (r *Report) Groups() []GroupSummary {
	index := map[string]int{}
	var out []GroupSummary
	for _, e := range r.Entries {
		i, ok := index[e.Group]
		if !ok {
			i = len(out)
			index[e.Group] = i
			out = append(out, GroupSummary{Name: e.Group})
		}
		s := &out[i]
		switch e.Action {
		case ActionMoved:
			s.Moved++
		case ActionInPlace:
			s.InPlace++
		case ActionCreated:
			s.Created++
		case ActionSkipped:
			s.Skipped++
		case ActionMissing:
			s.Missing++
		}
	}
	return out
}

func (r *Report) record(e Entry) {
	r.Entries = append(r.Entries, e)
}
