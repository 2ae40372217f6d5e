package checker

// Registry is the per-run mapping from rule category to raw diagnostics.
// Categories keep the order the engine enumerated them in. A Registry is
// created fresh for every run and implements themecheck.Recorder.
type Registry struct {
	order []string
	diags map[string][]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{diags: make(map[string][]string)}
}

// Record appends diagnostics to category. Recording a category twice keeps
// its first position.
func (r *Registry) Record(category string, diagnostics []string) {
	if _, ok := r.diags[category]; !ok {
		r.order = append(r.order, category)
		r.diags[category] = nil
	}
	r.diags[category] = append(r.diags[category], diagnostics...)
}

// Categories returns every recorded category in enumeration order, including
// those without diagnostics.
func (r *Registry) Categories() []string {
	return append([]string(nil), r.order...)
}

// Diagnostics returns the raw diagnostics recorded for category.
func (r *Registry) Diagnostics(category string) []string {
	return append([]string(nil), r.diags[category]...)
}

// Len returns the total number of diagnostics across all categories.
func (r *Registry) Len() int {
	n := 0
	for _, d := range r.diags {
		n += len(d)
	}
	return n
}

// Empty reports whether no diagnostics were recorded.
func (r *Registry) Empty() bool {
	return r.Len() == 0
}
