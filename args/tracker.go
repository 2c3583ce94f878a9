package args

// Tracker keeps count of required parameters and which of them have been given a value.
type Tracker struct {
	order     []string
	labels    map[string]string
	satisfied map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{
		labels:    map[string]string{},
		satisfied: map[string]bool{},
	}
}

// Demand registers a required parameter by name, with the label used to report it as missing.
// Demanding the same name twice has no effect.
func (t *Tracker) Demand(name, label string) {
	if _, ok := t.labels[name]; ok {
		return
	}
	t.order = append(t.order, name)
	t.labels[name] = label
}

// Satisfy marks a required parameter as given.
// True is returned only the first time a demanded parameter is satisfied.
func (t *Tracker) Satisfy(name string) bool {
	if _, ok := t.labels[name]; !ok {
		return false
	}
	if t.satisfied[name] {
		return false
	}
	t.satisfied[name] = true
	return true
}

// Demanded is the number of required parameters.
func (t *Tracker) Demanded() int {
	return len(t.order)
}

// Given is the number of required parameters that have been satisfied.
func (t *Tracker) Given() int {
	return len(t.satisfied)
}

// Met reports whether every required parameter has been satisfied.
func (t *Tracker) Met() bool {
	return t.Given() >= t.Demanded()
}

// Missing returns the labels of unsatisfied parameters in the order they were demanded.
func (t *Tracker) Missing() []string {
	var missing []string
	for _, name := range t.order {
		if !t.satisfied[name] {
			missing = append(missing, t.labels[name])
		}
	}
	return missing
}
