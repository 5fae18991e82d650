package bookcompiler

// NavOp is a deferred bookmark or outline registration, kept in the exact
// order it was issued so replay preserves document order.
type NavOp struct {
	Outline bool // false: bookmark anchor, true: navigation index entry
	ID      string
	Title   string
	Level   int
}

// PageState is the captured drawing and navigation buffer for exactly one
// page. It is immutable once captured; pass 2 only reads it.
type PageState struct {
	Runs  []TextRun
	Rules []Rule
	Navs  []NavOp
}

// Recorder implements Canvas in memory. It buffers only the current page and
// moves the buffer into an owned PageState on commit, so the state of one
// page can never leak into a later capture. Pass 1 renders through a
// recorder, and tests use it as the backend to inspect final output.
type Recorder struct {
	runs  []TextRun
	rules []Rule
	navs  []NavOp
	pages []PageState
	done  bool
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) BeginPage() {}

func (r *Recorder) DrawText(run TextRun) {
	r.runs = append(r.runs, run)
}

func (r *Recorder) DrawRule(rule Rule) {
	r.rules = append(r.rules, rule)
}

func (r *Recorder) RegisterBookmark(id string) {
	r.navs = append(r.navs, NavOp{ID: id})
}

func (r *Recorder) RegisterNavEntry(title, id string, level int) {
	r.navs = append(r.navs, NavOp{Outline: true, ID: id, Title: title, Level: level})
}

// CommitPage captures the current page and resets the per-page buffers.
func (r *Recorder) CommitPage() error {
	state := PageState{
		Runs:  make([]TextRun, len(r.runs)),
		Rules: make([]Rule, len(r.rules)),
		Navs:  make([]NavOp, len(r.navs)),
	}
	copy(state.Runs, r.runs)
	copy(state.Rules, r.rules)
	copy(state.Navs, r.navs)
	r.pages = append(r.pages, state)
	r.runs = r.runs[:0]
	r.rules = r.rules[:0]
	r.navs = r.navs[:0]
	return nil
}

func (r *Recorder) Finalize() (string, error) {
	r.done = true
	return "", nil
}

// Pages returns the captured page states in commit order.
func (r *Recorder) Pages() []PageState { return r.pages }

// Finalized reports whether Finalize has been called.
func (r *Recorder) Finalized() bool { return r.done }
