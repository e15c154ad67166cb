package recontact

// Kind identifies a kind of contact handled by the extraction pipeline.
type Kind string

// Built-in contact kinds. New kinds are added by registering a
// (Matcher, Validator) pair with a Registry; nothing else changes.
const (
	KindEmail Kind = "email"
	KindPhone Kind = "phone"
)

// Source identifies where a candidate was found.
type Source string

// Candidate provenance tags.
const (
	SourcePage      Source = "page"      // scraped page content
	SourceHarvester Source = "harvester" // external OSINT tool output
	SourceGuess     Source = "guess"     // generated name-based patterns
)

// Candidate is a raw string matched by a pattern rule. Candidates are
// ephemeral: they exist only between matching and validation, and may
// contain duplicates and false positives.
type Candidate struct {
	Kind   Kind
	Raw    string
	Source Source
}

// ValidatedContact is the outcome of validating a single candidate.
// A ValidatedContact is immutable once created. Invalid contacts keep
// the raw string for diagnostics; only valid contacts carry a normalized
// canonical form and are eligible for the final record.
type ValidatedContact struct {
	Kind       Kind
	Raw        string
	Normalized string
	Valid      bool
	Source     Source
}

// Matcher finds candidate contacts of one kind in text.
// Implementations must be pure: the same text always yields the same
// candidate sequence. Over-matching is acceptable; validation downstream
// rejects false positives.
type Matcher interface {
	// Kind returns the contact kind this matcher produces.
	Kind() Kind

	// Match scans text and returns candidates in match order.
	// The result may be empty and may contain duplicates.
	Match(text string) []Candidate
}

// Validator validates candidates of one kind.
// Validate is a total function: malformed input is a normal negative
// result (Valid=false), never an error. Validating the same candidate
// twice must yield the same outcome.
type Validator interface {
	// Kind returns the contact kind this validator accepts.
	Kind() Kind

	// Validate returns the validation outcome for a candidate.
	Validate(c Candidate) ValidatedContact
}

// Rule pairs a matcher with the validator for its kind.
type Rule struct {
	Matcher   Matcher
	Validator Validator
}

// Registry holds the contact-kind rules applied by the pipeline.
// Rules are applied in registration order so extraction output is
// deterministic.
type Registry struct {
	kinds []Kind
	rules map[Kind]Rule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[Kind]Rule)}
}

// Register adds a rule for a contact kind. The matcher and validator must
// agree on the kind. Registering a kind twice replaces the previous rule.
func (r *Registry) Register(rule Rule) error {
	if rule.Matcher == nil || rule.Validator == nil {
		return Errorf(EINVALID, "rule requires both a matcher and a validator")
	}
	kind := rule.Matcher.Kind()
	if kind != rule.Validator.Kind() {
		return Errorf(EINVALID, "rule kind mismatch: matcher %q, validator %q", kind, rule.Validator.Kind())
	}
	if _, ok := r.rules[kind]; !ok {
		r.kinds = append(r.kinds, kind)
	}
	r.rules[kind] = rule
	return nil
}

// Get returns the rule for a kind.
func (r *Registry) Get(kind Kind) (Rule, bool) {
	rule, ok := r.rules[kind]
	return rule, ok
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, len(r.kinds))
	copy(kinds, r.kinds)
	return kinds
}

// Match runs every registered matcher over the text and returns all
// candidates, grouped by kind in registration order.
func (r *Registry) Match(text string) []Candidate {
	var out []Candidate
	for _, kind := range r.kinds {
		out = append(out, r.rules[kind].Matcher.Match(text)...)
	}
	return out
}

// Validate dispatches a candidate to the validator for its kind.
// Candidates of unregistered kinds are invalid.
func (r *Registry) Validate(c Candidate) ValidatedContact {
	rule, ok := r.rules[c.Kind]
	if !ok {
		return ValidatedContact{Kind: c.Kind, Raw: c.Raw, Source: c.Source}
	}
	return rule.Validator.Validate(c)
}
