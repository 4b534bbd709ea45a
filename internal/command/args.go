package command

// Args is the argument bundle produced by the front end and handed to
// handlers. Action and Resource are always set; the pointer fields are nil
// when the caller did not provide them, which is distinct from a provided
// empty or zero value. Silent defaults to false.
type Args struct {
	// Action is the operation kind. Always present.
	Action Action

	// Resource is the operation subject. Always present.
	Resource Resource

	// Values are the positional operands, in the order given.
	Values []string

	// Data is an optional free-form payload.
	Data *string

	// Page is an optional result page number.
	Page *int

	// Skip is an optional count of results to skip.
	Skip *int

	// Verbose optionally requests detailed output.
	Verbose *bool

	// Output is an optional output destination name.
	Output *string

	// Silent suppresses informational output when true.
	Silent bool
}

// New creates an Args bundle for an action/resource pair.
func New(action Action, resource Resource, values ...string) Args {
	return Args{
		Action:   action,
		Resource: resource,
		Values:   values,
	}
}

// WithValues returns a copy of the args with the values replaced.
func (a Args) WithValues(values ...string) Args {
	a.Values = values
	return a
}

// WithData returns a copy of the args with the data payload set.
func (a Args) WithData(data string) Args {
	a.Data = &data
	return a
}

// WithPage returns a copy of the args with the page set.
func (a Args) WithPage(page int) Args {
	a.Page = &page
	return a
}

// WithSkip returns a copy of the args with the skip count set.
func (a Args) WithSkip(skip int) Args {
	a.Skip = &skip
	return a
}

// WithVerbose returns a copy of the args with verbose set.
func (a Args) WithVerbose(verbose bool) Args {
	a.Verbose = &verbose
	return a
}

// WithOutput returns a copy of the args with the output destination set.
func (a Args) WithOutput(output string) Args {
	a.Output = &output
	return a
}

// WithSilent returns a copy of the args with silent set.
func (a Args) WithSilent(silent bool) Args {
	a.Silent = silent
	return a
}

// DataOr returns the data payload, or def when not provided.
func (a Args) DataOr(def string) string {
	if a.Data == nil {
		return def
	}
	return *a.Data
}

// PageOr returns the page, or def when not provided.
func (a Args) PageOr(def int) int {
	if a.Page == nil {
		return def
	}
	return *a.Page
}

// SkipOr returns the skip count, or def when not provided.
func (a Args) SkipOr(def int) int {
	if a.Skip == nil {
		return def
	}
	return *a.Skip
}

// IsVerbose returns the verbose flag, treating "not provided" as false.
func (a Args) IsVerbose() bool {
	return a.Verbose != nil && *a.Verbose
}

// OutputOr returns the output destination, or def when not provided.
func (a Args) OutputOr(def string) string {
	if a.Output == nil {
		return def
	}
	return *a.Output
}
