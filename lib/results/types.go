package results

// CourseResult is one row of the grade table on a result page. Order is
// significant: it is preserved from the source response and used both for
// display and as a ranking tie-break vector.
type CourseResult struct {
	Code  string
	Grade string
}

type StudentRecord struct {
	RegistrationNo string
	Name           string
	ExamRoll       string
	ResultStatus   string
	PublishedDate  string
	Courses        []CourseResult
	Group          string
	Year           string
}

type OutcomeKind int

const (
	Success OutcomeKind = iota
	NotRegistered
	FormatUnrecognized
	RetryExhausted
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case NotRegistered:
		return "not_registered"
	case FormatUnrecognized:
		return "format_unrecognized"
	case RetryExhausted:
		return "retry_exhausted"
	}
	return "unknown"
}

// legacy sentinel names written to the Name column by earlier versions
// of the pipeline. Kept so old files stay readable and new files stay
// compatible with existing readers.
const (
	legacyNotRegistered      = "This Student Is Not Registered"
	legacyFormatUnrecognized = "Result Format Not Recognized"
	legacyRetryExhausted     = "Failed to retrieve"
)

// LegacyName returns the sentinel string a non-success outcome stores in
// the Name column, or "" for success.
func (k OutcomeKind) LegacyName() string {
	switch k {
	case NotRegistered:
		return legacyNotRegistered
	case FormatUnrecognized:
		return legacyFormatUnrecognized
	case RetryExhausted:
		return legacyRetryExhausted
	}
	return ""
}

// KindFromName recovers the outcome kind from a Name column value.
func KindFromName(name string) OutcomeKind {
	switch name {
	case legacyNotRegistered:
		return NotRegistered
	case legacyFormatUnrecognized:
		return FormatUnrecognized
	case legacyRetryExhausted:
		return RetryExhausted
	}
	return Success
}

// Outcome is the terminal classification of one acquisition. Record carries
// student data only when Kind == Success; for every other kind it holds the
// identity fields (registration number, group, year) for audit.
type Outcome struct {
	RegistrationNo string
	Kind           OutcomeKind
	Record         StudentRecord
}

// Row widens an outcome into the record shape persisted to disk,
// substituting the legacy sentinel name for non-success kinds.
func (o Outcome) Row() StudentRecord {
	rec := o.Record
	rec.RegistrationNo = o.RegistrationNo
	if o.Kind != Success {
		rec.Name = o.Kind.LegacyName()
		rec.Courses = nil
	}
	return rec
}

// IsSentinel reports whether a stored record encodes a non-data outcome
// rather than an actual student. Sentinels are retained for audit but must
// be excluded before ranking.
func (r StudentRecord) IsSentinel() bool {
	return KindFromName(r.Name) != Success
}
