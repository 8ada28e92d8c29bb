package signals

// Summary is the fixed-shape bundle of training signals derived from a
// finished session and the recent set log history. It is embedded into the
// advisor prompt and stored with the session as an audit trail.
type Summary struct {
	// AverageRPE is the mean of the session's reported RPE values, one
	// decimal. Nil when no set carried an RPE.
	AverageRPE *float64 `json:"averageRpe"`
	// TargetHitRate is the percentage (0-100) of sets with a rep target
	// where the actual reps reached it. 100 when no set had a target.
	TargetHitRate     int          `json:"targetHitRate"`
	WeeklyVolumeTrend string       `json:"weeklyVolumeTrend"`
	RecurringIssues   []string     `json:"recurringIssues"`
	RestTimes         RestTimes    `json:"restTimes"`
	LightSession      LightSession `json:"lightSessionSuggested"`
}

// Weekly tonnage trend classifications.
const (
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient data"
)

// Canonical recurring issue labels.
const (
	IssuePain          = "pain/discomfort"
	IssueFatigue       = "fatigue"
	IssueTightness     = "tightness"
	IssueFormBreakdown = "form breakdown"
)

// RestTimes holds average rest between consecutive sets of the same
// exercise, in seconds, overall and per set type. Zero means no usable
// rest gaps were found.
type RestTimes struct {
	AverageSeconds int            `json:"averageSeconds"`
	PerSetType     map[string]int `json:"perSetType"`
}

type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityModerate:
		return 1
	default:
		return 0
	}
}

// LightSession signals that the next session should be a deliberately
// lighter one, with the triggering reasons joined by "; ".
type LightSession struct {
	Suggest  bool     `json:"suggest"`
	Severity Severity `json:"severity"`
	Reason   string   `json:"reason,omitempty"`
}
