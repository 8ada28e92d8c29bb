package events

import (
	"fmt"
	"strconv"
	"time"
)

type BodyweightReport struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kilos     float64   `json:"kilos"`
}

type PainReport struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     int       `json:"level"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes,omitempty"`
}

// Event (DB level type) is one report sent from the logging app, such as:
//   - bodyweight report (with timestamp and weight in kilos)
//   - pain report (with timestamp, pain level, pain location, notes)
type Event struct {
	ID        int               `json:"id"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

func NewBodyweightReportEvent(br BodyweightReport) Event {
	return Event{
		ID:        br.ID,
		Type:      EventTypeBodyweightReport,
		Timestamp: br.Timestamp,
		Data: map[string]string{
			"kilos": strconv.FormatFloat(br.Kilos, 'f', -1, 64),
		},
	}
}

func NewPainReportEvent(pr PainReport) Event {
	return Event{
		ID:        pr.ID,
		Type:      EventTypePainReport,
		Timestamp: pr.Timestamp,
		Data: map[string]string{
			"level":    fmt.Sprintf("%d", pr.Level),
			"location": pr.Location,
			"notes":    pr.Notes,
		},
	}
}

// PainDescription renders a stored pain report's data into the one-line
// form fed to the training signal extractor.
func PainDescription(data map[string]string) string {
	desc := fmt.Sprintf("%s pain (level %s)", data["location"], data["level"])
	if notes := data["notes"]; notes != "" {
		desc += ": " + notes
	}
	return desc
}

// EventType can be one of:
//   - bodyweight_report
//   - pain_report
type EventType string

const (
	EventTypeBodyweightReport EventType = "bodyweight_report"
	EventTypePainReport       EventType = "pain_report"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeBodyweightReport,
		EventTypePainReport:
		return true
	default:
		return false
	}
}
