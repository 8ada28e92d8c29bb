package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/sessions"
	"github.com/nbilic/liftlog/internal/workout/signals"

	log "github.com/sirupsen/logrus"
)

// BuildPrompt assembles the coaching prompt for a just-finished session:
// the program position, the session's sets, the extracted signal summary,
// the recent history and the exact JSON shape the model must answer with.
func BuildPrompt(
	trainingProgram *program.Program,
	week, day int,
	sets []sessions.SetLog,
	summary signals.Summary,
	history []sessions.HistoryRecord,
) string {
	var sb strings.Builder

	sb.WriteString("You are a strength coach for a single lifter following a fixed ")
	fmt.Fprintf(&sb, "%d-week, %d-day program. ", trainingProgram.Weeks, trainingProgram.Days)
	sb.WriteString("The lifter just finished a session and you suggest the weights for the next one.\n\n")

	fmt.Fprintf(&sb, "Program position: week %d, day %d.\n\n", week, day)

	sb.WriteString("Today's sets:\n")
	for _, set := range sets {
		sb.WriteString(setLine(set))
	}
	if len(sets) == 0 {
		sb.WriteString("(none logged)\n")
	}

	sb.WriteString("\nTraining signals:\n")
	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Errorf("marshal signal summary for advisor prompt: %s", err)
		summaryJSON = []byte("{}")
	}
	sb.Write(summaryJSON)
	sb.WriteString("\n")

	if len(history) > 0 {
		sb.WriteString("\nRecent history, oldest first:\n")
		for _, rec := range history {
			fmt.Fprintf(&sb, "w%d d%d %s", rec.Week, rec.Day, setLine(rec.SetLog))
		}
	}

	sb.WriteString("\nAllowed set types per exercise for this day:\n")
	for _, slot := range trainingProgram.SlotsForDay(day) {
		fmt.Fprintf(&sb, "- %s: %s\n", slot.Exercise, joinSetTypes(slot.SetTypes))
	}

	sb.WriteString(`
Respond with a single JSON object keyed by exercise name. Each entry may
contain "heavy_weight", "backoff_weight", "working_weight" and
"dropset_weight" in kg, plus a short "reason". Omit a weight field entirely
when you recommend no change for it, never send 0 to mean "no change".
Example:
{"bench press": {"heavy_weight": 102.5, "backoff_weight": 85, "reason": "all targets hit at RPE 8"}}
`)

	return sb.String()
}

func setLine(set sessions.SetLog) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "- %s %s: %gkg x %d", set.Exercise, set.SetType, set.ActualWeight, set.ActualReps)
	if set.TargetReps > 0 || set.TargetWeight > 0 {
		fmt.Fprintf(&sb, " (target %gkg x %d)", set.TargetWeight, int(set.TargetReps))
	}
	if set.RPE != nil {
		fmt.Fprintf(&sb, " @RPE %d", *set.RPE)
	}
	if set.Notes != "" {
		fmt.Fprintf(&sb, " [%s]", set.Notes)
	}
	sb.WriteString("\n")
	return sb.String()
}

func joinSetTypes(setTypes []program.SetType) string {
	names := make([]string, 0, len(setTypes))
	for _, st := range setTypes {
		names = append(names, string(st))
	}
	return strings.Join(names, ", ")
}
