package signals

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/sessions"
)

const (
	// rest gaps outside this window are noise (superset churn below,
	// a paused session above) and are excluded
	minRestGap = 30 * time.Second
	maxRestGap = 600 * time.Second

	// light session triggers are not evaluated on a shallower history
	minHistoryDepth = 6

	stagnationSpreadRatio = 0.02
	regressionRatio       = 0.10
	maxEffortSetsRatio    = 0.70
	volumeTrendPct        = 5.0
)

// ExtractSummary computes the training signals for one finished session.
// The history is expected in chronological order (it normally already
// contains the session's own sets); extraNotes carries free text from
// outside the set logs, e.g. session notes and recent pain reports. Sparse
// or empty input degrades to explicit "no data" values, never to an error.
func ExtractSummary(sets []sessions.SetLog, history []sessions.HistoryRecord, extraNotes []string) Summary {
	summary := Summary{
		AverageRPE:        averageRPE(sets),
		TargetHitRate:     targetHitRate(sets),
		WeeklyVolumeTrend: weeklyVolumeTrend(history),
		RestTimes:         restTimes(sets),
		RecurringIssues:   recurringIssues(sets, history, extraNotes),
	}
	summary.LightSession = lightSession(history, summary.RecurringIssues)
	return summary
}

func averageRPE(sets []sessions.SetLog) *float64 {
	var sum, count float64
	for _, set := range sets {
		if set.RPE == nil {
			continue
		}
		sum += float64(*set.RPE)
		count++
	}
	if count == 0 {
		return nil
	}
	avg := math.Round(sum/count*10) / 10
	return &avg
}

func targetHitRate(sets []sessions.SetLog) int {
	var eligible, hits int
	for _, set := range sets {
		if set.TargetReps <= 0 {
			continue
		}
		eligible++
		if set.ActualReps >= int(set.TargetReps) {
			hits++
		}
	}
	if eligible == 0 {
		// no targets means nothing was missed
		return 100
	}
	return int(math.Round(float64(hits) / float64(eligible) * 100))
}

// weekEntry is one contiguous chronological run of records sharing a week
// number. Week numbers are cyclic, so grouping follows week transitions
// instead of a plain map keyed by week.
type weekEntry struct {
	week    int
	tonnage float64
	// index of the first history record belonging to this entry
	firstRecord int
}

func weeklyEntries(history []sessions.HistoryRecord) []weekEntry {
	entries := make([]weekEntry, 0)
	for i, rec := range history {
		if len(entries) == 0 || entries[len(entries)-1].week != rec.Week {
			entries = append(entries, weekEntry{week: rec.Week, firstRecord: i})
		}
		entries[len(entries)-1].tonnage += rec.ActualWeight * float64(rec.ActualReps)
	}
	return entries
}

func weeklyVolumeTrend(history []sessions.HistoryRecord) string {
	entries := weeklyEntries(history)
	if len(entries) < 2 {
		return TrendInsufficientData
	}

	prev := entries[len(entries)-2].tonnage
	last := entries[len(entries)-1].tonnage
	if prev <= 0 {
		return TrendInsufficientData
	}

	changePct := (last - prev) / prev * 100
	switch {
	case changePct >= volumeTrendPct:
		return TrendIncreasing
	case changePct <= -volumeTrendPct:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func restTimes(sets []sessions.SetLog) RestTimes {
	lastCompleted := make(map[string]time.Time)
	typeSums := make(map[program.SetType]float64)
	typeCounts := make(map[program.SetType]int)
	var overallSum float64
	var overallCount int

	for _, set := range sets {
		prev, seen := lastCompleted[set.Exercise]
		lastCompleted[set.Exercise] = set.CompletedAt
		if !seen {
			continue
		}

		gap := set.CompletedAt.Sub(prev)
		if gap < minRestGap || gap > maxRestGap {
			continue
		}

		secs := gap.Seconds()
		overallSum += secs
		overallCount++
		typeSums[set.SetType] += secs
		typeCounts[set.SetType]++
	}

	restTimes := RestTimes{PerSetType: make(map[string]int)}
	if overallCount > 0 {
		restTimes.AverageSeconds = int(math.Round(overallSum / float64(overallCount)))
	}
	for setType, count := range typeCounts {
		restTimes.PerSetType[string(setType)] = int(math.Round(typeSums[setType] / float64(count)))
	}
	return restTimes
}

// issueKeywords maps note substrings to canonical issue labels. Matching is
// case-insensitive; the slice order fixes the output label order.
var issueKeywords = []struct {
	keyword string
	label   string
}{
	{"pain", IssuePain},
	{"hurt", IssuePain},
	{"ache", IssuePain},
	{"sharp", IssuePain},
	{"pinch", IssuePain},
	{"twinge", IssuePain},
	{"injur", IssuePain},
	{"tired", IssueFatigue},
	{"fatigue", IssueFatigue},
	{"exhaust", IssueFatigue},
	{"drained", IssueFatigue},
	{"tight", IssueTightness},
	{"stiff", IssueTightness},
	{"sloppy", IssueFormBreakdown},
	{"form break", IssueFormBreakdown},
	{"technique", IssueFormBreakdown},
}

func recurringIssues(sets []sessions.SetLog, history []sessions.HistoryRecord, extraNotes []string) []string {
	notes := make([]string, 0, len(sets)+len(history)+len(extraNotes))
	for _, set := range sets {
		notes = append(notes, set.Notes)
	}
	for _, rec := range history {
		notes = append(notes, rec.Notes)
	}
	notes = append(notes, extraNotes...)

	issues := make([]string, 0)
	seen := make(map[string]bool)
	for _, note := range notes {
		if note == "" {
			continue
		}
		note = strings.ToLower(note)
		for _, entry := range issueKeywords {
			if seen[entry.label] || !strings.Contains(note, entry.keyword) {
				continue
			}
			seen[entry.label] = true
			issues = append(issues, entry.label)
		}
	}

	sort.Strings(issues)
	return issues
}

type exerciseSetKey struct {
	exercise string
	setType  program.SetType
}

// weeklyWeights tracks, per exercise and set type, the last lifted weight
// of each chronological week run. Warmups are skipped.
func weeklyWeights(history []sessions.HistoryRecord) map[exerciseSetKey][]weekEntry {
	weights := make(map[exerciseSetKey][]weekEntry)
	for _, rec := range history {
		if rec.SetType == program.SetTypeWarmup {
			continue
		}
		key := exerciseSetKey{exercise: rec.Exercise, setType: rec.SetType}
		entries := weights[key]
		if len(entries) == 0 || entries[len(entries)-1].week != rec.Week {
			entries = append(entries, weekEntry{week: rec.Week})
		}
		entries[len(entries)-1].tonnage = rec.ActualWeight
		weights[key] = entries
	}
	return weights
}

func lightSession(history []sessions.HistoryRecord, issues []string) LightSession {
	if len(history) < minHistoryDepth {
		return LightSession{Severity: SeverityNone, Reason: "insufficient data"}
	}

	severity := SeverityNone
	var reasons []string
	raise := func(sev Severity, reason string) {
		reasons = append(reasons, reason)
		if sev.rank() > severity.rank() {
			severity = sev
		}
	}

	weights := weeklyWeights(history)
	keys := make([]exerciseSetKey, 0, len(weights))
	for key := range weights {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].exercise != keys[j].exercise {
			return keys[i].exercise < keys[j].exercise
		}
		return keys[i].setType < keys[j].setType
	})

	for _, key := range keys {
		entries := weights[key]

		if len(entries) >= 3 {
			last3 := entries[len(entries)-3:]
			mn, mx := last3[0].tonnage, last3[0].tonnage
			for _, e := range last3[1:] {
				mn = math.Min(mn, e.tonnage)
				mx = math.Max(mx, e.tonnage)
			}
			if mx > 0 && mx-mn <= stagnationSpreadRatio*mx {
				raise(SeverityModerate, fmt.Sprintf("stagnant weights for %s %s", key.exercise, key.setType))
			}
		}

		if len(entries) >= 2 {
			prev := entries[len(entries)-2].tonnage
			last := entries[len(entries)-1].tonnage
			if prev > 0 && prev-last >= regressionRatio*prev {
				raise(SeverityModerate, fmt.Sprintf("weight regression for %s %s", key.exercise, key.setType))
			}
		}
	}

	// grinding: most sets of the last two weeks at the RPE ceiling
	if entries := weeklyEntries(history); len(entries) > 0 {
		start := entries[len(entries)-1].firstRecord
		if len(entries) >= 2 {
			start = entries[len(entries)-2].firstRecord
		}
		var withRPE, maxEffort int
		for _, rec := range history[start:] {
			if rec.RPE == nil {
				continue
			}
			withRPE++
			if *rec.RPE >= 10 {
				maxEffort++
			}
		}
		if withRPE > 0 && float64(maxEffort)/float64(withRPE) >= maxEffortSetsRatio {
			raise(SeverityHigh, "most recent sets at max effort")
		}
	}

	for _, issue := range issues {
		if issue == IssuePain {
			raise(SeverityHigh, "recurring pain reported")
			break
		}
	}

	return LightSession{
		Suggest:  severity != SeverityNone,
		Severity: severity,
		Reason:   strings.Join(reasons, "; "),
	}
}
