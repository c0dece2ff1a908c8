package report

import (
	"math"
	"time"

	"gestaobikes/locale"
	"gestaobikes/schemas"
)

const LEADS_BY_DAY_WINDOW = 7

type StageCount struct {
	Stage schemas.Stage `json:"stage"`
	Count int           `json:"count"`
}

type StageSummary struct {
	Total  int          `json:"total"`
	Stages []StageCount `json:"stages"`
	// NoStage counts contacts whose stage is empty or not one of the four.
	NoStage        int `json:"no_stage"`
	QualifiedRate  int `json:"qualified_rate"`
	ConversionRate int `json:"conversion_rate"`
}

func (s StageSummary) Count(stage schemas.Stage) int {
	for _, c := range s.Stages {
		if c.Stage == stage {
			return c.Count
		}
	}
	return 0
}

type DayCount struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Leads int    `json:"leads"`
}

// percent rounds half up, like the dashboard always did.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Floor(float64(part)*100/float64(whole) + 0.5))
}

// SummarizeStages buckets contacts by exact stage name. The conversion rate
// divides qualified by initial-contact counts and can exceed 100.
func SummarizeStages(contacts []schemas.Contact) StageSummary {
	counts := map[schemas.Stage]int{}
	noStage := 0
	for _, c := range contacts {
		if stage, ok := schemas.ParseStage(string(c.Stage)); ok {
			counts[stage]++
		} else {
			noStage++
		}
	}

	summary := StageSummary{
		Total:   len(contacts),
		Stages:  make([]StageCount, 0, len(schemas.Stages)),
		NoStage: noStage,
	}
	for _, stage := range schemas.Stages {
		summary.Stages = append(summary.Stages, StageCount{Stage: stage, Count: counts[stage]})
	}

	qualified := counts[schemas.StageQualified]
	initial := counts[schemas.StageInitialContact]

	summary.QualifiedRate = percent(qualified, len(contacts))

	switch {
	case initial > 0:
		summary.ConversionRate = percent(qualified, initial)
	case qualified > 0:
		summary.ConversionRate = 100
	}

	return summary
}

// ContactsInPeriod keeps contacts whose creation date falls in p. Contacts
// with unreadable dates are left out.
func ContactsInPeriod(contacts []schemas.Contact, p Period, loc *time.Location) []schemas.Contact {
	out := []schemas.Contact{}
	for _, c := range contacts {
		created, ok := locale.ParseDate(c.CreatedAt, loc)
		if ok && p.Contains(created) {
			out = append(out, c)
		}
	}
	return out
}

// LeadsByDay counts contacts created on each of the last seven days, today
// included, oldest first. A contact counts for a day only when its stored
// creation string is exactly that day's DD-MM-YYYY.
func LeadsByDay(contacts []schemas.Contact, today time.Time, loc *time.Location) []DayCount {
	byDate := map[string]int{}
	for _, c := range contacts {
		byDate[c.CreatedAt]++
	}

	today = startOfDay(today, loc)
	days := make([]DayCount, 0, LEADS_BY_DAY_WINDOW)
	for i := LEADS_BY_DAY_WINDOW - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := locale.StoreDate(day)
		days = append(days, DayCount{
			Day:   day.Format(locale.DATE_LAYOUT_DAY),
			Date:  key,
			Leads: byDate[key],
		})
	}
	return days
}
