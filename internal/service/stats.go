package service

import (
	"cmp"
	"context"
	"slices"
	"time"
)

const (
	xpPerMeal        = 10
	xpPerLevel       = 100
	streakBonusDays  = 3
	streakBonusPoint = 50
)

type Stats struct {
	Level         int `json:"level"`
	CurrentXP     int `json:"currentXP"`
	XPToNextLevel int `json:"xpToNextLevel"`
	TotalXP       int `json:"totalXP"`
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	MealsLogged   int `json:"mealsLogged"`
	DaysActive    int `json:"daysActive"`
}

func (s *Service) Stats(ctx context.Context, userID int64) (Stats, error) {
	times, err := s.store.MealTimes(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return computeStats(times, s.now(), s.loc), nil
}

type day struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time, loc *time.Location) day {
	t = t.In(loc)
	return day{t.Year(), t.Month(), t.Day()}
}

func (d day) next() day {
	t := time.Date(d.year, d.month, d.day+1, 0, 0, 0, 0, time.UTC)
	return day{t.Year(), t.Month(), t.Day()}
}

// computeStats derives streaks and XP from meal times. A streak is a run
// of consecutive calendar days with at least one meal; the current streak
// counts only when its last day is today or yesterday.
func computeStats(times []time.Time, now time.Time, loc *time.Location) Stats {
	st := Stats{MealsLogged: len(times)}

	var days []day
	seen := make(map[day]struct{}, len(times))
	for _, t := range times {
		d := dayOf(t, loc)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sortDays(days)
	st.DaysActive = len(days)

	run := 0
	for i, d := range days {
		if i > 0 && days[i-1].next() == d {
			run++
		} else {
			run = 1
		}
		st.LongestStreak = max(st.LongestStreak, run)
	}

	if len(days) > 0 {
		today := dayOf(now, loc)
		last := days[len(days)-1]
		if last == today || last.next() == today {
			st.CurrentStreak = run
		}
	}

	st.TotalXP = st.MealsLogged*xpPerMeal + (st.CurrentStreak/streakBonusDays)*streakBonusPoint
	st.Level = st.TotalXP/xpPerLevel + 1
	st.CurrentXP = st.TotalXP % xpPerLevel
	st.XPToNextLevel = xpPerLevel - st.CurrentXP
	return st
}

func sortDays(days []day) {
	slices.SortFunc(days, func(a, b day) int {
		return cmp.Or(
			cmp.Compare(a.year, b.year),
			cmp.Compare(a.month, b.month),
			cmp.Compare(a.day, b.day),
		)
	})
}
