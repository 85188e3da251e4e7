package advisor

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

// CategorySpend is a spending category with its summed debit amount.
type CategorySpend struct {
	Category string
	Total    decimal.Decimal
}

// GoalProgress is a goal's completion percentage toward its target.
type GoalProgress struct {
	Name    string
	Percent decimal.Decimal
}

// Summary condenses the user's financial and emotional state for the
// prompt builder.
type Summary struct {
	TotalBalance  decimal.Decimal
	TopCategories []CategorySpend
	Goals         []GoalProgress
	DominantMood  domain.Mood
}

// moodWindow is how many recent journal entries feed the dominant mood.
const moodWindow = 5

// Summarize computes the context bundle handed to the generator: total
// balance across accounts, top three spending categories by summed debit
// amount, per-goal progress, and the dominant recent mood.
func Summarize(accounts []domain.Account, transactions []domain.Transaction, goals []domain.SavingGoal, entries []domain.JournalEntry) Summary {
	s := Summary{TotalBalance: decimal.Zero}

	for _, a := range accounts {
		s.TotalBalance = s.TotalBalance.Add(a.Balance)
	}

	s.TopCategories = topSpendingCategories(transactions, 3)
	for _, g := range goals {
		s.Goals = append(s.Goals, GoalProgress{Name: g.Name, Percent: progressPercent(g)})
	}
	s.DominantMood = dominantMood(entries)
	return s
}

// topSpendingCategories sums debit amounts per category and returns the
// largest n. The sort is stable so categories tied on total keep their
// first-seen order.
func topSpendingCategories(transactions []domain.Transaction, n int) []CategorySpend {
	totals := map[string]decimal.Decimal{}
	order := []string{}
	for _, t := range transactions {
		if t.Type != domain.TransactionDebit || t.Category == nil || *t.Category == "" {
			continue
		}
		if _, seen := totals[*t.Category]; !seen {
			order = append(order, *t.Category)
		}
		totals[*t.Category] = totals[*t.Category].Add(t.Amount)
	}

	spends := make([]CategorySpend, 0, len(order))
	for _, c := range order {
		spends = append(spends, CategorySpend{Category: c, Total: totals[c]})
	}
	sort.SliceStable(spends, func(i, j int) bool {
		return spends[i].Total.GreaterThan(spends[j].Total)
	})
	if len(spends) > n {
		spends = spends[:n]
	}
	return spends
}

func progressPercent(g domain.SavingGoal) decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(1)
}

// dominantMood is the mode of the moods in the last moodWindow entries
// (entries arrive newest first). Ties go to the mood encountered first.
func dominantMood(entries []domain.JournalEntry) domain.Mood {
	if len(entries) == 0 {
		return domain.MoodNeutral
	}
	window := entries
	if len(window) > moodWindow {
		window = window[:moodWindow]
	}

	counts := map[domain.Mood]int{}
	order := []domain.Mood{}
	for _, e := range window {
		if _, seen := counts[e.Mood]; !seen {
			order = append(order, e.Mood)
		}
		counts[e.Mood]++
	}

	best := order[0]
	for _, m := range order[1:] {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best
}
