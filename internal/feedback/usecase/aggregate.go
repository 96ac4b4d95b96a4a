package usecase

import (
	"sort"

	"polaris-api/internal/feedback"
	"polaris-api/internal/model"
	"polaris-api/pkg/filter"
)

func sentimentTrends(fbs []model.Feedback) []feedback.TrendPoint {
	byDate := make(map[string]*feedback.TrendPoint)
	for _, f := range fbs {
		key := filter.DateKey(f.CreatedAt)
		p, ok := byDate[key]
		if !ok {
			p = &feedback.TrendPoint{Date: key}
			byDate[key] = p
		}
		p.Add(f.Sentiment)
	}

	points := make([]feedback.TrendPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func categoryBreakdown(fbs []model.Feedback) []feedback.CategoryStat {
	byCategory := make(map[string]*feedback.CategoryStat)
	for _, f := range fbs {
		s, ok := byCategory[f.Category]
		if !ok {
			s = &feedback.CategoryStat{Category: f.Category}
			byCategory[f.Category] = s
		}
		s.Total++
		s.Add(f.Sentiment)
	}

	stats := make([]feedback.CategoryStat, 0, len(byCategory))
	for _, s := range byCategory {
		s.Sentiment = dominant(s.SentimentCounts)
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	return stats
}

func dominant(c model.SentimentCounts) model.Sentiment {
	switch {
	case c.Positive > c.Negative:
		return model.SentimentPositive
	case c.Negative > c.Positive:
		return model.SentimentNegative
	}
	return model.SentimentNeutral
}

func departmentAnalytics(fbs []model.Feedback) []feedback.DepartmentStat {
	type acc struct {
		total, positive, negative int
		engagement                float64
	}
	byDept := make(map[string]*acc)
	for _, f := range fbs {
		a, ok := byDept[f.Department]
		if !ok {
			a = &acc{}
			byDept[f.Department] = a
		}
		a.total++
		a.engagement += f.Score
		switch f.Sentiment {
		case model.SentimentPositive:
			a.positive++
		case model.SentimentNegative:
			a.negative++
		}
	}

	stats := make([]feedback.DepartmentStat, 0, len(byDept))
	for dept, a := range byDept {
		n := float64(a.total)
		stats = append(stats, feedback.DepartmentStat{
			Department:    dept,
			TotalFeedback: a.total,
			AvgEngagement: a.engagement / n,
			PositiveRatio: float64(a.positive) / n * 100,
			NegativeRatio: float64(a.negative) / n * 100,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Department < stats[j].Department })
	return stats
}

func summarize(fbs []model.Feedback) feedback.Summary {
	var (
		s   feedback.Summary
		sum float64
	)
	for _, f := range fbs {
		s.Add(f.Sentiment)
		sum += f.Score
	}
	s.Total = s.SentimentCounts.Total()
	if s.Total > 0 {
		s.AverageScore = sum / float64(s.Total)
	}
	return s
}
