package services

import (
	"time"

	"vault-tracker/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	timeService TimeService
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(timeService TimeService) ReportingService {
	return &reportingServiceImpl{
		timeService: timeService,
	}
}

// SummarizeDay groups the trackings that start on day by description. Groups
// keep the order of their first start; open trackings count up to now.
func (r *reportingServiceImpl) SummarizeDay(day time.Time, trackings []domain.Tracking) *DaySummary {
	now := r.timeService.Now()
	summary := &DaySummary{
		Day:    r.timeService.DayRange(day),
		Totals: []DescriptionTotal{},
	}

	index := make(map[string]int)
	var included []domain.Tracking
	for _, tracking := range trackings {
		if !summary.Day.Contains(tracking.StartTime) {
			continue
		}
		included = append(included, tracking)
		duration := tracking.Duration(now)

		i, seen := index[tracking.Description]
		if !seen {
			i = len(summary.Totals)
			index[tracking.Description] = i
			summary.Totals = append(summary.Totals, DescriptionTotal{
				Description: tracking.Description,
				FirstStart:  tracking.StartTime,
			})
		}

		total := &summary.Totals[i]
		total.Duration += duration
		total.Sessions++
		if tracking.StartTime.Before(total.FirstStart) {
			total.FirstStart = tracking.StartTime
		}
		if tracking.IsOpen() {
			total.Running = true
			summary.Running = true
		}

		summary.Sessions++
	}

	summary.Total = r.CalculateTotalDuration(included)
	return summary
}

// CalculateTotalDuration calculates total duration across all trackings
func (r *reportingServiceImpl) CalculateTotalDuration(trackings []domain.Tracking) time.Duration {
	now := r.timeService.Now()
	var totalDuration time.Duration
	for _, tracking := range trackings {
		totalDuration += tracking.Duration(now)
	}
	return totalDuration
}
