package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	appointmentRepo "garagedesk/database/repository/appointment"
	reportRepo "garagedesk/database/repository/report"
	"garagedesk/models"
	"garagedesk/services/scheduling"
	"garagedesk/services/technician"
)

// Service aggregates appointment data for the hours and analytics pages.
type Service struct {
	Repo      appointmentRepo.AppointmentRepository
	Rollups   reportRepo.RollupRepository
	Directory *technician.Directory
}

// TechnicianHours sums completed task time per technician over an inclusive
// date range. Task attribution may be a directory id or a legacy name; ids
// are mapped back to display names through the directory.
func (s *Service) TechnicianHours(ctx context.Context, from, to string) ([]models.TechnicianHours, error) {
	appts, err := s.Repo.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	if s.Directory != nil {
		if techs, err := s.Directory.List(ctx); err == nil {
			for _, t := range techs {
				names[t.ID] = t.Name
			}
		}
	}

	minutes := map[string]int{}
	for _, a := range appts {
		for _, task := range a.Details.Tasks {
			if !task.Completed {
				continue
			}
			key := task.CompletedBy
			if task.CompletedByID != "" {
				if name, ok := names[task.CompletedByID]; ok {
					key = name
				}
			}
			if key == "" {
				continue
			}
			minutes[key] += task.TimeSpent
		}
	}

	out := make([]models.TechnicianHours, 0, len(minutes))
	for tech, mins := range minutes {
		out = append(out, models.TechnicianHours{
			Technician: tech,
			Hours:      mins / 60,
			Minutes:    mins % 60,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Technician < out[j].Technician })
	return out, nil
}

// matchesTechnician applies the analytics filter: empty matches everything,
// otherwise the appointment's technician or any task attribution must match
// by id or name.
func matchesTechnician(a models.Appointment, filter models.TechnicianRef) bool {
	if filter.IsZero() {
		return true
	}
	if scheduling.SameTechnician(a.Technician, filter) {
		return true
	}
	for _, task := range a.Details.Tasks {
		if filter.ID != "" && task.CompletedByID == filter.ID {
			return true
		}
		if filter.Name != "" && task.CompletedBy == filter.Name {
			return true
		}
	}
	return false
}

// Analytics builds the dashboard summary: booked minutes per day within the
// range plus trailing appointment counts relative to now.
func (s *Service) Analytics(ctx context.Context, from, to string, filter models.TechnicianRef, now time.Time) (*models.AnalyticsSummary, error) {
	fromDate, err := scheduling.ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := scheduling.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("analytics range ends before it starts: %s > %s", from, to)
	}

	appts, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	daily := map[string]int{}
	for d := fromDate; !d.After(toDate); d = d.AddDate(0, 0, 1) {
		daily[scheduling.FormatDate(d)] = 0
	}

	summary := &models.AnalyticsSummary{}
	const slotMinutes = 30

	for _, a := range appts {
		if !matchesTechnician(a, filter) {
			continue
		}
		date, err := scheduling.ParseDate(a.Date)
		if err != nil {
			continue // legacy records with unparseable dates stay out of the charts
		}

		if !date.Before(fromDate) && !date.After(toDate) {
			summary.Appointments++
			daily[a.Date] += a.DurationSlots * slotMinutes
			for _, task := range a.Details.Tasks {
				if task.Completed {
					summary.TotalMinutes += task.TimeSpent
				}
			}
		}

		age := now.Sub(date)
		if age >= 0 {
			if age <= 7*24*time.Hour {
				summary.Week++
			}
			if age <= 30*24*time.Hour {
				summary.Month++
			}
			if age <= 365*24*time.Hour {
				summary.Year++
			}
		}
	}

	for d := fromDate; !d.After(toDate); d = d.AddDate(0, 0, 1) {
		key := scheduling.FormatDate(d)
		summary.Daily = append(summary.Daily, models.DailyWorkload{Date: key, Minutes: daily[key]})
	}
	return summary, nil
}

// RollupDay recomputes and stores the per-technician hours rollup for one
// date. The nightly worker calls this for yesterday; it is also safe to
// re-run for any historical date.
func (s *Service) RollupDay(ctx context.Context, date string) error {
	hours, err := s.TechnicianHours(ctx, date, date)
	if err != nil {
		return err
	}
	for _, h := range hours {
		rollup := models.DailyHoursRollup{
			Date:       date,
			Technician: h.Technician,
			Minutes:    h.Hours*60 + h.Minutes,
		}
		if err := s.Rollups.Upsert(ctx, rollup); err != nil {
			return err
		}
	}
	return nil
}
