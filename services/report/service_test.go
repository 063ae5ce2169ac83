package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"garagedesk/models"
	"garagedesk/services/technician"
)

// fakeApptStore serves the report queries from a fixed slice.
type fakeApptStore struct {
	appts []models.Appointment
}

func (r *fakeApptStore) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for _, a := range r.appts {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (r *fakeApptStore) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApptStore) GetByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date >= from && a.Date <= to {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApptStore) GetByRolloverGroup(ctx context.Context, groupID string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeApptStore) GetByVehicleReg(ctx context.Context, reg string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeApptStore) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return r.appts, nil
}

func (r *fakeApptStore) Create(ctx context.Context, appt *models.Appointment) error { return nil }

func (r *fakeApptStore) Update(ctx context.Context, id string, appt *models.Appointment) error {
	return nil
}

func (r *fakeApptStore) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeApptStore) ReplaceJob(ctx context.Context, removeIDs []string, segments []models.Appointment, verify func(ctx context.Context) error) error {
	return nil
}

// fakeRollupStore records upserts keyed by date and technician.
type fakeRollupStore struct {
	rows map[string]models.DailyHoursRollup
}

func (r *fakeRollupStore) Upsert(ctx context.Context, rollup models.DailyHoursRollup) error {
	if r.rows == nil {
		r.rows = map[string]models.DailyHoursRollup{}
	}
	r.rows[rollup.Date+"/"+rollup.Technician] = rollup
	return nil
}

func (r *fakeRollupStore) GetRange(ctx context.Context, from, to string) ([]models.DailyHoursRollup, error) {
	var out []models.DailyHoursRollup
	for _, row := range r.rows {
		if row.Date >= from && row.Date <= to {
			out = append(out, row)
		}
	}
	return out, nil
}

// fakeRoster is a minimal TechnicianRepository for the directory.
type fakeRoster struct {
	techs []models.Technician
}

func (r *fakeRoster) List(ctx context.Context) ([]models.Technician, error) { return r.techs, nil }

func (r *fakeRoster) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	for _, t := range r.techs {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("technician not found")
}

func (r *fakeRoster) GetByName(ctx context.Context, name string) (*models.Technician, error) {
	for _, t := range r.techs {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("technician not found")
}

func (r *fakeRoster) Create(ctx context.Context, tech *models.Technician) error { return nil }

func (r *fakeRoster) Update(ctx context.Context, id string, tech *models.Technician) error {
	return nil
}

func (r *fakeRoster) Delete(ctx context.Context, id string) error { return nil }

func worked(date, completedBy, completedByID string, minutes int) models.Appointment {
	return models.Appointment{
		Date:          date,
		DurationSlots: 2,
		Details: models.AppointmentDetails{
			Tasks: []models.Task{
				{Text: "service", Completed: true, CompletedBy: completedBy, CompletedByID: completedByID, TimeSpent: minutes},
				{Text: "pending", Completed: false, CompletedBy: completedBy, TimeSpent: 999},
			},
		},
	}
}

func newReportService(appts []models.Appointment) (*Service, *fakeRollupStore) {
	rollups := &fakeRollupStore{}
	roster := &fakeRoster{techs: []models.Technician{
		{ID: "t-1", Name: "Paddy"},
		{ID: "t-2", Name: "Sean"},
	}}
	svc := &Service{
		Repo:      &fakeApptStore{appts: appts},
		Rollups:   rollups,
		Directory: technician.NewDirectory(roster, nil, time.Minute),
	}
	return svc, rollups
}

func TestTechnicianHours(t *testing.T) {
	svc, _ := newReportService([]models.Appointment{
		worked("2026-09-01", "Paddy", "", 90),
		worked("2026-09-02", "", "t-1", 45), // id attribution maps back to Paddy
		worked("2026-09-02", "Sean", "", 30),
		worked("2026-10-01", "Paddy", "", 600), // outside the range
	})

	hours, err := svc.TechnicianHours(context.Background(), "2026-09-01", "2026-09-30")
	if err != nil {
		t.Fatal(err)
	}
	if len(hours) != 2 {
		t.Fatalf("want 2 technicians, got %d", len(hours))
	}
	// Sorted by name: Paddy before Sean.
	if hours[0].Technician != "Paddy" || hours[0].Hours != 2 || hours[0].Minutes != 15 {
		t.Errorf("Paddy: want 2h15m, got %+v", hours[0])
	}
	if hours[1].Technician != "Sean" || hours[1].Hours != 0 || hours[1].Minutes != 30 {
		t.Errorf("Sean: want 0h30m, got %+v", hours[1])
	}
}

func TestTechnicianHours_IgnoresUnattributedTasks(t *testing.T) {
	svc, _ := newReportService([]models.Appointment{
		worked("2026-09-01", "", "", 60),
	})

	hours, err := svc.TechnicianHours(context.Background(), "2026-09-01", "2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(hours) != 0 {
		t.Errorf("unattributed tasks must not produce rows, got %+v", hours)
	}
}

func TestAnalytics(t *testing.T) {
	now := time.Date(2026, time.September, 4, 12, 0, 0, 0, time.UTC)
	svc, _ := newReportService([]models.Appointment{
		worked("2026-09-01", "Paddy", "", 90), // in range, 3 days old
		worked("2026-09-03", "Sean", "", 30),  // in range, 1 day old
		worked("2026-08-01", "Paddy", "", 60), // out of range, 34 days old
		worked("2025-06-01", "Paddy", "", 60), // out of range, over a year old
	})

	sum, err := svc.Analytics(context.Background(), "2026-09-01", "2026-09-03", models.TechnicianRef{}, now)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Appointments != 2 {
		t.Errorf("appointments in range: want 2, got %d", sum.Appointments)
	}
	if sum.TotalMinutes != 120 {
		t.Errorf("completed minutes in range: want 120, got %d", sum.TotalMinutes)
	}
	if sum.Week != 2 || sum.Month != 2 || sum.Year != 3 {
		t.Errorf("trailing counts: want 2/2/3, got %d/%d/%d", sum.Week, sum.Month, sum.Year)
	}
	if len(sum.Daily) != 3 {
		t.Fatalf("daily series should cover each day of the range, got %d entries", len(sum.Daily))
	}
	// Each appointment books DurationSlots*30 minutes on its day.
	wantDaily := map[string]int{"2026-09-01": 60, "2026-09-02": 0, "2026-09-03": 60}
	for _, d := range sum.Daily {
		if d.Minutes != wantDaily[d.Date] {
			t.Errorf("daily %s: want %d minutes, got %d", d.Date, wantDaily[d.Date], d.Minutes)
		}
	}
}

func TestAnalytics_TechnicianFilter(t *testing.T) {
	now := time.Date(2026, time.September, 4, 12, 0, 0, 0, time.UTC)
	paddy := worked("2026-09-01", "Paddy", "", 90)
	paddy.Technician = models.TechnicianRef{ID: "t-1", Name: "Paddy"}
	sean := worked("2026-09-02", "Sean", "", 30)
	sean.Technician = models.TechnicianRef{ID: "t-2", Name: "Sean"}
	svc, _ := newReportService([]models.Appointment{paddy, sean})

	sum, err := svc.Analytics(context.Background(), "2026-09-01", "2026-09-02", models.TechnicianRef{ID: "t-1"}, now)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Appointments != 1 {
		t.Errorf("filter by id: want 1 appointment, got %d", sum.Appointments)
	}
	if sum.TotalMinutes != 90 {
		t.Errorf("filter by id: want 90 minutes, got %d", sum.TotalMinutes)
	}
}

func TestAnalytics_RejectsInvertedRange(t *testing.T) {
	svc, _ := newReportService(nil)
	_, err := svc.Analytics(context.Background(), "2026-09-03", "2026-09-01", models.TechnicianRef{}, time.Now())
	if err == nil {
		t.Error("inverted range must be rejected")
	}
}

func TestRollupDay(t *testing.T) {
	svc, rollups := newReportService([]models.Appointment{
		worked("2026-09-01", "Paddy", "", 90),
		worked("2026-09-01", "Sean", "", 30),
		worked("2026-09-02", "Paddy", "", 45), // different day, not rolled up
	})

	if err := svc.RollupDay(context.Background(), "2026-09-01"); err != nil {
		t.Fatal(err)
	}
	if len(rollups.rows) != 2 {
		t.Fatalf("want 2 rollup rows, got %d", len(rollups.rows))
	}
	if got := rollups.rows["2026-09-01/Paddy"].Minutes; got != 90 {
		t.Errorf("Paddy rollup: want 90 minutes, got %d", got)
	}
	if got := rollups.rows["2026-09-01/Sean"].Minutes; got != 30 {
		t.Errorf("Sean rollup: want 30 minutes, got %d", got)
	}
}
