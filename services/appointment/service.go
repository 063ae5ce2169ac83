package appointment

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "garagedesk/database/repository/appointment"
	"garagedesk/models"
	"garagedesk/services/scheduling"
	"garagedesk/services/technician"
	"garagedesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultService is the production appointment workflow: pure scheduling
// decisions from the Calendar, persistence through the repository, with the
// conflict check re-run inside the storage transaction so a concurrent
// booking cannot slip between check and write.
type DefaultService struct {
	Repo      appointmentRepo.AppointmentRepository
	Directory *technician.Directory
	Calendar  *scheduling.Calendar
}

func (s *DefaultService) Save(ctx context.Context, candidate models.Appointment) ([]models.Appointment, error) {
	return s.save(ctx, candidate, nil)
}

func (s *DefaultService) Update(ctx context.Context, id string, candidate models.Appointment) ([]models.Appointment, error) {
	stored, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Carry identity over so the conflict walk excludes the job's own
	// segments, and collect every sibling for replacement.
	candidate.ID = stored.ID
	candidate.RolloverGroupID = stored.RolloverGroupID
	candidate.CreatedAt = stored.CreatedAt

	removeIDs := []string{stored.ID}
	if stored.RolloverGroupID != "" {
		siblings, err := s.Repo.GetByRolloverGroup(ctx, stored.RolloverGroupID)
		if err != nil {
			return nil, err
		}
		removeIDs = removeIDs[:0]
		for _, sib := range siblings {
			removeIDs = append(removeIDs, sib.ID)
		}
	}

	return s.save(ctx, candidate, removeIDs)
}

// save plans, checks and persists one logical job. removeIDs lists segment
// ids being replaced on edit; nil means a fresh booking.
func (s *DefaultService) save(ctx context.Context, candidate models.Appointment, removeIDs []string) ([]models.Appointment, error) {
	logger := utils.GetLogger()

	resolved, err := s.Directory.Resolve(ctx, candidate.Technician)
	if err != nil {
		return nil, fmt.Errorf("resolving technician: %w", err)
	}
	candidate.Technician = resolved

	segments, res, err := s.Calendar.PlanSegmentsChecked(ctx, candidate, s.Repo.GetByDate)
	if err != nil {
		return nil, err
	}
	if res.Conflict {
		return nil, &ConflictError{With: res.With}
	}

	now := time.Now()
	groupID := candidate.RolloverGroupID
	if len(segments) > 1 && groupID == "" {
		groupID = uuid.New().String()
	}
	for i := range segments {
		segments[i].ID = uuid.New().String()
		if len(segments) > 1 {
			segments[i].RolloverGroupID = groupID
		} else {
			segments[i].RolloverGroupID = ""
			segments[i].Segment = 0
		}
		if segments[i].CreatedAt.IsZero() {
			segments[i].CreatedAt = now
		}
		segments[i].UpdatedAt = now
	}

	// The verify step re-runs the overlap check against the transactional
	// snapshot. The old segments are already deleted inside the
	// transaction, so an unmodified edit still passes.
	verify := func(txCtx context.Context) error {
		for _, seg := range segments {
			existing, err := s.Repo.GetByDate(txCtx, seg.Date)
			if err != nil {
				return err
			}
			res, err := s.Calendar.HasConflict(seg, existing)
			if err != nil {
				return err
			}
			if res.Conflict {
				return &ConflictError{With: res.With}
			}
		}
		return nil
	}

	if err := s.Repo.ReplaceJob(ctx, removeIDs, segments, verify); err != nil {
		return nil, err
	}

	logger.Info("Appointment saved",
		zap.String("date", candidate.Date),
		zap.Int("startSlot", candidate.StartSlot),
		zap.Int("durationSlots", candidate.DurationSlots),
		zap.Int("segments", len(segments)),
		zap.String("technician", candidate.Technician.Name),
	)
	return segments, nil
}

func (s *DefaultService) Delete(ctx context.Context, id string) error {
	stored, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	removeIDs := []string{stored.ID}
	if stored.RolloverGroupID != "" {
		siblings, err := s.Repo.GetByRolloverGroup(ctx, stored.RolloverGroupID)
		if err != nil {
			return err
		}
		removeIDs = removeIDs[:0]
		for _, sib := range siblings {
			removeIDs = append(removeIDs, sib.ID)
		}
	}
	return s.Repo.ReplaceJob(ctx, removeIDs, nil, nil)
}

func (s *DefaultService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Repo.GetByID(ctx, id)
}

// Day builds the calendar page payload. Spans come from the same
// ComputeSpan the conflict check uses, so what the client draws is exactly
// what the engine reserved.
func (s *DefaultService) Day(ctx context.Context, date string) (*DayView, error) {
	parsed, err := scheduling.ParseDate(date)
	if err != nil {
		return nil, err
	}

	appts, err := s.Repo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	table := s.Calendar.Table
	view := &DayView{
		Date:       date,
		WorkingDay: s.Calendar.IsWorkingDay(parsed),
		Slots:      make([]string, table.Rows()),
	}
	for i := 0; i < table.Rows(); i++ {
		label, err := table.SlotLabel(i)
		if err != nil {
			return nil, err
		}
		view.Slots[i] = label
	}

	for _, a := range appts {
		span, err := table.ComputeSpan(a.StartSlot, a.DurationSlots)
		if err != nil {
			utils.GetLogger().Warn("Skipping appointment with invalid span",
				zap.String("id", a.ID), zap.Error(err))
			continue
		}
		view.Appointments = append(view.Appointments, RenderedAppointment{
			Appointment:   a,
			SlotsConsumed: span.SlotsConsumed,
			EndSlot:       span.EndSlot,
			TimeRange:     s.timeRange(a.StartSlot, span.EndSlot),
		})
	}
	return view, nil
}

// timeRange renders "09:00 - 12:00" style labels for an occupied row range.
func (s *DefaultService) timeRange(start, end int) string {
	table := s.Calendar.Table
	from, err := table.SlotLabel(start)
	if err != nil {
		return ""
	}
	last := end
	if last >= table.Rows() {
		last = table.Rows() - 1
	}
	to, err := table.SlotLabel(last)
	if err != nil || to == scheduling.LunchLabel {
		if to == scheduling.LunchLabel {
			if l, err := table.SlotLabel(last - 1); err == nil {
				return from + " - " + l
			}
		}
		return from
	}
	return from + " - " + to
}

func (s *DefaultService) History(ctx context.Context, vehicleReg string) ([]models.Appointment, error) {
	return s.Repo.GetByVehicleReg(ctx, vehicleReg)
}
