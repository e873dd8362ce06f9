package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"surfcast/internal/events"
	"surfcast/internal/lock"
)

type Service interface {
	ListSchools(ctx context.Context, page Page) ([]SurfSchool, error)
	GetSchool(ctx context.Context, id uint) (*SurfSchool, error)
	CreateSchool(ctx context.Context, in SchoolInput) (*SurfSchool, error)
	UpdateSchool(ctx context.Context, id uint, in SchoolUpdate) (*SurfSchool, error)
	DeleteSchool(ctx context.Context, id uint) error

	ListInstructors(ctx context.Context, page Page) ([]Instructor, error)
	GetInstructor(ctx context.Context, id uint) (*Instructor, error)
	CreateInstructor(ctx context.Context, in InstructorInput) (*Instructor, error)
	UpdateInstructor(ctx context.Context, id uint, in InstructorUpdate) (*Instructor, error)
	DeleteInstructor(ctx context.Context, id uint) error

	ListLessons(ctx context.Context, page Page) ([]Lesson, error)
	GetLesson(ctx context.Context, id uint) (*Lesson, error)
	CreateLesson(ctx context.Context, in LessonInput) (*Lesson, error)
	UpdateLesson(ctx context.Context, id uint, in LessonUpdate) (*Lesson, error)
	DeleteLesson(ctx context.Context, id uint) error

	ListSchedules(ctx context.Context, page Page) ([]Schedule, error)
	GetSchedule(ctx context.Context, id uint) (*Schedule, error)
	CreateSchedule(ctx context.Context, in ScheduleInput) (*Schedule, error)
	UpdateSchedule(ctx context.Context, id uint, in ScheduleUpdate) (*Schedule, error)
	DeleteSchedule(ctx context.Context, id uint) error

	// CreateBooking books a schedule and marks it unavailable
	CreateBooking(ctx context.Context, in BookingInput) (*Booking, error)
	GetBooking(ctx context.Context, id uint) (*Booking, error)
	// CancelBooking cancels a booking and reopens its schedule
	CancelBooking(ctx context.Context, id uint) (*Booking, error)
}

type bookingService struct {
	uow       *UnitOfWork
	locker    lock.Locker
	publisher events.Publisher
	logger    *slog.Logger
}

func NewBookingService(uow *UnitOfWork, locker lock.Locker, publisher events.Publisher, logger *slog.Logger) Service {
	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &bookingService{
		uow:       uow,
		locker:    locker,
		publisher: publisher,
		logger:    logger.With("component", "booking-service"),
	}
}

// Schools

func (s *bookingService) ListSchools(ctx context.Context, page Page) ([]SurfSchool, error) {
	var out []SurfSchool
	err := s.uow.Do(ctx, func(repo *Repository) (err error) {
		out, err = repo.ListSchools(page)
		return err
	})
	return out, err
}

func (s *bookingService) GetSchool(ctx context.Context, id uint) (*SurfSchool, error) {
	var out *SurfSchool
	err := s.uow.Do(ctx, func(repo *Repository) (err error) {
		out, err = repo.GetSchool(id)
		return err
	})
	return out, err
}

func (s *bookingService) CreateSchool(ctx context.Context, in SchoolInput) (*SurfSchool, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	school := &SurfSchool{
		Name:        in.Name,
		Location:    in.Location,
		Description: in.Description,
		Rating:      in.Rating,
	}
	if err := s.uow.Do(ctx, func(repo *Repository) error { return repo.CreateSchool(school) }); err != nil {
		return nil, err
	}
	return school, nil
}

func (s *bookingService) UpdateSchool(ctx context.Context, id uint, in SchoolUpdate) (*SurfSchool, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var out *SurfSchool
	err := s.uow.Do(ctx, func(repo *Repository) error {
		school, err := repo.GetSchool(id)
		if err != nil {
			return err
		}
		setIf(&school.Name, in.Name)
		setIf(&school.Location, in.Location)
		if in.Description != nil {
			school.Description = in.Description
		}
		setIf(&school.Rating, in.Rating)
		out = school
		return repo.SaveSchool(school)
	})
	return out, err
}

func (s *bookingService) DeleteSchool(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(repo *Repository) error { return repo.DeleteSchool(id) })
}

// Instructors

func (s *bookingService) ListInstructors(ctx context.Context, page Page) ([]Instructor, error) {
	var out []Instructor
	err := s.uow.Do(ctx, func(repo *Repository) (err error) {
		out, err = repo.ListInstructors(page)
		return err
	})
	return out, err
}

func (s *bookingService) GetInstructor(ctx context.Context, id uint) (*Instructor, error) {
	var out *Instructor
	err := s.uow.Do(ctx, func(repo *Repository) (err error) {
		out, err = repo.GetInstructor(id)
		return err
	})
	return out, err
}

func (s *bookingService) CreateInstructor(ctx context.Context, in InstructorInput) (*Instructor, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	instructor := &Instructor{
		Name:            in.Name,
		ExperienceYears: *in.ExperienceYears,
		SchoolID:        in.SchoolID,
	}
	err := s.uow.Do(ctx, func(repo *Repository) error {
		if err := requireRef(repo.SchoolExists, "school", instructor.SchoolID); err != nil {
			return err
		}
		return repo.CreateInstructor(instructor)
	})
	if err != nil {
		return nil, err
	}
	return instructor, nil
}

func (s *bookingService) UpdateInstructor(ctx context.Context, id uint, in InstructorUpdate) (*Instructor, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var out *Instructor
	err := s.uow.Do(ctx, func(repo *Repository) error {
		instructor, err := repo.GetInstructor(id)
		if err != nil {
			return err
		}
		setIf(&instructor.Name, in.Name)
		setIf(&instructor.ExperienceYears, in.ExperienceYears)
		if in.SchoolID != nil {
			if err := requireRef(repo.SchoolExists, "school", *in.SchoolID); err != nil {
				return err
			}
			instructor.SchoolID = *in.SchoolID
		}
		out = instructor
		return repo.SaveInstructor(instructor)
	})
	return out, err
}

func (s *bookingService) DeleteInstructor(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(repo *Repository) error { return repo.DeleteInstructor(id) })
}

// Lessons

func (s *bookingService) ListLessons(ctx context.Context, page Page) ([]Lesson, error) {
	var out []Lesson
	err := s.uow.Do(ctx, func(repo *Repository) (err error) {
		out, err = repo.ListLessons(page)
		return err
	})
	return out, err
}

func (s *bookingService) GetLesson(ctx context.Context, id uint) (*Lesson, error) {
	var out *Lesson
	err := s.uow.Do(ctx, func(repo *Repository) (err error) {
		out, err = repo.GetLesson(id)
		return err
	})
	return out, err
}

func (s *bookingService) CreateLesson(ctx context.Context, in LessonInput) (*Lesson, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	lesson := &Lesson{
		SchoolID:        in.SchoolID,
		InstructorID:    in.InstructorID,
		Level:           in.Level,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
	}
	err := s.uow.Do(ctx, func(repo *Repository) error {
		if err := requireRef(repo.SchoolExists, "school", lesson.SchoolID); err != nil {
			return err
		}
		if err := requireRef(repo.InstructorExists, "instructor", lesson.InstructorID); err != nil {
			return err
		}
		return repo.CreateLesson(lesson)
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *bookingService) UpdateLesson(ctx context.Context, id uint, in LessonUpdate) (*Lesson, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var out *Lesson
	err := s.uow.Do(ctx, func(repo *Repository) error {
		lesson, err := repo.GetLesson(id)
		if err != nil {
			return err
		}
		if in.SchoolID != nil {
			if err := requireRef(repo.SchoolExists, "school", *in.SchoolID); err != nil {
				return err
			}
			lesson.SchoolID = *in.SchoolID
		}
		if in.InstructorID != nil {
			if err := requireRef(repo.InstructorExists, "instructor", *in.InstructorID); err != nil {
				return err
			}
			lesson.InstructorID = *in.InstructorID
		}
		setIf(&lesson.Level, in.Level)
		setIf(&lesson.DurationMinutes, in.DurationMinutes)
		setIf(&lesson.Price, in.Price)
		out = lesson
		return repo.SaveLesson(lesson)
	})
	return out, err
}

func (s *bookingService) DeleteLesson(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(repo *Repository) error { return repo.DeleteLesson(id) })
}

// Schedules

func (s *bookingService) ListSchedules(ctx context.Context, page Page) ([]Schedule, error) {
	var out []Schedule
	err := s.uow.Do(ctx, func(repo *Repository) (err error) {
		out, err = repo.ListSchedules(page)
		return err
	})
	return out, err
}

func (s *bookingService) GetSchedule(ctx context.Context, id uint) (*Schedule, error) {
	var out *Schedule
	err := s.uow.Do(ctx, func(repo *Repository) (err error) {
		out, err = repo.GetSchedule(id)
		return err
	})
	return out, err
}

func (s *bookingService) CreateSchedule(ctx context.Context, in ScheduleInput) (*Schedule, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	schedule := &Schedule{
		LessonID:  in.LessonID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Available: true,
	}
	if in.Available != nil {
		schedule.Available = *in.Available
	}
	if err := validateTimeRange(schedule.StartTime, schedule.EndTime); err != nil {
		return nil, err
	}

	err := s.uow.Do(ctx, func(repo *Repository) error {
		if err := requireRef(repo.LessonExists, "lesson", schedule.LessonID); err != nil {
			return err
		}
		return repo.CreateSchedule(schedule)
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *bookingService) UpdateSchedule(ctx context.Context, id uint, in ScheduleUpdate) (*Schedule, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var out *Schedule
	err := s.uow.Do(ctx, func(repo *Repository) error {
		schedule, err := repo.GetScheduleForUpdate(id)
		if err != nil {
			return err
		}
		if in.LessonID != nil {
			if err := requireRef(repo.LessonExists, "lesson", *in.LessonID); err != nil {
				return err
			}
			schedule.LessonID = *in.LessonID
		}
		setIf(&schedule.Date, in.Date)
		setIf(&schedule.StartTime, in.StartTime)
		setIf(&schedule.EndTime, in.EndTime)
		setIf(&schedule.Available, in.Available)
		if err := validateTimeRange(schedule.StartTime, schedule.EndTime); err != nil {
			return err
		}
		out = schedule
		return repo.SaveSchedule(schedule)
	})
	return out, err
}

func (s *bookingService) DeleteSchedule(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(repo *Repository) error { return repo.DeleteSchedule(id) })
}

// Bookings

func (s *bookingService) CreateBooking(ctx context.Context, in BookingInput) (*Booking, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	release, err := s.locker.Lock(ctx, scheduleLockKey(in.ScheduleID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock schedule %d: %w", in.ScheduleID, err)
	}
	defer s.release(ctx, release, in.ScheduleID)

	booking := &Booking{
		StudentName:  strings.TrimSpace(in.StudentName),
		StudentEmail: strings.TrimSpace(in.StudentEmail),
		LessonID:     in.LessonID,
		ScheduleID:   in.ScheduleID,
		Status:       StatusConfirmed,
	}

	err = s.uow.Do(ctx, func(repo *Repository) error {
		schedule, err := repo.GetScheduleForUpdate(in.ScheduleID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}
		if !schedule.Available {
			return ErrScheduleUnavailable
		}
		if schedule.LessonID != in.LessonID {
			return ErrLessonMismatch
		}

		active, err := repo.HasActiveBooking(schedule.ID)
		if err != nil {
			return err
		}
		if active {
			return ErrScheduleAlreadyBooked
		}

		if err := repo.CreateBooking(booking); err != nil {
			return err
		}
		schedule.Available = false
		return repo.SaveSchedule(schedule)
	})
	if err != nil {
		s.logger.Info("booking rejected", "schedule_id", in.ScheduleID, "lesson_id", in.LessonID, "error", err)
		return nil, err
	}

	s.logger.Info("booking created", "booking_id", booking.ID, "schedule_id", booking.ScheduleID)
	s.publish(ctx, events.TypeBookingCreated, booking)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*Booking, error) {
	var out *Booking
	err := s.uow.Do(ctx, func(repo *Repository) (err error) {
		out, err = repo.GetBooking(id)
		return err
	})
	return out, err
}

func (s *bookingService) CancelBooking(ctx context.Context, id uint) (*Booking, error) {
	current, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == StatusCancelled {
		return current, nil
	}

	release, err := s.locker.Lock(ctx, scheduleLockKey(current.ScheduleID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock schedule %d: %w", current.ScheduleID, err)
	}
	defer s.release(ctx, release, current.ScheduleID)

	var (
		out     *Booking
		changed bool
	)
	err = s.uow.Do(ctx, func(repo *Repository) error {
		booking, err := repo.GetBooking(id)
		if err != nil {
			return err
		}
		out = booking
		// Cancelled by a concurrent request while we waited for the lock
		if booking.Status == StatusCancelled {
			return nil
		}

		booking.Status = StatusCancelled
		if err := repo.SaveBooking(booking); err != nil {
			return err
		}
		changed = true

		schedule, err := repo.GetScheduleForUpdate(booking.ScheduleID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		schedule.Available = true
		return repo.SaveSchedule(schedule)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.logger.Info("booking cancelled", "booking_id", out.ID, "schedule_id", out.ScheduleID)
		s.publish(ctx, events.TypeBookingCancelled, out)
	}
	return out, nil
}

func (s *bookingService) release(ctx context.Context, release lock.ReleaseFunc, scheduleID uint) {
	if err := release(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn("failed to release schedule lock", "schedule_id", scheduleID, "error", err)
	}
}

// publish runs after commit; a failed publish never fails the request
func (s *bookingService) publish(ctx context.Context, eventType string, booking *Booking) {
	err := s.publisher.Publish(ctx, events.Event{
		Type:       eventType,
		BookingID:  booking.ID,
		ScheduleID: booking.ScheduleID,
		LessonID:   booking.LessonID,
		Status:     string(booking.Status),
	})
	if err != nil {
		s.logger.Warn("failed to publish booking event", "type", eventType, "booking_id", booking.ID, "error", err)
	}
}

func scheduleLockKey(id uint) string {
	return fmt.Sprintf("schedule:%d", id)
}

func requireRef(check func(uint) (bool, error), resource string, id uint) error {
	ok, err := check(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %d does not exist", ErrInvalidReference, resource, id)
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

var clockLayouts = []string{"15:04", "15:04:05"}

func parseClock(value string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: time %q must be HH:MM or HH:MM:SS", ErrValidation, value)
}

func validateTimeRange(start, end string) error {
	startAt, err := parseClock(start)
	if err != nil {
		return err
	}
	endAt, err := parseClock(end)
	if err != nil {
		return err
	}
	if !endAt.After(startAt) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}
	return nil
}
