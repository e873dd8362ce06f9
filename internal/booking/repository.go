package booking

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"surfcast/internal/database"
)

// Repository reads and writes booking records on one *gorm.DB, normally a
// transaction handed out by UnitOfWork.
type Repository struct {
	db *gorm.DB
}

func newRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the booking tables and the index that keeps at most one
// active booking per schedule.
func Migrate(db *gorm.DB) error {
	return database.Migrate(db,
		[]any{&SurfSchool{}, &Instructor{}, &Lesson{}, &Schedule{}, &Booking{}},
		database.Migration{
			Name: "one active booking per schedule",
			SQL: "CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_schedule " +
				"ON bookings (schedule_id) WHERE status IN ('pending', 'confirmed')",
		},
	)
}

func findAll[T any](db *gorm.DB, page Page) ([]T, error) {
	page = page.normalized()
	records := make([]T, 0)
	if err := db.Order("id").Offset(page.Skip).Limit(page.Limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func findByID[T any](db *gorm.DB, resource string, id uint) (*T, error) {
	var record T
	if err := db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: resource, ID: id}
		}
		return nil, fmt.Errorf("failed to get %s %d: %w", resource, id, err)
	}
	return &record, nil
}

func exists[T any](db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check reference: %w", err)
	}
	return count > 0, nil
}

func deleteByID[T any](db *gorm.DB, resource string, id uint) error {
	result := db.Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s %d: %w", resource, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return nil
}

func (r *Repository) create(record any) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (r *Repository) save(record any) error {
	if err := r.db.Save(record).Error; err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// Schools

func (r *Repository) ListSchools(page Page) ([]SurfSchool, error) {
	return findAll[SurfSchool](r.db, page)
}

func (r *Repository) GetSchool(id uint) (*SurfSchool, error) {
	return findByID[SurfSchool](r.db, "school", id)
}

func (r *Repository) SchoolExists(id uint) (bool, error) {
	return exists[SurfSchool](r.db, id)
}

func (r *Repository) CreateSchool(school *SurfSchool) error { return r.create(school) }

func (r *Repository) SaveSchool(school *SurfSchool) error { return r.save(school) }

func (r *Repository) DeleteSchool(id uint) error {
	return deleteByID[SurfSchool](r.db, "school", id)
}

// Instructors

func (r *Repository) ListInstructors(page Page) ([]Instructor, error) {
	return findAll[Instructor](r.db, page)
}

func (r *Repository) GetInstructor(id uint) (*Instructor, error) {
	return findByID[Instructor](r.db, "instructor", id)
}

func (r *Repository) InstructorExists(id uint) (bool, error) {
	return exists[Instructor](r.db, id)
}

func (r *Repository) CreateInstructor(instructor *Instructor) error { return r.create(instructor) }

func (r *Repository) SaveInstructor(instructor *Instructor) error { return r.save(instructor) }

func (r *Repository) DeleteInstructor(id uint) error {
	return deleteByID[Instructor](r.db, "instructor", id)
}

// Lessons

func (r *Repository) ListLessons(page Page) ([]Lesson, error) {
	return findAll[Lesson](r.db, page)
}

func (r *Repository) GetLesson(id uint) (*Lesson, error) {
	return findByID[Lesson](r.db, "lesson", id)
}

func (r *Repository) LessonExists(id uint) (bool, error) {
	return exists[Lesson](r.db, id)
}

func (r *Repository) CreateLesson(lesson *Lesson) error { return r.create(lesson) }

func (r *Repository) SaveLesson(lesson *Lesson) error { return r.save(lesson) }

func (r *Repository) DeleteLesson(id uint) error {
	return deleteByID[Lesson](r.db, "lesson", id)
}

// Schedules

func (r *Repository) ListSchedules(page Page) ([]Schedule, error) {
	return findAll[Schedule](r.db, page)
}

func (r *Repository) GetSchedule(id uint) (*Schedule, error) {
	return findByID[Schedule](r.db, "schedule", id)
}

// GetScheduleForUpdate loads the schedule and, on postgres, row-locks it
// until the surrounding transaction ends.
func (r *Repository) GetScheduleForUpdate(id uint) (*Schedule, error) {
	db := r.db
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return findByID[Schedule](db, "schedule", id)
}

func (r *Repository) CreateSchedule(schedule *Schedule) error { return r.create(schedule) }

func (r *Repository) SaveSchedule(schedule *Schedule) error { return r.save(schedule) }

func (r *Repository) DeleteSchedule(id uint) error {
	return deleteByID[Schedule](r.db, "schedule", id)
}

// Bookings

func (r *Repository) GetBooking(id uint) (*Booking, error) {
	return findByID[Booking](r.db, "booking", id)
}

// HasActiveBooking reports whether a pending or confirmed booking holds the schedule
func (r *Repository) HasActiveBooking(scheduleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&Booking{}).
		Where("schedule_id = ? AND status IN ?", scheduleID, []Status{StatusPending, StatusConfirmed}).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check active bookings: %w", err)
	}
	return count > 0, nil
}

// CreateBooking inserts the booking. A concurrent active booking for the
// same schedule surfaces as ErrScheduleAlreadyBooked.
func (r *Repository) CreateBooking(booking *Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrScheduleAlreadyBooked
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *Repository) SaveBooking(booking *Booking) error { return r.save(booking) }
