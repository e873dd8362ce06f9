package booking

// LessonLevel is the skill level a lesson targets
type LessonLevel string

const (
	LevelBeginner     LessonLevel = "beginner"
	LevelIntermediate LessonLevel = "intermediate"
	LevelAdvanced     LessonLevel = "advanced"
)

// Status is the lifecycle state of a booking
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Active reports whether the booking holds its schedule
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

type SurfSchool struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Location    string  `gorm:"size:255;not null" json:"location"`
	Description *string `gorm:"size:1024" json:"description"`
	Rating      float64 `gorm:"not null;default:0" json:"rating"`
}

type Instructor struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:255;not null" json:"name"`
	ExperienceYears int    `gorm:"not null" json:"experience_years"`
	SchoolID        uint   `gorm:"not null;index" json:"school_id"`
}

type Lesson struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	SchoolID        uint        `gorm:"not null;index" json:"school_id"`
	InstructorID    uint        `gorm:"not null;index" json:"instructor_id"`
	Level           LessonLevel `gorm:"size:20;not null" json:"level"`
	DurationMinutes int         `gorm:"not null" json:"duration_minutes"`
	Price           float64     `gorm:"not null" json:"price"`
}

// Schedule is one bookable slot of a lesson. Date is YYYY-MM-DD and the
// times are HH:MM or HH:MM:SS.
type Schedule struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	LessonID  uint   `gorm:"not null;index" json:"lesson_id"`
	Date      string `gorm:"size:10;not null" json:"date"`
	StartTime string `gorm:"size:8;not null" json:"start_time"`
	EndTime   string `gorm:"size:8;not null" json:"end_time"`
	// No gorm default: it would turn an explicit false into true on insert
	Available bool `gorm:"not null" json:"available"`
}

type Booking struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	StudentName  string `gorm:"size:255;not null" json:"student_name"`
	StudentEmail string `gorm:"size:255;not null" json:"student_email"`
	LessonID     uint   `gorm:"not null;index" json:"lesson_id"`
	ScheduleID   uint   `gorm:"not null;index" json:"schedule_id"`
	Status       Status `gorm:"size:20;not null" json:"status"`
}

// CancelResult is returned by the cancel endpoint
type CancelResult struct {
	ID     uint   `json:"id"`
	Status Status `json:"status"`
}
