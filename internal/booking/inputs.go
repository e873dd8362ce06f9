package booking

// Create inputs use the same "binding" tags gin validates requests with;
// the service validates them again so non-HTTP callers get the same rules.

// Page selects a window of a list, skip/limit style
type Page struct {
	Skip  int `form:"skip" binding:"gte=0"`
	Limit int `form:"limit" binding:"gte=0,lte=1000"`
}

const defaultLimit = 100

func (p Page) normalized() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	return p
}

type SchoolInput struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Location    string  `json:"location" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
}

type SchoolUpdate struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Location    *string  `json:"location" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=1024"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

type InstructorInput struct {
	Name            string `json:"name" binding:"required,max=255"`
	ExperienceYears *int   `json:"experience_years" binding:"required,gte=0"`
	SchoolID        uint   `json:"school_id" binding:"required"`
}

type InstructorUpdate struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=255"`
	ExperienceYears *int    `json:"experience_years" binding:"omitempty,gte=0"`
	SchoolID        *uint   `json:"school_id" binding:"omitempty,gt=0"`
}

type LessonInput struct {
	SchoolID        uint        `json:"school_id" binding:"required"`
	InstructorID    uint        `json:"instructor_id" binding:"required"`
	Level           LessonLevel `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	DurationMinutes int         `json:"duration_minutes" binding:"required,gt=0"`
	Price           float64     `json:"price" binding:"required,gt=0"`
}

type LessonUpdate struct {
	SchoolID        *uint        `json:"school_id" binding:"omitempty,gt=0"`
	InstructorID    *uint        `json:"instructor_id" binding:"omitempty,gt=0"`
	Level           *LessonLevel `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	DurationMinutes *int         `json:"duration_minutes" binding:"omitempty,gt=0"`
	Price           *float64     `json:"price" binding:"omitempty,gt=0"`
}

type ScheduleInput struct {
	LessonID  uint   `json:"lesson_id" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Available *bool  `json:"available"`
}

type ScheduleUpdate struct {
	LessonID  *uint   `json:"lesson_id" binding:"omitempty,gt=0"`
	Date      *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Available *bool   `json:"available"`
}

type BookingInput struct {
	StudentName  string `json:"student_name" binding:"required,max=255"`
	StudentEmail string `json:"student_email" binding:"required,email,max=255"`
	LessonID     uint   `json:"lesson_id" binding:"required"`
	ScheduleID   uint   `json:"schedule_id" binding:"required"`
}
