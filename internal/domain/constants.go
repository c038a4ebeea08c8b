package domain

import "time"

// Slot generation
const (
	DefaultSlotStepMinutes = 15
	DefaultTimezone        = "Europe/Ljubljana"
)

// Business validation constants
const (
	MinAppointmentMinutes = 15
	MaxAppointmentMinutes = 480 // 8 hours
	MaxNameLength         = 200
	MaxNotesLength        = 1000
)

// Time format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = DateFormat + " " + TimeFormat
)

// WeekdayNames канонические (словенские) названия дней недели для внешнего интерфейса
var WeekdayNames = map[time.Weekday]string{
	time.Monday:    "ponedeljek",
	time.Tuesday:   "torek",
	time.Wednesday: "sreda",
	time.Thursday:  "četrtek",
	time.Friday:    "petek",
	time.Saturday:  "sobota",
	time.Sunday:    "nedelja",
}

// WeekdayOrder порядок дней для вывода
var WeekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ActiveStatuses статусы, которые занимают время в расписании
var ActiveStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusInProgress,
}

// InactiveStatuses статусы, которые не блокируют слоты
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}
