package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength      = 1000
	MaxNameLength       = 200
	MaxCartLines        = 50
	MaxLineQuantity     = 99
	MaxStayNights       = 90
	DefaultSpaHeadcount = 1
)

// ActiveStatuses statuses of bookings that still need staff attention
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
