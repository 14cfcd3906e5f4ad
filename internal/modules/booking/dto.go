package booking

type RequestUser struct {
	ID    int64  `json:"id" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

type RequestDates struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type CreateBookingRequest struct {
	User         RequestUser  `json:"user" binding:"required"`
	City         string       `json:"city" binding:"required"`
	Dates        RequestDates `json:"dates" binding:"required"`
	CheckInTime  string       `json:"checkInTime" binding:"required"`
	CheckOutTime string       `json:"checkOutTime" binding:"required"`
	BookingType  string       `json:"bookingType" binding:"required,oneof=individual team"`
	Remarks      string       `json:"remarks"`
	TeamMembers  []string     `json:"teamMembers" binding:"omitempty,dive,email"`
}
