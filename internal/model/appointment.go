package model

// Appointment is a booked visit, joined with the doctor's name for
// listing purposes.
type Appointment struct {
	ID              int64  `db:"id" json:"id"`
	AppointmentDate string `db:"appointment_date" json:"appointment_date"`
	TimeSlot        string `db:"time_slot" json:"time_slot"`
	Reason          string `db:"reason" json:"reason"`
	DoctorName      string `db:"doctor_name" json:"doctor_name"`
}

// BookAppointmentRequest creates an appointment. All fields are
// required; booking with any field missing is rejected before any
// insert is attempted.
type BookAppointmentRequest struct {
	PatientID int64  `json:"patientId" binding:"required"`
	DoctorID  int64  `json:"doctorId" binding:"required"`
	Date      string `json:"date" binding:"required,dateonly"`
	Time      string `json:"time" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}
