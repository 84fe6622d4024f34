package model

// Doctor is a row of the paginated doctor listing, with specialty
// names aggregated into a single comma-separated string.
type Doctor struct {
	ID            int64   `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Email         string  `db:"email" json:"email"`
	Bio           string  `db:"bio" json:"bio"`
	ImageURL      string  `db:"image_url" json:"image_url"`
	Experience    int     `db:"exp" json:"exp"`
	TotalPatients int     `db:"total_patients" json:"total_patients"`
	OnlineFee     float64 `db:"online_fee" json:"online_fee"`
	VisitFee      float64 `db:"visit_fee" json:"visit_fee"`
	Specialties   string  `db:"specialties" json:"specialties"`
}

// Clinic is a practice location associated with a doctor.
type Clinic struct {
	ClinicName string  `json:"clinic_name"`
	ClinicFee  float64 `json:"clinic_fee"`
}

// Review is a patient review of a doctor.
type Review struct {
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	PatientName string `json:"patient_name"`
}

// AvailabilitySlot is an upcoming bookable slot for a doctor.
type AvailabilitySlot struct {
	AvailableDate string `json:"available_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

// DoctorDetail aggregates a doctor with clinics, recent reviews and
// upcoming availability.
type DoctorDetail struct {
	Doctor
	Clinics      []Clinic           `json:"clinics"`
	Reviews      []Review           `json:"reviews"`
	Availability []AvailabilitySlot `json:"availability"`
}

// DoctorFilters narrows the doctor listing.
type DoctorFilters struct {
	Pagination
	// Search matches doctor name or specialty name, case-insensitive.
	Search string `form:"search"`
}
