package model

// Patient is an account holder who books appointments.
type Patient struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	DateOfBirth  string `db:"dob" json:"dob"`
}

// SignupRequest creates a patient account.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	DOB      string `json:"dob" binding:"required,dateonly"`
	Email    string `json:"email" binding:"required,email"`
}

// LoginRequest authenticates a patient.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the authenticated patient id.
type LoginResponse struct {
	Success bool  `json:"success"`
	UserID  int64 `json:"userId"`
}
