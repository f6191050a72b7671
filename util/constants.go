package util

// Collection names in the primary store.
const (
	DoctorCollection      = "doctors"
	AppointmentCollection = "appointments"
	UserCollection        = "users"
	ReportCollection      = "reports"
)

// Cache key prefixes.
const (
	DoctorKey      = "DOCTOR_"
	AppointmentKey = "APPOINTMENT_"
	UserKey        = "USER_"
)

// User facing error messages.
const (
	MISSING_REQUIRED_FIELDS      = "Missing required fields"
	INVALID_DEPARTMENT           = "Invalid department"
	INVALID_EXPERIENCE           = "Experience must be a non-negative integer"
	DOCTOR_NOT_FOUND             = "Doctor not found"
	APPOINTMENT_NOT_FOUND        = "Appointment not found"
	USER_NOT_FOUND               = "User not found"
	REPORT_NOT_FOUND             = "Report not found"
	NO_AVAILABILITY_SET          = "Doctor has no availability set"
	NO_AVAILABILITY_FOR_DATE     = "No availability for selected date"
	INVALID_TIME_SLOT            = "Invalid time slot"
	SLOT_ALREADY_BOOKED          = "Time slot already booked"
	INVALID_STATUS               = "Invalid appointment status"
	INVALID_STATUS_TRANSITION    = "Appointment is already finalized"
	STATUS_REQUIRED              = "Status is required"
	INVALID_DATE                 = "Invalid date"
	INVALID_CREDENTIALS          = "Invalid credentials"
	USER_ALREADY_EXISTS          = "User already exists with this email"
	PASSWORD_TOO_SHORT           = "Password must be at least 6 characters long"
	INVALID_USER_TYPE            = "Invalid user type"
	MISSING_AUTH_TOKEN           = "Authorization token required"
	INVALID_AUTH_TOKEN           = "Invalid or expired token"
	ACCESS_DENIED                = "You do not have access to perform this action"
	PATIENT_EMAIL_REQUIRED       = "Patient email is required"
	PATIENT_ID_OR_EMAIL_REQUIRED = "Patient ID or email is required"
	INVALID_OBJECT_ID            = "Invalid id"
)
