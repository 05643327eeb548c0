package models

// Appointment is the document persisted to the dental_appointments
// collection. appointment_date and created_at carry the human-readable
// clinic-zone representations; both destinations receive the same values.
type Appointment struct {
	ID              string `bson:"id" json:"id"`
	PatientName     string `bson:"patient_name" json:"patient_name"`
	Email           string `bson:"email" json:"email"`
	Phone           string `bson:"phone" json:"phone"`
	AppointmentDate string `bson:"appointment_date" json:"appointment_date"`
	TreatmentType   string `bson:"treatment_type" json:"treatment_type"`
	CreatedAt       string `bson:"created_at" json:"created_at"`
}
