package entity

// Appointment is one booked slot. Date and Time are stored in their
// canonical forms ("2006-01-02" / "15:04") in the business timezone;
// the composite unique index makes a slot bookable exactly once.
type Appointment struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"not null;index"`
	Date      string `gorm:"not null;uniqueIndex:idx_appointments_slot"`
	Time      string `gorm:"not null;uniqueIndex:idx_appointments_slot"`
	Timezone  string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
}
