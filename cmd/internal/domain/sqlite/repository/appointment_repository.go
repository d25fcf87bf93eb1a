package repository

import (
	"frontdesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) Save(appt *entity.Appointment) error {
	return a.db.Create(appt).Error
}

func (a *DefaultAppointmentRepository) HasConflict(date, clock string) (bool, error) {
	var count int64
	err := a.db.Model(&entity.Appointment{}).
		Where("date = ?", date).
		Where("time = ?", clock).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (a *DefaultAppointmentRepository) FindByName(name string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.Where("name = ?", name).
		Order("date asc").
		Order("time asc").
		Find(&appts).Error
	return appts, err
}

// DeleteByMatch removes the appointment matching exactly on name, date and
// time. It reports whether a row existed and was removed.
func (a *DefaultAppointmentRepository) DeleteByMatch(name, date, clock string) (bool, error) {
	res := a.db.Where("name = ?", name).
		Where("date = ?", date).
		Where("time = ?", clock).
		Delete(&entity.Appointment{})
	return res.RowsAffected > 0, res.Error
}

func (a *DefaultAppointmentRepository) DeleteAllByName(name string) (int64, error) {
	res := a.db.Where("name = ?", name).Delete(&entity.Appointment{})
	return res.RowsAffected, res.Error
}
