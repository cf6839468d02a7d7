package repository

import (
	"context"
	"time"

	"fitbook/internal/domain"

	"gorm.io/gorm"
)

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

type classModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name;size:100;not null"`
	DateTime       time.Time `gorm:"column:date_time;not null"`
	Instructor     string    `gorm:"column:instructor;size:100;not null"`
	AvailableSlots int       `gorm:"column:available_slots;not null;check:available_slots >= 0"`
}

func (classModel) TableName() string { return "fitness_classes" }

func toDomainClass(m classModel) *domain.FitnessClass {
	return &domain.FitnessClass{
		ID:             m.ID,
		Name:           m.Name,
		DateTime:       m.DateTime.UTC(),
		Instructor:     m.Instructor,
		AvailableSlots: m.AvailableSlots,
	}
}

func toClassModel(c *domain.FitnessClass) classModel {
	return classModel{
		ID:             c.ID,
		Name:           c.Name,
		DateTime:       c.DateTime.UTC(),
		Instructor:     c.Instructor,
		AvailableSlots: c.AvailableSlots,
	}
}

func (r *ClassRepository) Create(ctx context.Context, c *domain.FitnessClass) error {
	m := toClassModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClass(m)
	return nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*domain.FitnessClass, error) {
	var m classModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClass(m), nil
}

func (r *ClassRepository) GetAll(ctx context.Context) ([]domain.FitnessClass, error) {
	var ms []classModel
	tx := r.db.WithContext(ctx).Order("date_time ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.FitnessClass, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainClass(m))
	}
	return out, nil
}
