// Package store is the persistence boundary for application records. It
// enforces the storage-level invariants that hold even if upstream
// validation was bypassed: one application per owner, and the core
// identity/derived fields present.
package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"bursary-go/models"
)

var (
	// ErrConflict: an application already exists for the owner user.
	ErrConflict = errors.New("application already exists for this user")
	// ErrNotFound: no application for the given key.
	ErrNotFound = errors.New("application not found")
	// ErrInvalidRecord: the record is missing storage-required fields.
	ErrInvalidRecord = errors.New("application record incomplete")
)

type ApplicationStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

// Create stores a new application. The unique index on user_id makes the
// one-per-user rule atomic: two concurrent creates for the same owner
// cannot both succeed, the loser gets ErrConflict.
func (s *ApplicationStore) Create(app *models.Application) error {
	if err := checkStorageInvariants(app); err != nil {
		return err
	}

	if err := s.db.Create(app).Error; err != nil {
		if isDuplicate(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetByUserID loads the owner's application with all list sections in
// stored order.
func (s *ApplicationStore) GetByUserID(userID uint) (*models.Application, error) {
	var app models.Application
	err := s.preloaded().Where("user_id = ?", userID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByID is the admin-side read.
func (s *ApplicationStore) GetByID(id uint) (*models.Application, error) {
	var app models.Application
	err := s.preloaded().First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// List returns applications for admin review, newest first, without the
// nested list sections.
func (s *ApplicationStore) List(offset, limit int) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&apps).Error
	return apps, err
}

// Review sets the admin-owned approval fields without re-running the
// applicant-side validation rules.
func (s *ApplicationStore) Review(id uint, approved bool, deadline *time.Time) error {
	updates := map[string]interface{}{"is_approved": approved}
	if deadline != nil {
		updates["deadline"] = deadline
	}
	res := s.db.Model(&models.Application{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignInstallments appends disbursement references to an application.
func (s *ApplicationStore) AssignInstallments(id uint, grants []models.InstallmentGrant) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Application{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		for i := range grants {
			grants[i].ApplicationID = id
		}
		return tx.Create(&grants).Error
	})
}

// Installments returns an application's disbursement references in
// assignment order.
func (s *ApplicationStore) Installments(id uint) ([]models.InstallmentGrant, error) {
	var count int64
	if err := s.db.Model(&models.Application{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	var grants []models.InstallmentGrant
	err := s.db.Where("application_id = ?", id).Order("id").Find(&grants).Error
	return grants, err
}

// Delete removes an application and its child rows. Only the explicit
// admin path calls this.
func (s *ApplicationStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Application{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		for _, child := range []interface{}{
			&models.SiblingUnder19{},
			&models.SiblingAtUniversity{},
			&models.HouseIncome{},
			&models.LandIncome{},
			&models.InstallmentGrant{},
		} {
			if err := tx.Where("application_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// checkStorageInvariants is a defense-in-depth re-check, deliberately much
// coarser than the Validator.
func checkStorageInvariants(app *models.Application) error {
	switch {
	case app.UserID == 0,
		strings.TrimSpace(app.RegNo) == "",
		strings.TrimSpace(app.NIC) == "",
		strings.TrimSpace(app.Father.Name) == "",
		strings.TrimSpace(app.Mother.Name) == "":
		return ErrInvalidRecord
	}
	// Derived income components must have been materialized before save.
	for _, n := range []models.Numeric{
		app.Father.AnnualIncome.OccupationOrPension,
		app.Father.AnnualIncome.HouseAndProperty,
		app.Father.AnnualIncome.OtherSources,
		app.Mother.AnnualIncome.OccupationOrPension,
		app.Mother.AnnualIncome.HouseAndProperty,
		app.Mother.AnnualIncome.OtherSources,
	} {
		if !n.Defined {
			return ErrInvalidRecord
		}
	}
	return nil
}

func (s *ApplicationStore) preloaded() *gorm.DB {
	ordered := func(db *gorm.DB) *gorm.DB { return db.Order("id") }
	return s.db.
		Preload("SiblingsUnder19", ordered).
		Preload("SiblingsAtUniversity", ordered).
		Preload("IncomeFromHouses", ordered).
		Preload("IncomeFromEstateFieldsLands", ordered).
		Preload("Installments", ordered)
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
