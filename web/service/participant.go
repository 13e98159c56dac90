package service

import (
	"errors"

	"census-api/database"
	"census-api/database/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors returned by the participant service; the controller maps
// them to status codes exactly once.
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrWorkNotFound        = errors.New("work record not found")
	ErrHomeNotFound        = errors.New("home record not found")
	ErrDuplicateEmail      = errors.New("participant email already exists")
)

type ParticipantService struct{}

// upsertWork writes the work row keyed on participant email. An existing row
// (active or soft-deleted) is overwritten in place, which also resets
// is_deleted.
func upsertWork(tx *gorm.DB, work *model.Work) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_email"}},
		DoUpdates: clause.AssignmentColumns([]string{"company_name", "salary", "currency", "is_deleted", "updated_at"}),
	}).Create(work).Error
}

func upsertHome(tx *gorm.DB, home *model.Home) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_email"}},
		DoUpdates: clause.AssignmentColumns([]string{"country", "city", "is_deleted", "updated_at"}),
	}).Create(home).Error
}

// Create persists the participant and upserts both child rows in one
// transaction. A duplicate email yields ErrDuplicateEmail.
func (s *ParticipantService) Create(participant *model.Participant, work *model.Work, home *model.Home) error {
	db := database.GetDB()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(participant).Error; err != nil {
			return err
		}
		if err := upsertWork(tx, work); err != nil {
			return err
		}
		return upsertHome(tx, home)
	})
	if database.IsDuplicate(err) {
		return ErrDuplicateEmail
	}
	return err
}

// GetAll returns every participant, most recently created first.
func (s *ParticipantService) GetAll() ([]model.Participant, error) {
	db := database.GetDB()

	var participants []model.Participant
	err := db.Model(model.Participant{}).
		Order("id DESC").
		Find(&participants).
		Error
	return participants, err
}

// GetByEmail looks a participant up by its normalized email.
func (s *ParticipantService) GetByEmail(email string) (*model.Participant, error) {
	db := database.GetDB()

	participant := &model.Participant{}
	err := db.Model(model.Participant{}).
		Where("email = ?", email).
		First(participant).
		Error
	if database.IsNotFound(err) {
		return nil, ErrParticipantNotFound
	} else if err != nil {
		return nil, err
	}
	return participant, nil
}

// GetWork returns the active work row for a participant. A missing
// participant and a missing or soft-deleted work row are distinct errors.
func (s *ParticipantService) GetWork(email string) (*model.Work, error) {
	if _, err := s.GetByEmail(email); err != nil {
		return nil, err
	}

	db := database.GetDB()
	work := &model.Work{}
	err := db.Model(model.Work{}).
		Where("participant_email = ? AND is_deleted = ?", email, false).
		First(work).
		Error
	if database.IsNotFound(err) {
		return nil, ErrWorkNotFound
	} else if err != nil {
		return nil, err
	}
	return work, nil
}

// GetHome returns the active home row for a participant.
func (s *ParticipantService) GetHome(email string) (*model.Home, error) {
	if _, err := s.GetByEmail(email); err != nil {
		return nil, err
	}

	db := database.GetDB()
	home := &model.Home{}
	err := db.Model(model.Home{}).
		Where("participant_email = ? AND is_deleted = ?", email, false).
		First(home).
		Error
	if database.IsNotFound(err) {
		return nil, ErrHomeNotFound
	} else if err != nil {
		return nil, err
	}
	return home, nil
}

// Update replaces the participant's fields and upserts both child rows in one
// transaction. The email is the identity and does not change here; the
// upserts revive previously soft-deleted children.
func (s *ParticipantService) Update(participant *model.Participant, work *model.Work, home *model.Home) error {
	existing, err := s.GetByEmail(participant.Email)
	if err != nil {
		return err
	}

	db := database.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(model.Participant{}).
			Where("id = ?", existing.Id).
			Updates(map[string]any{
				"first_name": participant.FirstName,
				"last_name":  participant.LastName,
				"dob":        participant.Dob,
			}).
			Error
		if err != nil {
			return err
		}
		if err := upsertWork(tx, work); err != nil {
			return err
		}
		return upsertHome(tx, home)
	})
	if err != nil {
		return err
	}

	refreshed, err := s.GetByEmail(participant.Email)
	if err != nil {
		return err
	}
	*participant = *refreshed
	return nil
}

// Delete soft-deletes the participant's work and home rows and hard-deletes
// the participant itself, in one transaction.
func (s *ParticipantService) Delete(email string) error {
	existing, err := s.GetByEmail(email)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(model.Work{}).
			Where("participant_email = ?", email).
			Update("is_deleted", true).
			Error
		if err != nil {
			return err
		}
		err = tx.Model(model.Home{}).
			Where("participant_email = ?", email).
			Update("is_deleted", true).
			Error
		if err != nil {
			return err
		}
		return tx.Delete(&model.Participant{}, existing.Id).Error
	})
}
