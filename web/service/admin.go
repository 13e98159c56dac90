package service

import (
	"census-api/database"
	"census-api/database/model"
	"census-api/util/crypto"
)

type AdminService struct{}

// CheckAdmin resolves the admin for a login/password pair. A nil admin with a
// nil error means the credentials simply do not match; a non-nil error means
// the lookup itself failed and must not be reported as an auth failure.
func (s *AdminService) CheckAdmin(login string, password string) (*model.Admin, error) {
	db := database.GetDB()

	admin := &model.Admin{}
	err := db.Model(model.Admin{}).
		Where("login = ?", login).
		First(admin).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	if !crypto.CheckPasswordHash(admin.Password, password) {
		return nil, nil
	}
	return admin, nil
}
