package user

import (
	domain "user-directory-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:      model.UUID,
		Name:      model.Name,
		Birthdate: model.Birthdate,
		Status:    domain.Status(model.Status),
	}

	return u
}
