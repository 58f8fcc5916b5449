package email

import (
	domain "user-directory-api/internal/domain/email"
)

func fromDBModel(model *Email) *domain.Email {
	var e = &domain.Email{
		UUID:    model.UUID,
		Address: model.Address,
		UserID:  model.UserID,
	}

	return e
}

func fromDBModels(models *Emails) domain.Emails {
	es := make(domain.Emails, len(*models))
	for idx, e := range *models {
		es[idx] = fromDBModel(e)
	}

	return es
}
