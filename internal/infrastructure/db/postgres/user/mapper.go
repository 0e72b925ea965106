package user

import (
	domain "user-records-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:       model.UUID,
		Name:       model.Name,
		LastNames:  model.LastNames,
		Email:      model.Email,
		SecretHash: model.SecretHash,
		Phone:      model.Phone,
		Address:    model.Address,
		Role:       domain.Role(model.Role),
		Active:     model.Active,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
