package user

import (
	"user-records-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		UUID:      uDomain.UUID,
		Name:      uDomain.Name,
		LastNames: uDomain.LastNames,
		Email:     uDomain.Email,
		Phone:     uDomain.Phone,
		Address:   uDomain.Address,
		Role:      string(uDomain.Role),
		Active:    uDomain.Active,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainRegistration(req Request) user.Registration {
	return user.Registration{
		Name:      req.Name,
		LastNames: req.LastNames,
		Email:     req.Email,
		Secret:    req.Secret,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      user.Role(req.Role),
		Active:    req.Active,
	}
}

func ToDomainUpdate(req UpdateRequest) user.Update {
	return user.Update{
		Name:      req.Name,
		LastNames: req.LastNames,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      user.Role(req.Role),
		Secret:    req.Secret,
	}
}
