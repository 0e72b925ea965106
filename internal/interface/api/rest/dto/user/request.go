package user

type (
	// Request is the registration shape, also accepted by the replace
	// endpoint where a blank secret means "keep the current one".
	Request struct {
		Name      string `json:"name"`
		LastNames string `json:"last_names"`
		Email     string `json:"email"`
		Secret    string `json:"secret"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
		Role      string `json:"role"`
		Active    *bool  `json:"active"`
	}

	// UpdateRequest is the merge-update shape; email is absent because it
	// is immutable through that path.
	UpdateRequest struct {
		Name      string `json:"name"`
		LastNames string `json:"last_names"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
		Role      string `json:"role"`
		Secret    string `json:"secret"`
	}

	StatusRequest struct {
		Active *bool `json:"active"`
	}
)
