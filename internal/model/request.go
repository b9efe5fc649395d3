package model

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=5"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=5"`
}

type CreateMovieRequest struct {
	Title      string  `json:"title" validate:"required"`
	Img        string  `json:"img"`
	ImdbID     string  `json:"imdbId" validate:"required"`
	Type       string  `json:"type"`
	Released   string  `json:"released"`
	ImdbRating float64 `json:"imdbRating"`
	Plot       string  `json:"plot"`
	Actors     string  `json:"actors"`
	Genre      string  `json:"genre"`
}

type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type AddWatchlistRequest struct {
	ImdbID string `json:"imdbId" validate:"required"`
}

type UpdateWatchlistRequest struct {
	Watched bool `json:"watched"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=5"`
	RoleID   Role   `json:"roleId" validate:"oneof=0 1"`
}

type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	RoleID   Role   `json:"roleId" validate:"oneof=0 1"`
}
