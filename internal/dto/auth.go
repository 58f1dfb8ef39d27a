package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=150" example:"anna"`
	Password string `json:"password" validate:"required,min=8" example:"password123"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required" example:"anna"`
	Password string `json:"password" validate:"required" example:"password123"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
