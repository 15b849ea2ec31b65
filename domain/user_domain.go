package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderUnknown = "unknown"
)

var (
	MessageSuccessRegister     = "user registered successfully"
	MessageSuccessLogin        = "login successful"
	MessageSuccessGetMe        = "user profile retrieved successfully"
	MessageSuccessUpdateUser   = "user updated successfully"
	MessageSuccessUploadAvatar = "avatar uploaded successfully"

	MessageFailedRegister     = "failed to register user"
	MessageFailedLogin        = "failed to login"
	MessageFailedGetMe        = "failed to retrieve user profile"
	MessageFailedUpdateUser   = "failed to update user"
	MessageFailedUploadAvatar = "failed to upload avatar"

	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrUsernameRequired     = errors.New("username is required")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidGender        = errors.New("gender must be male, female or unknown")
	ErrInvalidActivityLevel = errors.New("activity level must be between 1 and 5")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Password string `json:"password" validate:"required,min=8"`
		Email    string `json:"email" validate:"omitempty,email"`
		Phone    string `json:"phone" validate:"omitempty"`
		Nickname string `json:"nickname" validate:"omitempty,max=50"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email,omitempty"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Nickname      string   `json:"nickname" validate:"omitempty,max=50"`
		Email         string   `json:"email" validate:"omitempty,email"`
		Phone         string   `json:"phone" validate:"omitempty"`
		Gender        string   `json:"gender" validate:"omitempty,oneof=male female unknown"`
		Weight        *float64 `json:"weight" validate:"omitempty,gt=0"`
		Height        *float64 `json:"height" validate:"omitempty,gt=0"`
		Age           *int     `json:"age" validate:"omitempty,gte=0,lte=130"`
		ActivityLevel *int     `json:"activity_level" validate:"omitempty,min=1,max=5"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	UserResponse struct {
		ID            string    `json:"id"`
		Username      string    `json:"username"`
		Email         string    `json:"email,omitempty"`
		Phone         string    `json:"phone,omitempty"`
		Nickname      string    `json:"nickname,omitempty"`
		Avatar        string    `json:"avatar,omitempty"`
		Gender        string    `json:"gender,omitempty"`
		Weight        *float64  `json:"weight,omitempty"`
		Height        *float64  `json:"height,omitempty"`
		Age           *int      `json:"age,omitempty"`
		ActivityLevel *int      `json:"activity_level,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
