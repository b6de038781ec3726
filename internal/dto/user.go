package dto

import (
	"github.com/todoplanner/todo-planner-api/internal/models"
)

// RegisterRequest is the body of POST /user/register. Field presence
// is validated in the service so failures carry the API's own
// messages.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}

// LoginRequest is the body of POST /user/login. Both username and
// email must match the same account.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the patch body of PUT /user/updateUserDetails.
// A nil field means "keep the current value".
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Password *string `json:"password"`
}

// UserDetailsDTO is the non-secret projection of a user. The password
// hash never appears in any response shape.
type UserDetailsDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}

// ToUserDetailsDTO converts a User model to its API projection
func ToUserDetailsDTO(user models.User) UserDetailsDTO {
	return UserDetailsDTO{
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		LastName: user.LastName,
	}
}
