package handler

import (
	"context"  // provides context with cancellation for DB calls
	"errors"   // sentinel error matching
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts for DB calls

	"github.com/google/uuid"      // opaque user id generation
	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/user-admin-panel/internal/config"     // app configuration
	"github.com/iliyamo/user-admin-panel/internal/model"      // user entity and role constants
	"github.com/iliyamo/user-admin-panel/internal/repository" // user store
	"github.com/iliyamo/user-admin-panel/internal/utils"      // hashing and token issuing helpers
)

// UserHandler bundles dependencies for the user management endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users repository.UserStore
}

func NewUserHandler(cfg config.Config, users repository.UserStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type createUserReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | user
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// updateUserReq uses pointers so that absent fields can be told apart
// from fields deliberately set to an empty string. Only supplied fields
// overwrite the stored record.
type updateUserReq struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userView is the outbound representation of a user. The password hash
// is not part of it, so no endpoint can echo credentials.
type userView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func viewOf(u model.User) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Register handles POST /api/users/register. It is the unauthenticated
// bootstrap path for creating accounts, including the first admin.
func (h *UserHandler) Register(c echo.Context) error {
	return h.createUser(c, "User registered successfully")
}

// AddUser handles POST /api/users/addUser. The route is wrapped by the
// JWT and admin-role middleware, so by the time this runs the caller is
// a verified admin. Creation logic is identical to Register.
func (h *UserHandler) AddUser(c echo.Context) error {
	return h.createUser(c, "User added successfully")
}

func (h *UserHandler) createUser(c echo.Context, successMsg string) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username and password are required"})
	}
	if !model.ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid role"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
	}
	if err := h.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": successMsg})
}

// Login handles POST /api/users/login. An unknown username and a wrong
// password produce the same response so the endpoint cannot be used to
// enumerate accounts.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": access.Token})
}

// ListUsers handles GET /api/users/usuarios. Admin only; records are
// serialized through userView so password hashes never leave the server.
func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, viewOf(u))
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateUser handles PUT /api/users/updateUser/:id. Only fields present
// in the body change; a supplied password is rehashed and a supplied
// role is validated against the enum before anything is written.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id := c.Param("id")
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	if req.Username != nil && strings.TrimSpace(*req.Username) != "" {
		u.Username = strings.TrimSpace(*req.Username)
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password, h.Cfg.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
		}
		u.PasswordHash = hash
	}
	if req.Role != nil && *req.Role != "" {
		if !model.ValidRole(*req.Role) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid role"})
		}
		u.Role = *req.Role
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Email != nil {
		u.Email = *req.Email
	}

	if err := h.Users.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully"})
}

// DeleteUser handles DELETE /api/users/deleteUser/:id. Hard delete; the
// id can never be resurrected with its old record.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
