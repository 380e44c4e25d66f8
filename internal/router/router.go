package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/user-admin-panel/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/user-admin-panel/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/iliyamo/user-admin-panel/internal/model"      // role constants for the admin gate
)

// RegisterRoutes registers routes that do not belong to the user API on
// the provided Echo instance.  Currently it exposes only a health check
// that load balancers and monitoring systems can probe.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterUsers registers the user-management API under /api/users.
//
// register and login are reachable without a token: login is the entry
// point for every client and register is the bootstrap path for creating
// accounts (including the very first admin on a fresh deployment).  The
// remaining endpoints are wrapped in the JWT middleware followed by the
// admin role check, in that order, so authorization never runs for an
// unauthenticated request.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string) {
	g := e.Group("/api/users")
	g.POST("/register", u.Register)
	g.POST("/login", u.Login)

	admin := e.Group("/api/users",
		middleware.JWTAuth(jwtSecret, u.Users),
		middleware.RequireRole(model.RoleAdmin),
	)
	// The /usuarios spelling is the deployed contract of the dashboard UI;
	// renaming it would break existing clients.
	admin.GET("/usuarios", u.ListUsers)
	admin.POST("/addUser", u.AddUser)
	admin.PUT("/updateUser/:id", u.UpdateUser)
	admin.DELETE("/deleteUser/:id", u.DeleteUser)
}
