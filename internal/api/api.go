package api

import (
	"context" // Request scoped operations
	"errors"  // Error inspection
	"strconv" // Path id parsing

	"places_api/internal/apperr"     // Classified HTTP errors
	"places_api/internal/domain"     // Importing domain models
	"places_api/internal/middleware" // Error formatting
	"places_api/internal/service"    // Place and user services

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Binding validation errors
	"github.com/sirupsen/logrus"             // Logging library
)

// PlaceService is what the place handlers need from the service layer
type PlaceService interface {
	GetByID(ctx context.Context, id uint) (*domain.Place, error)
	GetByUser(ctx context.Context, userID uint) ([]domain.Place, error)
	Create(ctx context.Context, in service.CreatePlaceInput) (*domain.Place, error)
	Update(ctx context.Context, id uint, title, description string) (*domain.Place, error)
	Delete(ctx context.Context, id uint) error
}

// UserService is what the user handlers need from the service layer
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) error
}

// Setup installs the error formatter, panic recovery, the unknown route handler and the routes on r
func Setup(r *gin.Engine, places PlaceService, users UserService) {
	r.Use(middleware.ErrorHandler()) // Central error formatting
	r.Use(middleware.Recovery())     // Panics become 500 responses
	r.NoRoute(middleware.NotFound()) // Unknown routes
	RegisterRoutes(r, places, users)
}

// RegisterRoutes mounts the places and users routes under /api
func RegisterRoutes(r *gin.Engine, places PlaceService, users UserService) {
	placesGroup := r.Group("/api/places")
	placesGroup.GET("/:pid", GetPlaceByIDHandler(places))           // Single place
	placesGroup.GET("/user/:uid", GetPlacesByUserIDHandler(places)) // Places of a user
	placesGroup.POST("", CreatePlaceHandler(places))                // Create place
	placesGroup.PATCH("/:pid", UpdatePlaceHandler(places))          // Update title and description
	placesGroup.DELETE("/:pid", DeletePlaceHandler(places))         // Delete place

	usersGroup := r.Group("/api/users")
	usersGroup.GET("", ListUsersHandler(users))      // List users
	usersGroup.POST("/signup", SignupHandler(users)) // Signup
	usersGroup.POST("/login", LoginHandler(users))   // Login
}

// bindJSON binds the request body into req, forwarding a 422 when it does not validate
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	fields := logrus.Fields{"path": c.FullPath()}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		failed := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			failed = append(failed, fe.Field()+":"+fe.Tag()) // e.g. Description:min
		}
		fields["fields"] = failed
	} else {
		fields["error"] = err.Error()
	}
	logrus.WithFields(fields).Debug("Invalid request body")
	_ = c.Error(apperr.Unprocessable(apperr.MsgInvalidInput))
	return false
}

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
