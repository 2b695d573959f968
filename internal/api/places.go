package api

import (
	"net/http" // HTTP status codes

	"places_api/internal/apperr"  // Classified HTTP errors
	"places_api/internal/service" // Place service input

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreatePlaceRequest represents a new place
type CreatePlaceRequest struct {
	Title       string `json:"title" binding:"required"`             // Title must be provided
	Description string `json:"description" binding:"required,min=5"` // At least 5 characters
	Address     string `json:"address" binding:"required"`           // Address to geocode
	Creator     RefID  `json:"creator" binding:"required"`           // Owning user ID
}

// UpdatePlaceRequest represents the editable fields of a place
type UpdatePlaceRequest struct {
	Title       string `json:"title" binding:"required"`             // Title must be provided
	Description string `json:"description" binding:"required,min=5"` // At least 5 characters
}

// GetPlaceByIDHandler returns a single place
func GetPlaceByIDHandler(places PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "pid")
		if !ok {
			_ = c.Error(apperr.NotFound("Could not find a place for the provided id."))
			return
		}
		place, err := places.GetByID(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err) // Forward to the error handler
			return
		}
		c.JSON(http.StatusOK, gin.H{"place": place})
	}
}

// GetPlacesByUserIDHandler returns every place of a user
func GetPlacesByUserIDHandler(places PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "uid")
		if !ok {
			_ = c.Error(apperr.NotFound("Could not find places for the provided user id."))
			return
		}
		userPlaces, err := places.GetByUser(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"places": userPlaces})
	}
}

// CreatePlaceHandler geocodes the address and creates a place for the creator
func CreatePlaceHandler(places PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePlaceRequest
		if !bindJSON(c, &req) {
			return
		}
		creatorID, ok := req.Creator.Uint()
		if !ok {
			_ = c.Error(apperr.NotFound("Could not find user for provided id."))
			return
		}
		place, err := places.Create(c.Request.Context(), service.CreatePlaceInput{
			Title:       req.Title,
			Description: req.Description,
			Address:     req.Address,
			CreatorID:   creatorID,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"createPlace": place})
	}
}

// UpdatePlaceHandler changes the title and description of a place
func UpdatePlaceHandler(places PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePlaceRequest
		if !bindJSON(c, &req) {
			return
		}
		id, ok := pathID(c, "pid")
		if !ok {
			_ = c.Error(apperr.NotFound("Could not find a place for the provided id."))
			return
		}
		place, err := places.Update(c.Request.Context(), id, req.Title, req.Description)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"place": place})
	}
}

// DeletePlaceHandler deletes a place
func DeletePlaceHandler(places PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "pid")
		if !ok {
			_ = c.Error(apperr.NotFound("Could not find place for this id."))
			return
		}
		if err := places.Delete(c.Request.Context(), id); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted place."})
	}
}
