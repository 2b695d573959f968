package service

import (
	"context" // Request scoped operations
	"errors"  // Error inspection

	"places_api/internal/apperr"  // Classified HTTP errors
	"places_api/internal/domain"  // Importing domain models
	"places_api/internal/geocode" // Address resolution

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// PlaceImage is stored on every new place until uploads exist
const PlaceImage = "https://www.darslah.com/wp-content/uploads/minis-briks.jpg"

// CreatePlaceInput holds the fields a new place is built from
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	CreatorID   uint
}

// PlaceService reads and writes places and keeps each creator's place list in sync
type PlaceService struct {
	DB       *gorm.DB
	Geocoder geocode.Geocoder
}

// NewPlaceService creates a PlaceService
func NewPlaceService(db *gorm.DB, geocoder geocode.Geocoder) *PlaceService {
	return &PlaceService{DB: db, Geocoder: geocoder}
}

// GetByID returns a single place
func (s *PlaceService) GetByID(ctx context.Context, id uint) (*domain.Place, error) {
	var place domain.Place
	if err := s.DB.WithContext(ctx).First(&place, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Could not find a place for the provided id.")
		}
		return nil, apperr.Internal("Something went wrong, could not find a place.", err)
	}
	return &place, nil
}

// GetByUser returns the places in a user's place list
func (s *PlaceService) GetByUser(ctx context.Context, userID uint) ([]domain.Place, error) {
	var user domain.User
	err := s.DB.WithContext(ctx).Preload("Places").First(&user, userID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("Fetching places failed, please try again later.", err)
	}
	if err != nil || len(user.Places) == 0 {
		return nil, apperr.NotFound("Could not find places for the provided user id.")
	}
	return user.Places, nil
}

// Create geocodes the address and stores the place together with its entry in the creator's place list
func (s *PlaceService) Create(ctx context.Context, in CreatePlaceInput) (*domain.Place, error) {
	location, err := s.Geocoder.Geocode(ctx, in.Address)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResults) {
			return nil, apperr.NotFound("Could not find location for the specified address.")
		}
		logrus.WithFields(logrus.Fields{
			"address": in.Address,
			"error":   err.Error(),
		}).Error("Geocoding failed")
		return nil, apperr.Internal("Could not resolve the address, please try again later.", err)
	}

	place := domain.Place{
		Title:       in.Title,       // Place title
		Description: in.Description, // Place description
		Address:     in.Address,     // Address as submitted
		Location:    location,       // Geocoded coordinates
		Image:       PlaceImage,     // Placeholder image
		CreatorID:   in.CreatorID,   // Owning user
	}

	var user domain.User // Creator must exist before anything is written
	if err := s.DB.WithContext(ctx).First(&user, in.CreatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Could not find user for provided id.")
		}
		return nil, apperr.Internal("Creating place failed, please try again.", err)
	}

	// Place row and place list entry commit together
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Save the place
		if err := tx.Omit("Creator").Create(&place).Error; err != nil {
			return err // Return error to rollback
		}
		// Append it to the creator's place list and persist the user
		return tx.Model(&user).Association("Places").Append(&place)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"creator_id": in.CreatorID, // Creator user ID
			"title":      in.Title,     // Place title
			"error":      err.Error(),  // Error message
		}).Error("Create place failed")
		return nil, apperr.Internal("Creating place failed, please try again.", err)
	}

	logrus.WithFields(logrus.Fields{
		"place_id":   place.ID,           // New place ID
		"creator_id": in.CreatorID,       // Creator user ID
		"lat":        place.Location.Lat, // Latitude
		"lng":        place.Location.Lng, // Longitude
	}).Info("Place created")
	return &place, nil
}

// Update changes the title and description of a place
func (s *PlaceService) Update(ctx context.Context, id uint, title, description string) (*domain.Place, error) {
	place, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.DB.WithContext(ctx).Model(place).Updates(map[string]any{
		"title":       title,
		"description": description,
	}).Error
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"place_id": id,
			"error":    err.Error(),
		}).Error("Update place failed")
		return nil, apperr.Internal("Something went wrong, could not update place.", err)
	}
	place.Title = title
	place.Description = description
	return place, nil
}

// Delete removes a place and its entry in the creator's place list
func (s *PlaceService) Delete(ctx context.Context, id uint) error {
	var place domain.Place
	if err := s.DB.WithContext(ctx).Preload("Creator").First(&place, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Could not find place for this id.")
		}
		return apperr.Internal("Something went wrong, could not delete place.", err)
	}
	if place.Creator == nil {
		return apperr.NotFound("Could not find the creator of this place.")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Pull the place from the creator's place list
		if err := tx.Model(place.Creator).Association("Places").Delete(&place); err != nil {
			return err // Return error to rollback
		}
		// Remove the place itself
		return tx.Delete(&domain.Place{}, place.ID).Error
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"place_id":   id,              // Place ID
			"creator_id": place.CreatorID, // Creator user ID
			"error":      err.Error(),     // Error message
		}).Error("Delete place failed")
		return apperr.Internal("Something went wrong, could not delete place.", err)
	}

	logrus.WithFields(logrus.Fields{
		"place_id":   id,              // Place ID
		"creator_id": place.CreatorID, // Creator user ID
	}).Info("Place deleted")
	return nil
}
