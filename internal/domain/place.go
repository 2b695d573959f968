package domain

// Location is a geocoded coordinate pair
type Location struct {
	Lat float64 `json:"lat"` // Latitude
	Lng float64 `json:"lng"` // Longitude
}

// Place Model
type Place struct {
	ID          uint     `gorm:"primaryKey" json:"id"`                                      // Primary key
	Title       string   `gorm:"not null" json:"title"`                                     // Title
	Description string   `gorm:"type:text" json:"description"`                              // Free text description
	Address     string   `gorm:"not null" json:"address"`                                   // Street address as submitted
	Image       string   `json:"image"`                                                     // Image URL
	Location    Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`         // Resolved coordinates
	CreatorID   uint     `gorm:"not null;index" json:"creator"`                             // Foreign key to the owning User
	Creator     *User    `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"` // Owning user
}
