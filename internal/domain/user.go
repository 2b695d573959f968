package domain

// User Model
type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`                                            // Primary key
	Name     string  `gorm:"not null" json:"name"`                                            // Display name
	Email    string  `gorm:"uniqueIndex;size:255;not null" json:"email"`                      // Unique email, case-sensitive
	Image    string  `json:"image"`                                                           // Avatar URL
	Password string  `gorm:"not null" json:"-"`                                               // Bcrypt hash, never serialized
	Places   []Place `gorm:"many2many:user_places;constraint:OnDelete:CASCADE" json:"places"` // Places owned by this user
}
