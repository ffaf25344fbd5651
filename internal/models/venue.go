package models

type Venue struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `gorm:"size:120" json:"city"`
	State              string    `gorm:"size:120" json:"state"`
	Address            string    `gorm:"size:120" json:"address"`
	Phone              string    `gorm:"size:120" json:"phone"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	Website            string    `gorm:"size:120" json:"website"`
	Genres             GenreList `gorm:"type:varchar(120);not null" json:"genres"`
	SeekingTalent      bool      `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"type:text" json:"seeking_description"`

	Shows []Show `gorm:"foreignKey:VenueID" json:"shows,omitempty"`
}
