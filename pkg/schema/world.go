package schema

import "time"

// Country is a world-geography country, e.g. at/Austria.
type Country struct {
	ID       uint     `gorm:"column:id;primaryKey"`
	Key      string   `gorm:"column:key;not null;uniqueIndex"`
	Title    string   `gorm:"column:title;not null"`
	Synonyms Synonyms `gorm:"column:synonyms"`

	// Code is the three-letter country code, e.g. AUT.
	Code string `gorm:"column:code;not null"`

	// Pop is the population.
	Pop int64 `gorm:"column:pop;not null"`

	// Area in square kilometers.
	Area int64 `gorm:"column:area;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Country.
func (Country) TableName() string { return "countries" }

// Region is a part of a country, e.g. n/Niederösterreich.
type Region struct {
	ID       uint     `gorm:"column:id;primaryKey"`
	Key      string   `gorm:"column:key;not null;index"`
	Title    string   `gorm:"column:title;not null"`
	Synonyms Synonyms `gorm:"column:synonyms"`
	Code     *string  `gorm:"column:code"`

	CountryID uint     `gorm:"column:country_id;not null"`
	Country   *Country `gorm:"foreignKey:CountryID"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Region.
func (Region) TableName() string { return "regions" }

// City is a city or village.
type City struct {
	ID       uint     `gorm:"column:id;primaryKey"`
	Key      string   `gorm:"column:key;not null;index"`
	Title    string   `gorm:"column:title;not null"`
	Synonyms Synonyms `gorm:"column:synonyms"`
	Code     *string  `gorm:"column:code"`

	CountryID uint     `gorm:"column:country_id;not null"`
	Country   *Country `gorm:"foreignKey:CountryID"`

	RegionID *uint   `gorm:"column:region_id"`
	Region   *Region `gorm:"foreignKey:RegionID"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for City.
func (City) TableName() string { return "cities" }
