// Package schema provides database models for WineDB.
// Wine-domain tables reference world-geography tables
// (countries, regions, cities) by foreign key.
package schema

import (
	"time"
)

// Wine is a wine produced by a winery.
// Key is NOT unique on its own: winery key + wine key
// identify a wine, e.g. antonbauer.gruenerveltiner.
type Wine struct {
	ID uint `gorm:"column:id;primaryKey"`

	// Key is the import/export key.
	Key string `gorm:"column:key;not null;index"`

	// Title is the display label.
	Title string `gorm:"column:title;not null"`

	// Synonyms are alternative names.
	Synonyms Synonyms `gorm:"column:synonyms"`

	WineryID *uint   `gorm:"column:winery_id"`
	Winery   *Winery `gorm:"foreignKey:WineryID"`

	// VarietyID is optional for now.
	VarietyID *uint    `gorm:"column:variety_id"`
	Variety   *Variety `gorm:"foreignKey:VarietyID"`

	// Web is an optional URL.
	Web *string `gorm:"column:web"`

	// Since is the year of the first vintage, e.g. 1896.
	Since *int `gorm:"column:since"`

	// Txt is the source reference.
	Txt *string `gorm:"column:txt"`

	// TxtAuto is true if the record got added automatically.
	TxtAuto bool `gorm:"column:txt_auto;not null;default:false"`

	CountryID uint     `gorm:"column:country_id;not null"`
	Country   *Country `gorm:"foreignKey:CountryID"`

	RegionID *uint   `gorm:"column:region_id"`
	Region   *Region `gorm:"foreignKey:RegionID"`

	CityID *uint `gorm:"column:city_id"`
	City   *City `gorm:"foreignKey:CityID"`

	// VineyardID refers to a single vineyard, e.g. Spiegel.
	VineyardID *uint     `gorm:"column:vineyard_id"`
	Vineyard   *Vineyard `gorm:"foreignKey:VineyardID"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Wine.
func (Wine) TableName() string { return "wines" }

// Winery is a wine producer.
type Winery struct {
	ID       uint     `gorm:"column:id;primaryKey"`
	Key      string   `gorm:"column:key;not null;index"`
	Title    string   `gorm:"column:title;not null"`
	Synonyms Synonyms `gorm:"column:synonyms"`
	Address  *string  `gorm:"column:address"`

	// Since is the year the winery was founded.
	Since *int `gorm:"column:since"`

	// Closed is the year the winery closed.
	Closed *int `gorm:"column:closed"`

	// Area of vineyards in hectares.
	Area *int `gorm:"column:area"`

	// Grade is 1 (three stars) to 4 (no stars).
	Grade Grade `gorm:"column:grade;not null;default:4"`

	Txt     *string `gorm:"column:txt"`
	TxtAuto bool    `gorm:"column:txt_auto;not null;default:false"`

	// Web is the home page, e.g. www.weingut-bauer.at.
	Web       *string `gorm:"column:web"`
	Wikipedia *string `gorm:"column:wikipedia"`

	CountryID uint     `gorm:"column:country_id;not null"`
	Country   *Country `gorm:"foreignKey:CountryID"`

	RegionID *uint   `gorm:"column:region_id"`
	Region   *Region `gorm:"foreignKey:RegionID"`

	CityID *uint `gorm:"column:city_id"`
	City   *City `gorm:"foreignKey:CityID"`

	// PersonID is the winemaker (Kellermeister).
	PersonID *uint   `gorm:"column:person_id"`
	Person   *Person `gorm:"foreignKey:PersonID"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Winery.
func (Winery) TableName() string { return "wineries" }

// Vintage is a wine of a particular year.
type Vintage struct {
	ID   uint `gorm:"column:id;primaryKey"`
	Year int  `gorm:"column:year;not null"`

	WineID uint  `gorm:"column:wine_id;not null"`
	Wine   *Wine `gorm:"foreignKey:WineID"`

	// ABV is alcohol by volume in percent, e.g. 12.5.
	ABV *float64 `gorm:"column:abv;type:decimal(5,2)"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Vintage.
func (Vintage) TableName() string { return "vintages" }

// Grape is a grape variety, e.g. Grüner Veltliner.
type Grape struct {
	ID        uint     `gorm:"column:id;primaryKey"`
	Key       string   `gorm:"column:key;not null;index"`
	Title     string   `gorm:"column:title;not null"`
	Synonyms  Synonyms `gorm:"column:synonyms"`
	Red       bool     `gorm:"column:red;not null;default:false"`
	White     bool     `gorm:"column:white;not null;default:false"`
	Wikipedia *string  `gorm:"column:wikipedia"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Grape.
func (Grape) TableName() string { return "grapes" }

// Family is a wine category: red, white, rosé, sparkling,
// dessert, fortified or other.
type Family struct {
	ID       uint     `gorm:"column:id;primaryKey"`
	Key      string   `gorm:"column:key;not null;index"`
	Title    string   `gorm:"column:title;not null"`
	Synonyms Synonyms `gorm:"column:synonyms"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Family.
func (Family) TableName() string { return "families" }

// Variety is either a varietal with one dominant grape (80%+)
// or a cuvee blended from several grapes. Blend components
// are not recorded.
type Variety struct {
	ID       uint     `gorm:"column:id;primaryKey"`
	Key      string   `gorm:"column:key;not null;index"`
	Title    string   `gorm:"column:title;not null"`
	Synonyms Synonyms `gorm:"column:synonyms"`

	FamilyID uint    `gorm:"column:family_id;not null"`
	Family   *Family `gorm:"foreignKey:FamilyID"`

	Cuvee    bool `gorm:"column:cuvee;not null;default:false"`
	Varietal bool `gorm:"column:varietal;not null;default:false"`

	// GrapeID is set only for varietals.
	GrapeID *uint  `gorm:"column:grape_id"`
	Grape   *Grape `gorm:"foreignKey:GrapeID"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Variety.
func (Variety) TableName() string { return "varieties" }

// Vineyard is a single named vineyard, e.g. Spiegel or Rosenberg.
type Vineyard struct {
	ID       uint     `gorm:"column:id;primaryKey"`
	Key      string   `gorm:"column:key;not null;index"`
	Title    string   `gorm:"column:title;not null"`
	Synonyms Synonyms `gorm:"column:synonyms"`

	CityID uint  `gorm:"column:city_id;not null"`
	City   *City `gorm:"foreignKey:CityID"`

	// Area in hectares.
	Area *int `gorm:"column:area"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Vineyard.
func (Vineyard) TableName() string { return "vineyards" }

// Person is a winemaker, e.g. Anton Bauer (1971).
type Person struct {
	ID       uint     `gorm:"column:id;primaryKey"`
	Key      string   `gorm:"column:key;not null;index"`
	Name     string   `gorm:"column:name;not null"`
	Synonyms Synonyms `gorm:"column:synonyms"`

	// BornAt is the date of birth.
	BornAt *time.Time `gorm:"column:born_at;type:date"`

	CityID *uint `gorm:"column:city_id"`
	City   *City `gorm:"foreignKey:CityID"`

	RegionID *uint   `gorm:"column:region_id"`
	Region   *Region `gorm:"foreignKey:RegionID"`

	CountryID *uint    `gorm:"column:country_id"`
	Country   *Country `gorm:"foreignKey:CountryID"`

	// NationalityID refers to a country, it might differ from
	// the country of birth.
	NationalityID *uint    `gorm:"column:nationality_id"`
	Nationality   *Country `gorm:"foreignKey:NationalityID"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Person.
func (Person) TableName() string { return "persons" }
