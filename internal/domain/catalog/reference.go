package catalog

// Developer, Genre and Platform are reference tables: a unique name and the
// games that point at them. Removing a row removes its games.

type Developer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex:idx_developers_name" json:"name"`

	Games []Game `gorm:"foreignKey:DeveloperID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Developer) TableName() string { return "developers" }

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex:idx_genres_name" json:"name"`

	Games []Game `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Genre) TableName() string { return "genres" }

type Platform struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex:idx_platforms_name" json:"name"`

	Games []Game `gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Platform) TableName() string { return "platforms" }

// Reference is the {id, name} shape shared by the three reference tables.
type Reference struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Kind string

const (
	KindDeveloper Kind = "developer"
	KindGenre     Kind = "genre"
	KindPlatform  Kind = "platform"
)

func (k Kind) Table() string {
	switch k {
	case KindDeveloper:
		return "developers"
	case KindGenre:
		return "genres"
	case KindPlatform:
		return "platforms"
	}
	return ""
}

// GameColumn is the games column holding the foreign key to this kind.
func (k Kind) GameColumn() string {
	return string(k) + "_id"
}
