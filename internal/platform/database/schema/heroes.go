package schema

// HeroesTable represents the 'heroes' table
type HeroesTable struct {
	Table     string
	ID        string
	Name      string
	Alias     string
	Powers    string
	CreatedAt string
	UpdatedAt string

	// AliasKey is the unique constraint guarding Alias.
	AliasKey string
}

// Heroes is the schema definition for heroes
var Heroes = HeroesTable{
	Table:     "heroes",
	ID:        "id",
	Name:      "name",
	Alias:     "alias",
	Powers:    "powers",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
	AliasKey:  "heroes_alias_key",
}

// Columns returns all standard column names, in scan order
func (t HeroesTable) Columns() []string {
	return []string{t.ID, t.Name, t.Alias, t.Powers, t.CreatedAt, t.UpdatedAt}
}

// SearchColumns returns the columns matched by the free-text search
func (t HeroesTable) SearchColumns() []string {
	return []string{t.Name, t.Alias, t.Powers}
}
