package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table        string
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    string
	UpdatedAt    string

	// UsernameKey is the unique constraint guarding Username.
	UsernameKey string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:        "users",
	ID:           "id",
	Username:     "username",
	PasswordHash: "password_hash",
	Role:         "role",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
	UsernameKey:  "users_username_key",
}

// Columns returns all standard column names, in scan order
func (t UsersTable) Columns() []string {
	return []string{t.ID, t.Username, t.PasswordHash, t.Role, t.CreatedAt, t.UpdatedAt}
}
