package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only role with special meaning; any other value is a regular member.
const RoleAdmin = "admin"

// User represents a registered reader or writer
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
	// Extra holds any other field the client stored on the user.
	Extra bson.M             `bson:",inline" json:"-"`
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return marshalWithExtra(plain(u), u.Extra)
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*u = User(p)
	return nil
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
