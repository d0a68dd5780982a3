package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_IsAdmin(t *testing.T) {
	var nilUser *UserProfile
	assert.False(t, nilUser.IsAdmin())
	assert.False(t, (&UserProfile{Role: "user"}).IsAdmin())
	assert.True(t, (&UserProfile{Role: "admin"}).IsAdmin())
}

func TestUserProfile_Clone(t *testing.T) {
	var nilUser *UserProfile
	assert.Nil(t, nilUser.Clone())

	u := &UserProfile{Name: "Alice", Email: "a@b.c", Role: "user"}
	c := u.Clone()
	c.Name = "Mallory"
	assert.Equal(t, "Alice", u.Name)
}
