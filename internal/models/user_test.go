package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid user",
			user:    User{Email: "test@example.com"},
			wantErr: false,
		},
		{
			name:    "invalid email",
			user:    User{Email: "invalid-email"},
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name:    "empty email",
			user:    User{Email: ""},
			wantErr: true,
			errMsg:  "email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_OwnerKey(t *testing.T) {
	id := uuid.New()
	user := User{ID: id, Email: "test@example.com"}

	assert.Equal(t, "user:"+id.String(), user.OwnerKey())
}

func TestUser_UpdateLastLogin(t *testing.T) {
	user := User{Email: "test@example.com"}
	assert.Nil(t, user.LastLoginAt)

	user.UpdateLastLogin()
	assert.NotNil(t, user.LastLoginAt)
}

func TestOwner_Local(t *testing.T) {
	local := NewLocalOwner("browser-1")
	got, ok := local.Local()
	assert.True(t, ok)
	assert.Equal(t, "client:browser-1", got.Key)

	remote := NewRemoteOwner(uuid.New())
	_, ok = remote.Local()
	assert.False(t, ok)

	remote.LocalKey = LocalOwnerKey("browser-1")
	got, ok = remote.Local()
	assert.True(t, ok)
	assert.Equal(t, "client:browser-1", got.Key)
	assert.False(t, got.Remote)
}
