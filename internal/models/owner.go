package models

import (
	"github.com/google/uuid"
)

type contextKey string

// RequestIDContextKey carries the request trace id through context.Context.
const RequestIDContextKey contextKey = "request_id"

// Owner identifies whose subscription state a request reads and writes.
// Signed-in users are remote owners; signed-out browsers are local owners
// keyed by the client id they send.
type Owner struct {
	Key    string
	Remote bool
	UserID *uuid.UUID

	// LocalKey is set when a signed-in request also carries a client id, so
	// preferences chosen before sign-in can be folded into the remote copy.
	LocalKey string
}

func RemoteOwnerKey(userID uuid.UUID) string {
	return "user:" + userID.String()
}

func LocalOwnerKey(clientID string) string {
	return "client:" + clientID
}

func NewRemoteOwner(userID uuid.UUID) Owner {
	id := userID
	return Owner{Key: RemoteOwnerKey(userID), Remote: true, UserID: &id}
}

func NewLocalOwner(clientID string) Owner {
	return Owner{Key: LocalOwnerKey(clientID)}
}

func (o Owner) IsZero() bool {
	return o.Key == ""
}

// Local returns the signed-out owner attached to this request, if any.
func (o Owner) Local() (Owner, bool) {
	if !o.Remote {
		return o, true
	}
	if o.LocalKey == "" {
		return Owner{}, false
	}
	return Owner{Key: o.LocalKey}, true
}
