package models

import "time"

// PhotoNone is the sentinel stored in the photo field until the user
// uploads a picture. Kept as the literal string "null" for
// compatibility with existing profile documents.
const PhotoNone = "null"

// UserProfile is the Firestore document in the userProfile collection.
// The document id always equals the Firebase-assigned user id.
type UserProfile struct {
	UserID       string    `json:"user_id" firestore:"user_id"`
	Email        string    `json:"email" firestore:"email"`
	CreationDate time.Time `json:"creationDate" firestore:"creationDate"`
	Username     string    `json:"username" firestore:"username"`
	Address      string    `json:"address" firestore:"address"`
	Photo        string    `json:"photo" firestore:"photo"`
}
