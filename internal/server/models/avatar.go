package models

// UserAvatar holds a user's single-slot upload references. Each slot holds
// at most one upload at a time and is replaced wholesale; setting one slot
// never alters the other.
type UserAvatar struct {
	UserID string
	// CustomUploadID references the upload filling the "avatar" slot.
	CustomUploadID *int64
	// GravatarUploadID references the upload filling the "gravatar" slot.
	GravatarUploadID *int64
}
