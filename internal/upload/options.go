package upload

// Role is the intended use of an upload. Roles drive both the single-slot
// owner linkage (avatar, gravatar) and the image-transform policy.
type Role string

const (
	RoleAvatar      Role = "avatar"
	RoleGravatar    Role = "gravatar"
	RoleCustomEmoji Role = "custom_emoji"
)

// HasSlot reports whether the role occupies a single per-owner slot that
// must be replaced wholesale on each new upload of that role.
func (r Role) HasSlot() bool {
	return r == RoleAvatar || r == RoleGravatar
}

// Options carries per-request processing hints supplied by the caller.
// The zero value means a plain file upload with no special handling.
type Options struct {
	// Type is the intended use of the upload; empty for plain attachments.
	Type Role
	// Pasted marks content pasted directly rather than picked as a file.
	Pasted bool
	// ForceOptimize enables lossy conversion and role-based cropping.
	ForceOptimize bool
}
