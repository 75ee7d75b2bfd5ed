package apperr

// Owned is implemented by entities whose mutations are restricted to the user
// that created them.
type Owned interface {
	OwnerID() uint
}

// RequireOwner gates a mutation on ownership. Every update and delete path
// runs through this single check instead of comparing IDs inline.
func RequireOwner(entity Owned, userID uint) error {
	if entity.OwnerID() != userID {
		return Forbidden("권한이 없습니다.")
	}
	return nil
}
