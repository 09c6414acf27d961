package authorization

// CanAccessResourceByOwnerID lets admins through and otherwise requires ownership.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
