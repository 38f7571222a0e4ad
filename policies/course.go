package policies

import "eduak/models"

// CanEnroll decides whether user may join course. The duplicate check runs
// first so a repeat request gets a distinguishable rejection.
func CanEnroll(user *models.User, course *models.Course, alreadyEnrolled bool) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if alreadyEnrolled {
		return ErrAlreadyEnrolled
	}
	if user.ID == course.OwnerID {
		return ErrSelfEnroll
	}
	return nil
}

// CanMutate allows updates and deletes of course only to its owner.
func CanMutate(user *models.User, course *models.Course) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if user.ID != course.OwnerID {
		return ErrNotOwner
	}
	return nil
}

// CanView allows the owner and enrolled students to read course content.
func CanView(user *models.User, course *models.Course, enrolled bool) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if user.ID == course.OwnerID || enrolled {
		return nil
	}
	return ErrNotEnrolled
}

// RequireRole rejects users whose role differs from role.
func RequireRole(user *models.User, role models.Role) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if user.Role != role {
		return ErrRoleRequired
	}
	return nil
}
