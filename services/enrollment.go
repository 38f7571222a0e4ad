package services

import (
	"eduak/models"
	"eduak/policies"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindCourse loads a course with its owner and subject.
func FindCourse(db *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	err := db.Preload("Owner").Preload("Subject").First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, policies.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// IsEnrolled reports whether userID is in the student set of courseID.
func IsEnrolled(db *gorm.DB, courseID, userID uint) (bool, error) {
	var n int64
	err := db.Model(&models.CourseStudent{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&n).Error
	return n > 0, err
}

// Enroll adds user to the course's students. Checks run in the order
// course exists, caller authenticated, not enrolled, not owner. The insert is
// conditional on the (course, user) key so a racing duplicate request still
// ends as ErrAlreadyEnrolled instead of a second success.
func Enroll(db *gorm.DB, user *models.User, courseID uint) (*models.Course, error) {
	course, err := FindCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, policies.ErrUnauthenticated
	}

	enrolled, err := IsEnrolled(db, course.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if err := policies.CanEnroll(user, course, enrolled); err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.CourseStudent{CourseID: course.ID, UserID: user.ID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return policies.ErrAlreadyEnrolled
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// EnrolledCourses pages through the courses userID is enrolled in, newest
// enrollment first.
func EnrolledCourses(db *gorm.DB, userID uint, limit, offset int) ([]models.Course, int64, error) {
	q := db.Model(&models.Course{}).
		Joins("JOIN course_students ON course_students.course_id = courses.id").
		Where("course_students.user_id = ?", userID).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []models.Course
	err := q.Select("courses.*").Preload("Owner").Preload("Subject").
		Order("course_students.created_at desc").Order("courses.id desc").
		Limit(limit).Offset(offset).
		Find(&courses).Error
	return courses, total, err
}
