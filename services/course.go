package services

import (
	"database/sql"
	"eduak/models"
	"eduak/policies"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CourseQuery carries the catalog filters.
type CourseQuery struct {
	SubjectSlug string
	OwnerName   string
	Search      string
	Ordering    string
}

// orderingColumns lists the fields a client may sort by.
var orderingColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"overview":   "overview",
	"created":    "created_at",
	"created_at": "created_at",
	"updated":    "updated_at",
	"updated_at": "updated_at",
	"subject":    "subject_id",
	"owner":      "owner_id",
}

// OrderBy turns "-created,title" into order columns. Unknown fields are
// skipped; an empty result falls back to newest first.
func OrderBy(ordering string) []clause.OrderByColumn {
	var cols []clause.OrderByColumn
	for _, field := range strings.Split(ordering, ",") {
		field = strings.TrimSpace(field)
		desc := strings.HasPrefix(field, "-")
		name, ok := orderingColumns[strings.TrimPrefix(field, "-")]
		if !ok {
			continue
		}
		cols = append(cols, clause.OrderByColumn{
			Column: clause.Column{Table: "courses", Name: name},
			Desc:   desc,
		})
	}
	if len(cols) == 0 {
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Table: "courses", Name: "created_at"}, Desc: true})
	}
	return cols
}

// likeEscaper makes LIKE wildcards in search terms match literally. The
// escape character is '!' because MySQL treats a backslash literal as an escape.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// FilterCourses applies subject, owner and search filters to db.
func FilterCourses(db *gorm.DB, q CourseQuery) *gorm.DB {
	if q.SubjectSlug != "" {
		db = db.Where("courses.subject_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Model(&models.Subject{}).Select("id").Where("slug = ?", q.SubjectSlug))
	}
	if q.OwnerName != "" {
		db = db.Where("courses.owner_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Model(&models.User{}).Select("id").Where("name = ?", q.OwnerName))
	}
	// every term must appear in title or overview
	for _, term := range strings.Fields(q.Search) {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		db = db.Where("LOWER(courses.title) LIKE ? ESCAPE '!' OR LOWER(courses.overview) LIKE ? ESCAPE '!'", pattern, pattern)
	}
	return db
}

// ListCourses returns one page of the filtered catalog and the total match count.
func ListCourses(db *gorm.DB, q CourseQuery, limit, offset int) ([]models.Course, int64, error) {
	base := FilterCourses(db.Model(&models.Course{}), q).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := base.Preload("Owner").Preload("Subject")
	for _, col := range OrderBy(q.Ordering) {
		tx = tx.Order(col)
	}
	var courses []models.Course
	err := tx.Limit(limit).Offset(offset).Find(&courses).Error
	return courses, total, err
}

// CourseWithModules loads a course with owner, subject and ordered modules.
func CourseWithModules(db *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	err := db.Preload("Owner").Preload("Subject").
		Preload("Modules", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc").Order("id asc") }).
		First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, policies.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Counts holds the derived totals shown next to a course.
type Counts struct {
	Students int64
	Modules  int64
}

type countRow struct {
	ID uint
	N  int64
}

// CourseCounts returns student and module totals keyed by course id.
func CourseCounts(db *gorm.DB, ids []uint) (map[uint]Counts, error) {
	out := make(map[uint]Counts, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var students []countRow
	if err := db.Model(&models.CourseStudent{}).
		Select("course_id AS id, COUNT(*) AS n").
		Where("course_id IN ?", ids).Group("course_id").
		Scan(&students).Error; err != nil {
		return nil, err
	}
	var modules []countRow
	if err := db.Model(&models.Module{}).
		Select("course_id AS id, COUNT(*) AS n").
		Where("course_id IN ?", ids).Group("course_id").
		Scan(&modules).Error; err != nil {
		return nil, err
	}

	for _, r := range students {
		c := out[r.ID]
		c.Students = r.N
		out[r.ID] = c
	}
	for _, r := range modules {
		c := out[r.ID]
		c.Modules = r.N
		out[r.ID] = c
	}
	return out, nil
}

// SubjectCourseCounts returns the number of courses per subject id.
func SubjectCourseCounts(db *gorm.DB, ids []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []countRow
	if err := db.Model(&models.Course{}).
		Select("subject_id AS id, COUNT(*) AS n").
		Where("subject_id IN ?", ids).Group("subject_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.N
	}
	return out, nil
}

// FindSubjectBySlug returns policies.ErrSubjectNotFound for an unknown slug.
func FindSubjectBySlug(db *gorm.DB, slug string) (*models.Subject, error) {
	var subject models.Subject
	err := db.Where("slug = ?", slug).First(&subject).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, policies.ErrSubjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// NextModuleOrder returns the position after the last module of courseID.
func NextModuleOrder(db *gorm.DB, courseID uint) (int, error) {
	var last sql.NullInt64
	err := db.Model(&models.Module{}).
		Select("MAX(position)").
		Where("course_id = ?", courseID).
		Row().Scan(&last)
	if err != nil {
		return 0, err
	}
	if !last.Valid {
		return 0, nil
	}
	return int(last.Int64) + 1, nil
}
