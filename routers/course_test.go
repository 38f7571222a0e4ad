package routers

import (
	"eduak/models"
	"eduak/testutil"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := NewApp(true)

	alice := testutil.CreateUser(t, db, "alice", models.RoleTeacher, true)
	bob := testutil.CreateUser(t, db, "bob", models.RoleTeacher, true)
	golang := testutil.CreateSubject(t, db, "Go", "go")
	rust := testutil.CreateSubject(t, db, "Rust", "rust")
	testutil.CreateSubject(t, db, "Empty", "empty")

	concurrency := testutil.CreateCourse(t, db, alice, golang, "Concurrency in Go", "Channels and goroutines")
	testutil.CreateCourse(t, db, alice, golang, "Web services", "Building HTTP APIs with fiber")
	testutil.CreateCourse(t, db, bob, rust, "Ownership", "Borrowing and lifetimes explained")
	testutil.CreateModule(t, db, concurrency, "Second", 2)
	testutil.CreateModule(t, db, concurrency, "First", 1)

	t.Run("subjects", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, "/subjects/", nil, "")
		require.Equal(t, http.StatusOK, status)
		var subjects []struct {
			Slug         string `json:"slug"`
			TotalCourses int64  `json:"total_courses"`
		}
		p := decodePage(t, env, &subjects)
		assert.EqualValues(t, 3, p.Count)
		totals := map[string]int64{}
		for _, s := range subjects {
			totals[s.Slug] = s.TotalCourses
		}
		assert.Equal(t, map[string]int64{"go": 2, "rust": 1, "empty": 0}, totals)
	})

	t.Run("subject detail", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, "/subjects/go/", nil, "")
		require.Equal(t, http.StatusOK, status)
		var detail struct {
			Subject string `json:"subject"`
			Courses page   `json:"courses"`
		}
		decode(t, env.Data, &detail)
		assert.Equal(t, "Go", detail.Subject)
		assert.EqualValues(t, 2, detail.Courses.Count)

		status, _ = call(t, app, http.MethodGet, "/subjects/cobol/", nil, "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("filter by subject slug", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, "/courses/?subject__slug=rust", nil, "")
		require.Equal(t, http.StatusOK, status)
		var courses []courseBody
		decodePage(t, env, &courses)
		assert.Equal(t, []string{"Ownership"}, courseTitles(courses))
	})

	t.Run("filter by owner name", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, "/courses/?owner__name=alice&ordering=title", nil, "")
		require.Equal(t, http.StatusOK, status)
		var courses []courseBody
		decodePage(t, env, &courses)
		assert.Equal(t, []string{"Concurrency in Go", "Web services"}, courseTitles(courses))
	})

	t.Run("search matches title or overview", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, "/courses/?search=GOROUTINES", nil, "")
		require.Equal(t, http.StatusOK, status)
		var courses []courseBody
		decodePage(t, env, &courses)
		assert.Equal(t, []string{"Concurrency in Go"}, courseTitles(courses))

		status, env = call(t, app, http.MethodGet, "/courses/?search=http+fiber", nil, "")
		require.Equal(t, http.StatusOK, status)
		decodePage(t, env, &courses)
		assert.Equal(t, []string{"Web services"}, courseTitles(courses))

		status, env = call(t, app, http.MethodGet, "/courses/?search=http+lifetimes", nil, "")
		require.Equal(t, http.StatusOK, status)
		decodePage(t, env, &courses)
		assert.Empty(t, courses)
	})

	t.Run("ordering", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, "/courses/?ordering=-title", nil, "")
		require.Equal(t, http.StatusOK, status)
		var courses []courseBody
		decodePage(t, env, &courses)
		assert.Equal(t, []string{"Web services", "Ownership", "Concurrency in Go"}, courseTitles(courses))

		status, env = call(t, app, http.MethodGet, "/courses/?ordering=bogus,title", nil, "")
		require.Equal(t, http.StatusOK, status)
		decodePage(t, env, &courses)
		assert.Equal(t, []string{"Concurrency in Go", "Ownership", "Web services"}, courseTitles(courses))
	})

	t.Run("pagination", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, "/courses/?size=1&index=1&ordering=title", nil, "")
		require.Equal(t, http.StatusOK, status)
		var courses []courseBody
		p := decodePage(t, env, &courses)
		assert.EqualValues(t, 3, p.Count)
		assert.Equal(t, 1, p.Limit)
		assert.Equal(t, 1, p.Offset)
		assert.Equal(t, []string{"Ownership"}, courseTitles(courses))
	})

	t.Run("course detail lists modules in order", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, fmt.Sprintf("/courses/%d/", concurrency.ID), nil, "")
		require.Equal(t, http.StatusOK, status)
		var course courseBody
		decode(t, env.Data, &course)
		assert.Equal(t, "alice", course.Owner.Name)
		assert.Equal(t, "go", course.Subject.Slug)
		assert.EqualValues(t, 2, course.TotalModules)
		require.Len(t, course.Modules, 2)
		assert.Equal(t, "First", course.Modules[0].Title)
		assert.Equal(t, "Second", course.Modules[1].Title)

		status, _ = call(t, app, http.MethodGet, "/courses/9999/", nil, "")
		assert.Equal(t, http.StatusNotFound, status)
		status, _ = call(t, app, http.MethodGet, "/courses/abc/", nil, "")
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestTeacherCourses(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := NewApp(true)

	alice := testutil.CreateUser(t, db, "alice", models.RoleTeacher, true)
	bob := testutil.CreateUser(t, db, "bob", models.RoleTeacher, true)
	sam := testutil.CreateUser(t, db, "sam", models.RoleStudent, true)
	golang := testutil.CreateSubject(t, db, "Go", "go")
	asAlice := testutil.AuthHeader(t, alice)
	asBob := testutil.AuthHeader(t, bob)

	status, _ := call(t, app, http.MethodGet, "/teacher/courses/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = call(t, app, http.MethodGet, "/teacher/courses/", nil, testutil.AuthHeader(t, sam))
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, app, http.MethodPost, "/teacher/courses/create/", map[string]interface{}{
		"subject": 999, "title": "Nowhere",
	}, asAlice)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodPost, "/teacher/courses/create/", map[string]interface{}{
		"subject": golang.ID,
	}, asAlice)
	assert.Equal(t, http.StatusBadRequest, status, "title is required")

	status, env := call(t, app, http.MethodPost, "/teacher/courses/create/", map[string]interface{}{
		"subject": golang.ID, "title": "Go basics", "overview": "Types and functions",
	}, asAlice)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var created courseBody
	decode(t, env.Data, &created)
	assert.Equal(t, alice.ID, created.Owner.ID)
	assert.NotNil(t, created.Modules)

	coursePath := fmt.Sprintf("/teacher/courses/%d/", created.ID)

	status, env = call(t, app, http.MethodGet, "/teacher/courses/", nil, asAlice)
	require.Equal(t, http.StatusOK, status)
	var own []courseBody
	decode(t, env.Data, &own)
	assert.Equal(t, []string{"Go basics"}, courseTitles(own))

	status, env = call(t, app, http.MethodGet, "/teacher/courses/", nil, asBob)
	require.Equal(t, http.StatusOK, status)
	decode(t, env.Data, &own)
	assert.Empty(t, own)

	t.Run("non-owner cannot read or mutate", func(t *testing.T) {
		status, _ := call(t, app, http.MethodGet, coursePath, nil, asBob)
		assert.Equal(t, http.StatusForbidden, status)
		status, _ = call(t, app, http.MethodPut, coursePath, map[string]interface{}{
			"subject": golang.ID, "title": "Hijacked",
		}, asBob)
		assert.Equal(t, http.StatusForbidden, status)
		// ownership is decided before the body is looked at
		status, _ = call(t, app, http.MethodPut, coursePath+"update/", map[string]interface{}{}, asBob)
		assert.Equal(t, http.StatusForbidden, status)
		status, _ = call(t, app, http.MethodDelete, coursePath+"delete/", nil, asBob)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("owner updates", func(t *testing.T) {
		status, env := call(t, app, http.MethodPut, coursePath, map[string]interface{}{
			"subject": golang.ID, "title": "Go fundamentals", "overview": "Updated",
		}, asAlice)
		require.Equal(t, http.StatusOK, status, env.Message)
		var course courseBody
		decode(t, env.Data, &course)
		assert.Equal(t, "Go fundamentals", course.Title)

		status, env = call(t, app, http.MethodPut, coursePath+"update/", map[string]interface{}{
			"subject": golang.ID, "title": "Go, again",
		}, asAlice)
		require.Equal(t, http.StatusOK, status, env.Message)

		status, _ = call(t, app, http.MethodPut, coursePath, map[string]interface{}{
			"subject": 999, "title": "Go, again",
		}, asAlice)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("modules", func(t *testing.T) {
		modulesPath := coursePath + "modules/"
		status, env := call(t, app, http.MethodPost, modulesPath+"create/", map[string]interface{}{"title": "Intro"}, asAlice)
		require.Equal(t, http.StatusCreated, status, env.Message)
		var intro struct {
			ID    uint `json:"id"`
			Order int  `json:"order"`
		}
		decode(t, env.Data, &intro)
		assert.Equal(t, 0, intro.Order)

		status, env = call(t, app, http.MethodPost, modulesPath+"create/", map[string]interface{}{"title": "Types"}, asAlice)
		require.Equal(t, http.StatusCreated, status)
		var types struct {
			ID    uint `json:"id"`
			Order int  `json:"order"`
		}
		decode(t, env.Data, &types)
		assert.Equal(t, 1, types.Order)

		status, _ = call(t, app, http.MethodPost, modulesPath+"create/", map[string]interface{}{"title": "Nope"}, asBob)
		assert.Equal(t, http.StatusForbidden, status)

		status, _ = call(t, app, http.MethodPut, fmt.Sprintf("%s%d/", modulesPath, intro.ID), map[string]interface{}{
			"title": "Introduction", "order": 5,
		}, asAlice)
		require.Equal(t, http.StatusOK, status)

		status, env = call(t, app, http.MethodGet, modulesPath, nil, asAlice)
		require.Equal(t, http.StatusOK, status)
		var modules []struct {
			Title string `json:"title"`
		}
		decode(t, env.Data, &modules)
		require.Len(t, modules, 2)
		assert.Equal(t, "Types", modules[0].Title)
		assert.Equal(t, "Introduction", modules[1].Title)

		status, _ = call(t, app, http.MethodDelete, fmt.Sprintf("%s%d/delete/", modulesPath, types.ID), nil, asAlice)
		assert.Equal(t, http.StatusNoContent, status)
		status, _ = call(t, app, http.MethodDelete, fmt.Sprintf("%s%d/delete/", modulesPath, types.ID), nil, asAlice)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("owner deletes", func(t *testing.T) {
		status, _ := call(t, app, http.MethodDelete, coursePath+"delete/", nil, asAlice)
		assert.Equal(t, http.StatusNoContent, status)

		status, _ = call(t, app, http.MethodGet, coursePath, nil, asAlice)
		assert.Equal(t, http.StatusNotFound, status)
		status, _ = call(t, app, http.MethodDelete, coursePath+"delete/", nil, asAlice)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestEnrollment(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := NewApp(true)

	alice := testutil.CreateUser(t, db, "alice", models.RoleTeacher, true)
	sam := testutil.CreateUser(t, db, "sam", models.RoleStudent, true)
	kim := testutil.CreateUser(t, db, "kim", models.RoleStudent, true)
	golang := testutil.CreateSubject(t, db, "Go", "go")
	course := testutil.CreateCourse(t, db, alice, golang, "Go basics", "Types")
	other := testutil.CreateCourse(t, db, alice, golang, "Go advanced", "Generics")
	asSam := testutil.AuthHeader(t, sam)

	enrollPath := fmt.Sprintf("/student/courses/%d/enroll/", course.ID)

	status, _ := call(t, app, http.MethodPost, "/student/courses/9999/enroll/", nil, "")
	assert.Equal(t, http.StatusNotFound, status, "a missing course is reported before a missing login")

	status, _ = call(t, app, http.MethodPost, enrollPath, nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, http.MethodPost, enrollPath, nil, testutil.AuthHeader(t, alice))
	assert.Equal(t, http.StatusBadRequest, status, "owners cannot enroll in their own course")

	status, _ = call(t, app, http.MethodGet, fmt.Sprintf("/student/courses/%d/", course.ID), nil, asSam)
	assert.Equal(t, http.StatusForbidden, status)

	status, env := call(t, app, http.MethodPost, enrollPath, nil, asSam)
	require.Equal(t, http.StatusOK, status, env.Message)

	status, _ = call(t, app, http.MethodPost, enrollPath, nil, asSam)
	assert.Equal(t, http.StatusBadRequest, status, "enrolling twice is rejected")

	var rows int64
	db.Model(&models.CourseStudent{}).Where("course_id = ?", course.ID).Count(&rows)
	assert.EqualValues(t, 1, rows)

	status, _ = call(t, app, http.MethodGet, fmt.Sprintf("/student/courses/%d/", course.ID), nil, asSam)
	assert.Equal(t, http.StatusOK, status)

	testutil.Enroll(t, db, other, sam)
	testutil.Enroll(t, db, course, kim)

	status, _ = call(t, app, http.MethodGet, "/student/courses/enrolled/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = call(t, app, http.MethodGet, "/student/courses/enrolled/", nil, asSam)
	require.Equal(t, http.StatusOK, status)
	var courses []courseBody
	p := decodePage(t, env, &courses)
	assert.EqualValues(t, 2, p.Count)
	assert.ElementsMatch(t, []string{"Go basics", "Go advanced"}, courseTitles(courses))
	for _, c := range courses {
		if c.ID == course.ID {
			assert.EqualValues(t, 2, c.TotalStudents)
		}
	}

	status, env = call(t, app, http.MethodGet, "/student/courses/enrolled/?size=1", nil, asSam)
	require.Equal(t, http.StatusOK, status)
	p = decodePage(t, env, &courses)
	assert.EqualValues(t, 2, p.Count)
	assert.Len(t, courses, 1)
}
