package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
	testutil "github.com/jmstudio/fitmanage/tests"
)

func TestBackupAPI(t *testing.T) {
	acct := testutil.CreateStaff(t, staffRepo, "Admin", "backup", "backup@test.cd", "pwd", true)
	token := getToken(t, acct)

	s := testutil.CreateStudent(t, studentRepo, "Exported", "1", "05:00", 100, 5, student.StatusActive)
	tch := testutil.CreateTeacher(t, teacherRepo, "Coach", "crossfit", "2", 2000)

	t.Run("export", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/backup/export", token)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "backup.json")

		var payload BackupPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.NotEmpty(t, payload.Students)
		require.NotEmpty(t, payload.Teachers)
		assert.Equal(t, tch.Name, payload.Teachers[0].Name)
	})

	t.Run("partial payload rejected", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/backup/import", token, []byte(`{"students":[]}`))
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("records without ids rejected", func(t *testing.T) {
		body := []byte(`{"students":[{"name":"NoID"}],"teachers":[]}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/backup/import", token, body)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("import replaces both rosters", func(t *testing.T) {
		body := marchallObj(t, BackupPayload{
			Students: []student.Student{{ID: "imp-1", Name: "Imported", Phone: "3", BillingDay: 5, Status: student.StatusActive}},
			Teachers: []teacher.Teacher{},
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/backup/import", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		students, err := studentSvc.QueryAll()
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, "Imported", students[0].Name)

		_, err = studentSvc.GetByID(s.ID)
		assert.Equal(t, student.ErrNotFound, err)

		teachers, err := teacherRepo.QueryAllTeachers()
		require.NoError(t, err)
		assert.Empty(t, teachers)
	})
}
