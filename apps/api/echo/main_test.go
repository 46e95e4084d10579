package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/company"
	"github.com/jmstudio/fitmanage/core/expense"
	"github.com/jmstudio/fitmanage/core/staff"
	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
	emailsvc "github.com/jmstudio/fitmanage/services/email"
	workoutsvc "github.com/jmstudio/fitmanage/services/workout"
	dummydb "github.com/jmstudio/fitmanage/storage/database/dummy"
)

var (
	app Server

	studentRepo student.Repository
	teacherRepo teacher.Repository
	staffRepo   staff.Repository

	studentSvc *student.Service
	staffSvc   *staff.Service
	planGen    *workoutsvc.DummyService

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func TestMain(m *testing.M) {
	core.Conf.Debug = false
	core.Conf.TestMode = true

	// set up DB & repos
	db, _ := dummydb.Open()
	studentRepo = dummydb.NewStudentRepository(db)
	teacherRepo = dummydb.NewTeacherRepository(db)
	staffRepo = dummydb.NewStaffRepository(db)

	// set up services
	planGen = workoutsvc.NewDummyService()
	studentSvc = student.NewService(studentRepo, planGen)
	staffSvc = staff.NewService(staffRepo)
	mailSvc := emailsvc.NewConsoleServiceMock()

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)

	// set up server
	app = NewServer(
		"", /* addr */
		ServerDeps{
			Logger:     nopLogger{},
			Validate:   validate,
			Translator: translator,
			StudentSvc: studentSvc,
			TeacherSvc: teacher.NewService(teacherRepo),
			ExpenseSvc: expense.NewService(dummydb.NewExpenseRepository(db)),
			StaffSvc:   staffSvc,
			CompanySvc: company.NewService(dummydb.NewCompanyRepository(db)),
			EmailSvc:   mailSvc,
		},
	)

	os.Exit(m.Run())
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, acct staff.Account) string {
	claims := GetStaffClaims(acct)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
