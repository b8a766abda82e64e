package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/agendafacil/agenda-api/internal/audit"
	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"

	guardpkg "github.com/agendafacil/agenda-api/internal/guard"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testContext monta um contexto gin com corpo JSON pronto para bind.
func testContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}

func setParams(c *gin.Context, pairs ...string) {
	for i := 0; i < len(pairs); i += 2 {
		c.Params = append(c.Params, gin.Param{Key: pairs[i], Value: pairs[i+1]})
	}
}

// --------- Audit ---------

type recordingAudit struct {
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

func (r *recordingAudit) lastAction(t *testing.T) string {
	t.Helper()
	if len(r.events) == 0 {
		t.Fatal("nenhum evento de auditoria registrado")
	}
	return r.events[len(r.events)-1].Action
}

// --------- Stores ---------

type mockUserStore struct {
	list        func(ctx context.Context) ([]models.User, error)
	findByID    func(ctx context.Context, id string) (*models.User, error)
	findByEmail func(ctx context.Context, email string) (*models.User, error)
	create      func(ctx context.Context, user *models.User) error
	update      func(ctx context.Context, user *models.User) error
	delete      func(ctx context.Context, id string) error
}

func (m *mockUserStore) List(ctx context.Context) ([]models.User, error) {
	return m.list(ctx)
}

func (m *mockUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return m.findByID(ctx, id)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmail(ctx, email)
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	return m.create(ctx, user)
}

func (m *mockUserStore) Update(ctx context.Context, user *models.User) error {
	return m.update(ctx, user)
}

func (m *mockUserStore) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

type mockClientStore struct {
	listByUser func(ctx context.Context, userID string) ([]models.Client, error)
	findByID   func(ctx context.Context, userID, clientID string) (*models.Client, error)
	create     func(ctx context.Context, client *models.Client) error
	update     func(ctx context.Context, client *models.Client) error
	delete     func(ctx context.Context, userID, clientID string) error
}

func (m *mockClientStore) ListByUser(ctx context.Context, userID string) ([]models.Client, error) {
	return m.listByUser(ctx, userID)
}

func (m *mockClientStore) FindByID(ctx context.Context, userID, clientID string) (*models.Client, error) {
	return m.findByID(ctx, userID, clientID)
}

func (m *mockClientStore) Create(ctx context.Context, client *models.Client) error {
	return m.create(ctx, client)
}

func (m *mockClientStore) Update(ctx context.Context, client *models.Client) error {
	return m.update(ctx, client)
}

func (m *mockClientStore) Delete(ctx context.Context, userID, clientID string) error {
	return m.delete(ctx, userID, clientID)
}

type mockAppointmentStore struct {
	listByUser func(ctx context.Context, userID string) ([]models.Appointment, error)
	findByID   func(ctx context.Context, userID, appointmentID string) (*models.Appointment, error)
	create     func(ctx context.Context, ap *models.Appointment) error
	update     func(ctx context.Context, ap *models.Appointment) error
	delete     func(ctx context.Context, userID, appointmentID string) error
}

func (m *mockAppointmentStore) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return m.listByUser(ctx, userID)
}

func (m *mockAppointmentStore) FindByID(ctx context.Context, userID, appointmentID string) (*models.Appointment, error) {
	return m.findByID(ctx, userID, appointmentID)
}

func (m *mockAppointmentStore) Create(ctx context.Context, ap *models.Appointment) error {
	return m.create(ctx, ap)
}

func (m *mockAppointmentStore) Update(ctx context.Context, ap *models.Appointment) error {
	return m.update(ctx, ap)
}

func (m *mockAppointmentStore) Delete(ctx context.Context, userID, appointmentID string) error {
	return m.delete(ctx, userID, appointmentID)
}

var (
	_ store.UserStore        = (*mockUserStore)(nil)
	_ store.ClientStore      = (*mockClientStore)(nil)
	_ store.AppointmentStore = (*mockAppointmentStore)(nil)
	_ audit.Recorder         = (*recordingAudit)(nil)
)

// --------- Guards prontos ---------

// guardAllowing devolve um guard cujo usuário sempre existe e está validado.
func guardAllowing() *guardpkg.Guard {
	return guardpkg.New(&mockUserStore{
		findByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Name: "Dono", Valid: true}, nil
		},
	}, nil)
}

// guardUserMissing devolve um guard cujo usuário nunca existe.
func guardUserMissing() *guardpkg.Guard {
	return guardpkg.New(&mockUserStore{
		findByID: func(ctx context.Context, id string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
	}, nil)
}

// guardUserInvalid devolve um guard cujo usuário existe mas não está validado.
func guardUserInvalid() *guardpkg.Guard {
	return guardpkg.New(&mockUserStore{
		findByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Valid: false}, nil
		},
	}, nil)
}
