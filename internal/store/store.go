package store

import (
	"context"
	"errors"
	"time"

	"github.com/agendafacil/agenda-api/internal/models"
)

// ErrNotFound é devolvido quando o registro não existe ou não pertence ao dono
// informado. As implementações traduzem o erro do driver para este valor.
var ErrNotFound = errors.New("record not found")

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type ClientStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Client, error)
	FindByID(ctx context.Context, userID, clientID string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, userID, clientID string) error
}

type ProfessionalStore interface {
	// Get busca por id sem escopo de dono; usado pelo guard de horários.
	Get(ctx context.Context, id string) (*models.Professional, error)

	ListByUser(ctx context.Context, userID string) ([]models.Professional, error)
	FindByID(ctx context.Context, userID, professionalID string) (*models.Professional, error)
	Create(ctx context.Context, professional *models.Professional) error
	Update(ctx context.Context, professional *models.Professional) error
	Delete(ctx context.Context, userID, professionalID string) error
}

type SectionStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Section, error)
	FindByID(ctx context.Context, userID, sectionID string) (*models.Section, error)
	Create(ctx context.Context, section *models.Section) error
	Update(ctx context.Context, section *models.Section) error
	Delete(ctx context.Context, userID, sectionID string) error
}

type TimeStore interface {
	ListByProfessional(ctx context.Context, professionalID string) ([]models.TimeSlot, error)
	FindByID(ctx context.Context, professionalID, timeID string) (*models.TimeSlot, error)
	Create(ctx context.Context, slot *models.TimeSlot) error
	Update(ctx context.Context, slot *models.TimeSlot) error
	Delete(ctx context.Context, professionalID, timeID string) error
}

type AppointmentStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	FindByID(ctx context.Context, userID, appointmentID string) (*models.Appointment, error)
	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, userID, appointmentID string) error
}

// AppointmentStats agrega contagem, receita paga e clientes distintos de um
// recorte de agendamentos (por seção ou por profissional).
type AppointmentStats struct {
	Appointments int64   `json:"appointment_count"`
	Revenue      float64 `json:"revenue"`
	Clients      int64   `json:"client_count"`
}

type ReportStore interface {
	// ReadOnly executa fn contra uma visão somente-leitura do store. A
	// implementação relacional usa uma transação repeatable-read para que as
	// várias consultas de um relatório enxerguem o mesmo snapshot.
	ReadOnly(ctx context.Context, fn func(ReportStore) error) error

	SumPaidBetween(ctx context.Context, userID string, start, end time.Time) (float64, error)
	SumUnpaid(ctx context.Context, userID string) (float64, error)
	PaidAveragesByClient(ctx context.Context, userID string) ([]float64, error)

	CountClientsByStatus(ctx context.Context, userID, status string) (int64, error)
	CountClientsCreatedBetween(ctx context.Context, userID string, start, end time.Time) (int64, error)

	// As listagens abaixo existem para que os relatórios por entidade leiam a
	// lista dentro do mesmo snapshot das agregações.
	SectionsByUser(ctx context.Context, userID string) ([]models.Section, error)
	ProfessionalsByUser(ctx context.Context, userID string) ([]models.Professional, error)

	StatsBySection(ctx context.Context, userID, sectionID string) (AppointmentStats, error)
	StatsByProfessional(ctx context.Context, userID, professionalID string) (AppointmentStats, error)
}
