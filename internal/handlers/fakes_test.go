package handlers_test

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/repository"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

var (
	_ repository.AppointmentRepository = (*memAppointments)(nil)
	_ repository.UserRepository        = (*memUsers)(nil)
	_ repository.DoctorRepository      = (*memDoctors)(nil)
	_ services.PaymentGateway          = (*stubGateway)(nil)
)

type memAppointments struct {
	mu   sync.Mutex
	docs []models.Appointment
	err  error
}

func (m *memAppointments) Create(_ context.Context, apt *models.Appointment) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.InsertResult{}, m.err
	}
	doc := *apt
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	m.docs = append(m.docs, doc)
	return models.InsertResult{Acknowledged: true, InsertedID: doc.ID}, nil
}

func (m *memAppointments) FindByEmailAndDate(_ context.Context, email, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Appointment
	for _, d := range m.docs {
		if d.Email == email && d.Date == date {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memAppointments) FindByID(_ context.Context, id string) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, d := range m.docs {
		if d.ID == oid {
			found := d
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memAppointments) SetPayment(_ context.Context, id string, payment models.Payment) (models.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.UpdateResult{}, repository.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.UpdateResult{}, m.err
	}
	res := models.UpdateResult{Acknowledged: true}
	for i := range m.docs {
		if m.docs[i].ID == oid {
			p := payment
			m.docs[i].Payment = &p
			res.MatchedCount, res.ModifiedCount = 1, 1
			break
		}
	}
	return res, nil
}

type memUsers struct {
	mu   sync.Mutex
	docs []models.User
	err  error
}

func (m *memUsers) Create(_ context.Context, user *models.User) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.InsertResult{}, m.err
	}
	doc := *user
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	return models.InsertResult{Acknowledged: true, InsertedID: doc.ID}, nil
}

func (m *memUsers) UpsertByEmail(_ context.Context, user *models.User) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.UpdateResult{}, m.err
	}
	for i := range m.docs {
		if m.docs[i].Email != user.Email {
			continue
		}
		before := m.docs[i]
		if user.DisplayName != "" {
			m.docs[i].DisplayName = user.DisplayName
		}
		if user.Role != "" {
			m.docs[i].Role = user.Role
		}
		res := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
		if m.docs[i] != before {
			res.ModifiedCount = 1
		}
		return res, nil
	}
	doc := *user
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: doc.ID}, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, d := range m.docs {
		if d.Email == email {
			found := d
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memUsers) SetRole(_ context.Context, email, role string) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.UpdateResult{}, m.err
	}
	res := models.UpdateResult{Acknowledged: true}
	for i := range m.docs {
		if m.docs[i].Email == email {
			res.MatchedCount = 1
			if m.docs[i].Role != role {
				m.docs[i].Role = role
				res.ModifiedCount = 1
			}
			break
		}
	}
	return res, nil
}

func (m *memUsers) withEmail(email string) []models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, d := range m.docs {
		if d.Email == email {
			out = append(out, d)
		}
	}
	return out
}

type memDoctors struct {
	mu   sync.Mutex
	docs []models.Doctor
	err  error
}

func (m *memDoctors) Create(_ context.Context, doctor *models.Doctor) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.InsertResult{}, m.err
	}
	doc := *doctor
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	return models.InsertResult{Acknowledged: true, InsertedID: doc.ID}, nil
}

func (m *memDoctors) List(_ context.Context) ([]models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Doctor(nil), m.docs...), nil
}

type stubGateway struct {
	mu       sync.Mutex
	amount   int64
	currency string
	secret   string
	err      error
}

func (s *stubGateway) CreatePaymentIntent(_ context.Context, amount int64, currency string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amount, s.currency = amount, currency
	if s.err != nil {
		return "", s.err
	}
	return s.secret, nil
}
