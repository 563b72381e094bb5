package repository

import (
	"sync"

	"meditrack/internal/domain/entity"
	domainRepo "meditrack/internal/domain/repository"
)

type memoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewMemoryStore[T any]() domainRepo.EntityStore[T] {
	return &memoryStore[T]{items: make(map[string]T)}
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return NewMemoryStore[*entity.Doctor]()
}

func NewPatientRepository() domainRepo.PatientRepository {
	return NewMemoryStore[*entity.Patient]()
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return NewMemoryStore[*entity.Appointment]()
}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return NewMemoryStore[*entity.AuditLog]()
}

func (s *memoryStore[T]) Save(id string, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = item
}

func (s *memoryStore[T]) FindByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

func (s *memoryStore[T]) FindAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]T, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items
}

func (s *memoryStore[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

func (s *memoryStore[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
