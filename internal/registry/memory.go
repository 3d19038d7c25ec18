package registry

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/vbncursed/vkr/wallet-service/internal/models"
	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

// Memory — реестр в памяти процесса (dev-режим и тесты).
// Повторный insert отвечает 409, как настоящий реестр.
type Memory struct {
	mu            sync.Mutex
	classes       map[string]models.PassClass
	objects       map[string]models.PassObject
	getErrs       map[string]error
	insertErrs    map[string]error
	classInserts  int
	objectInserts int
}

func NewMemory() *Memory {
	return &Memory{
		classes:    map[string]models.PassClass{},
		objects:    map[string]models.PassObject{},
		getErrs:    map[string]error{},
		insertErrs: map[string]error{},
	}
}

// FailGet заставляет get по id вернуть err
func (m *Memory) FailGet(id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErrs[id] = err
}

// FailInsert заставляет insert ресурса с id вернуть err
func (m *Memory) FailInsert(id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertErrs[id] = err
}

// ClassInserts — число попыток insert класса
func (m *Memory) ClassInserts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.classInserts
}

// ObjectInserts — число попыток insert объекта
func (m *Memory) ObjectInserts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objectInserts
}

func (m *Memory) GetClass(_ context.Context, id string) (models.PassClass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.getErrs[id]; err != nil {
		return models.PassClass{}, err
	}
	c, ok := m.classes[id]
	if !ok {
		return models.PassClass{}, notFound("class", id)
	}
	return c, nil
}

func (m *Memory) InsertClass(_ context.Context, c models.PassClass) (models.PassClass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classInserts++
	if err := m.insertErrs[c.ID]; err != nil {
		return models.PassClass{}, err
	}
	if _, ok := m.classes[c.ID]; ok {
		return models.PassClass{}, alreadyExists("class", c.ID)
	}
	m.classes[c.ID] = c
	return c, nil
}

func (m *Memory) GetObject(_ context.Context, id string) (models.PassObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.getErrs[id]; err != nil {
		return models.PassObject{}, err
	}
	o, ok := m.objects[id]
	if !ok {
		return models.PassObject{}, notFound("object", id)
	}
	return o, nil
}

func (m *Memory) InsertObject(_ context.Context, o models.PassObject) (models.PassObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objectInserts++
	if err := m.insertErrs[o.ID]; err != nil {
		return models.PassObject{}, err
	}
	if _, ok := m.objects[o.ID]; ok {
		return models.PassObject{}, alreadyExists("object", o.ID)
	}
	m.objects[o.ID] = o
	return o, nil
}

func notFound(kind, id string) error {
	return &service.RegistryError{
		Code:    http.StatusNotFound,
		Status:  "NOT_FOUND",
		Message: fmt.Sprintf("%s %s not found", kind, id),
	}
}

func alreadyExists(kind, id string) error {
	return &service.RegistryError{
		Code:    http.StatusConflict,
		Status:  "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s %s already exists", kind, id),
	}
}
