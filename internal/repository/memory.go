package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/bwsolucoes/carteira-api/internal/models"
)

// In-memory repository implementations. These back the test suite and the
// no-database mode. The service layer assumes single-writer semantics per
// mutation; the mutexes here make the individual repository operations safe
// under gin's concurrent request handling.

type memoryClientRepository struct {
	mu      sync.RWMutex
	clients []models.Client
}

// NewMemoryClientRepository creates an in-memory client repository
func NewMemoryClientRepository() ClientRepository {
	return &memoryClientRepository{}
}

func (r *memoryClientRepository) FindByID(ctx context.Context, id string) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.clients {
		if r.clients[i].ID == id {
			c := r.clients[i]
			return &c, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *memoryClientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	return r.List(ctx, "")
}

func (r *memoryClientRepository) List(ctx context.Context, search string) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	query := strings.ToLower(search)
	out := make([]models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		if query == "" ||
			strings.Contains(strings.ToLower(c.CompanyName), query) ||
			strings.Contains(strings.ToLower(c.ContactPerson), query) ||
			strings.Contains(strings.ToLower(c.ContactEmail), query) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompanyName < out[j].CompanyName
	})
	return out, nil
}

func (r *memoryClientRepository) Create(ctx context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, *client)
	return nil
}

func (r *memoryClientRepository) Update(ctx context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clients {
		if r.clients[i].ID == client.ID {
			r.clients[i] = *client
			return nil
		}
	}
	return nil
}

func (r *memoryClientRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.clients[:0]
	for _, c := range r.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.clients = kept
	return nil
}

func (r *memoryClientRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.clients)), nil
}

type memoryContractRepository struct {
	mu        sync.RWMutex
	contracts []models.Contract
}

// NewMemoryContractRepository creates an in-memory contract repository
func NewMemoryContractRepository() ContractRepository {
	return &memoryContractRepository{}
}

func (r *memoryContractRepository) FindByID(ctx context.Context, id string) (*models.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.contracts {
		if r.contracts[i].ID == id {
			c := r.contracts[i]
			return &c, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *memoryContractRepository) FindByClient(ctx context.Context, clientID string) ([]models.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Contract
	for _, c := range r.contracts {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ContractNumber < out[j].ContractNumber
	})
	return out, nil
}

func (r *memoryContractRepository) FindAll(ctx context.Context) ([]models.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Contract, len(r.contracts))
	copy(out, r.contracts)
	return out, nil
}

func (r *memoryContractRepository) HasLegacyContract(ctx context.Context, clientID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contracts {
		if c.ClientID == clientID && c.ContractNumber == models.LegacyContractNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts = append(r.contracts, *contract)
	return nil
}

func (r *memoryContractRepository) Update(ctx context.Context, contract *models.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.contracts {
		if r.contracts[i].ID == contract.ID {
			r.contracts[i] = *contract
			return nil
		}
	}
	return nil
}

func (r *memoryContractRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.contracts[:0]
	for _, c := range r.contracts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.contracts = kept
	return nil
}

func (r *memoryContractRepository) DeleteByClient(ctx context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.contracts[:0]
	for _, c := range r.contracts {
		if c.ClientID != clientID {
			kept = append(kept, c)
		}
	}
	r.contracts = kept
	return nil
}

func (r *memoryContractRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.contracts)), nil
}

type memoryServiceRepository struct {
	mu       sync.RWMutex
	services []models.Service
}

// NewMemoryServiceRepository creates an in-memory service repository
func NewMemoryServiceRepository() ServiceRepository {
	return &memoryServiceRepository{}
}

func (r *memoryServiceRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *memoryServiceRepository) FindByContract(ctx context.Context, contractID string) ([]models.Service, error) {
	return r.FindByContractIDs(ctx, []string{contractID})
}

func (r *memoryServiceRepository) FindByContractIDs(ctx context.Context, contractIDs []string) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make(map[string]struct{}, len(contractIDs))
	for _, id := range contractIDs {
		ids[id] = struct{}{}
	}
	var out []models.Service
	for _, s := range r.services {
		if _, ok := ids[s.ContractID]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memoryServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

func (r *memoryServiceRepository) Create(ctx context.Context, service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services = append(r.services, *service)
	return nil
}

func (r *memoryServiceRepository) Update(ctx context.Context, service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.services {
		if r.services[i].ID == service.ID {
			r.services[i] = *service
			return nil
		}
	}
	return nil
}

func (r *memoryServiceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.services[:0]
	for _, s := range r.services {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	r.services = kept
	return nil
}

func (r *memoryServiceRepository) DeleteByContract(ctx context.Context, contractID string) error {
	return r.DeleteByContractIDs(ctx, []string{contractID})
}

func (r *memoryServiceRepository) DeleteByContractIDs(ctx context.Context, contractIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[string]struct{}, len(contractIDs))
	for _, id := range contractIDs {
		ids[id] = struct{}{}
	}
	kept := r.services[:0]
	for _, s := range r.services {
		if _, ok := ids[s.ContractID]; !ok {
			kept = append(kept, s)
		}
	}
	r.services = kept
	return nil
}

func (r *memoryServiceRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.services)), nil
}

type memoryAuditRepository struct {
	mu     sync.RWMutex
	events []models.AuditEvent
}

// NewMemoryAuditRepository creates an in-memory audit repository
func NewMemoryAuditRepository() AuditRepository {
	return &memoryAuditRepository{}
}

func (r *memoryAuditRepository) Append(ctx context.Context, event *models.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *memoryAuditRepository) Query(ctx context.Context, search string) ([]models.AuditEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	query := strings.ToLower(search)
	out := make([]models.AuditEvent, 0, len(r.events))
	for _, e := range r.events {
		if query == "" ||
			strings.Contains(strings.ToLower(e.User), query) ||
			strings.Contains(strings.ToLower(e.Action), query) ||
			strings.Contains(strings.ToLower(e.ClientName), query) ||
			strings.Contains(strings.ToLower(e.Details), query) {
			out = append(out, e)
		}
	}
	// Stable sort keyed on timestamp only; insertion order breaks ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewMemoryUserRepository creates an in-memory user repository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{}
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, *user)
	return nil
}
