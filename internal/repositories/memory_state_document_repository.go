package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"subscription-tracker/internal/models"

	"github.com/google/uuid"
)

type memoryOwner struct {
	docs     map[models.DocumentKind]models.StateDocument
	lastSeen time.Time
}

// MemoryStateDocumentRepository holds signed-out owners' state in process.
// Owners untouched for longer than the TTL are dropped by the janitor.
type MemoryStateDocumentRepository struct {
	mu     sync.RWMutex
	owners map[string]*memoryOwner
	ttl    time.Duration
	now    func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStateDocumentRepository starts the janitor when ttl > 0; call
// Close to stop it
func NewMemoryStateDocumentRepository(ttl time.Duration) *MemoryStateDocumentRepository {
	r := &MemoryStateDocumentRepository{
		owners: make(map[string]*memoryOwner),
		ttl:    ttl,
		now:    time.Now,
		stop:   make(chan struct{}),
	}

	if ttl > 0 {
		go r.janitor(janitorInterval(ttl))
	}

	return r
}

func janitorInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	if interval > time.Minute {
		interval = time.Minute
	}
	return interval
}

func (r *MemoryStateDocumentRepository) GetAll(ctx context.Context, ownerKey string) ([]models.StateDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[ownerKey]
	if !ok {
		return []models.StateDocument{}, nil
	}
	owner.lastSeen = r.now()

	docs := make([]models.StateDocument, 0, len(owner.docs))
	for _, doc := range owner.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Kind < docs[j].Kind })
	return docs, nil
}

func (r *MemoryStateDocumentRepository) Get(ctx context.Context, ownerKey string, kind models.DocumentKind) (*models.StateDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[ownerKey]
	if !ok {
		return nil, ErrStateDocumentNotFound
	}
	owner.lastSeen = r.now()

	doc, ok := owner.docs[kind]
	if !ok {
		return nil, ErrStateDocumentNotFound
	}
	return &doc, nil
}

func (r *MemoryStateDocumentRepository) Put(ctx context.Context, doc *models.StateDocument, expectedVersion int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateStateDocument(doc); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	owner, ok := r.owners[doc.OwnerKey]
	if !ok {
		owner = &memoryOwner{docs: make(map[models.DocumentKind]models.StateDocument)}
		r.owners[doc.OwnerKey] = owner
	}
	owner.lastSeen = now

	current, exists := owner.docs[doc.Kind]
	if expectedVersion > 0 && (!exists || current.Version != expectedVersion) {
		return models.ErrStaleWrite
	}

	stored := models.StateDocument{
		ID:        uuid.New(),
		OwnerKey:  doc.OwnerKey,
		Kind:      doc.Kind,
		Payload:   doc.Payload,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if exists {
		stored.ID = current.ID
		stored.CreatedAt = current.CreatedAt
		stored.Version = current.Version + 1
	}
	owner.docs[doc.Kind] = stored

	*doc = stored
	return nil
}

func (r *MemoryStateDocumentRepository) DeleteAll(ctx context.Context, ownerKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.owners, ownerKey)
	return nil
}

// Len returns the number of owners currently held
func (r *MemoryStateDocumentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.owners)
}

// Close stops the janitor
func (r *MemoryStateDocumentRepository) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *MemoryStateDocumentRepository) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.evictExpired()
		}
	}
}

func (r *MemoryStateDocumentRepository) evictExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	cutoff := r.now().Add(-r.ttl)
	for key, owner := range r.owners {
		if owner.lastSeen.Before(cutoff) {
			delete(r.owners, key)
			evicted++
		}
	}
	return evicted
}
