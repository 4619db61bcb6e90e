package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/store"
)

// EntityService is the CRUD surface every entity store owner exposes. Records
// are handled as raw JSON documents: validation checks field presence, update
// shallow-merges the patch over the stored document, and reads return the
// stored bytes verbatim.
type EntityService interface {
	Get(ctx context.Context, id string) (json.RawMessage, error)
	Create(ctx context.Context, doc map[string]any) (json.RawMessage, error)
	Update(ctx context.Context, id string, patch map[string]any) (json.RawMessage, error)
}

type entityService struct {
	log   *logger.Logger
	store store.Store

	// key prefix and human label, e.g. "user" / "User"
	kind  string
	label string

	idField  string
	required []string
}

func (s *entityService) key(id string) string { return s.kind + ":" + id }

func (s *entityService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	data, found, err := s.store.Get(ctx, s.key(id))
	if err != nil {
		s.log.Error("state lookup failed", "key", s.key(id), "error", err)
		return nil, err
	}
	if !found {
		return nil, domain.NotFoundError(s.label + " not found")
	}
	return data, nil
}

func (s *entityService) Create(ctx context.Context, doc map[string]any) (json.RawMessage, error) {
	if err := s.validate(doc); err != nil {
		return nil, err
	}
	id, _ := doc[s.idField].(string)

	_, found, err := s.store.Get(ctx, s.key(id))
	if err != nil {
		return nil, err
	}
	if found {
		s.log.Warn("create rejected, key exists", "key", s.key(id))
		return nil, domain.ConflictError(s.label + " already exists")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, domain.ValidationError(fmt.Sprintf("invalid %s document: %v", s.kind, err))
	}
	if err := s.store.Put(ctx, s.key(id), data); err != nil {
		return nil, err
	}
	s.log.Info("created", "key", s.key(id))
	return data, nil
}

func (s *entityService) Update(ctx context.Context, id string, patch map[string]any) (json.RawMessage, error) {
	data, found, err := s.store.Get(ctx, s.key(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NotFoundError(s.label + " not found")
	}

	existing := map[string]any{}
	if err := json.Unmarshal(data, &existing); err != nil {
		return nil, domain.Dependency(s.kind+"-store", fmt.Errorf("decode stored %s: %w", s.kind, err))
	}
	for k, v := range patch {
		existing[k] = v
	}

	merged, err := json.Marshal(existing)
	if err != nil {
		return nil, domain.ValidationError(fmt.Sprintf("invalid %s patch: %v", s.kind, err))
	}
	if err := s.store.Put(ctx, s.key(id), merged); err != nil {
		return nil, err
	}
	s.log.Info("updated", "key", s.key(id))
	return merged, nil
}

func (s *entityService) validate(doc map[string]any) error {
	for _, field := range s.required {
		if _, ok := doc[field]; !ok {
			return domain.ValidationError("Missing required field: " + field)
		}
	}
	if id, _ := doc[s.idField].(string); id == "" {
		return domain.ValidationError("Missing required field: " + s.idField)
	}
	return nil
}
