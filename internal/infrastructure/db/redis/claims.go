package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/eventease/platform-api/internal/core/ports"
)

// RoleClaimStore mirrors role assignments into the custom-claim storage the
// external authenticator reads, keyed by identity. Claims have no TTL; they
// live until the next assignment overwrites them.
// Key format: claims:role:<identity>
type RoleClaimStore struct {
	client *redis.Client
}

var _ ports.ClaimsStore = (*RoleClaimStore)(nil)

func NewRoleClaimStore(client *redis.Client) *RoleClaimStore {
	return &RoleClaimStore{client: client}
}

func (s *RoleClaimStore) SetRoleClaim(ctx context.Context, identity string, roleID int) error {
	if err := s.client.Set(ctx, s.key(identity), roleID, 0).Err(); err != nil {
		return fmt.Errorf("set role claim: %w", err)
	}
	return nil
}

func (s *RoleClaimStore) RoleClaim(ctx context.Context, identity string) (int, bool, error) {
	val, err := s.client.Get(ctx, s.key(identity)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get role claim: %w", err)
	}
	id, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("parse role claim: %w", err)
	}
	return id, true, nil
}

func (s *RoleClaimStore) key(identity string) string {
	return "claims:role:" + identity
}
