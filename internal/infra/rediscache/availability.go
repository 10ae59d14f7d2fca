package rediscache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"atelier-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const holdKeyPrefix = "product_hold:"

// Conditional delete: only remove the mirrored hold if it still belongs to
// the releasing session, same guard the SQL side applies.
var clearHoldScript = redis.NewScript(`
local key = KEYS[1]
local session = ARGV[1]

local current = redis.call('GET', key)
if not current then
	return 0
end

local sep = string.find(current, '|', 1, true)
if sep and string.sub(current, 1, sep - 1) == session then
	redis.call('DEL', key)
	return 1
end

return 0
`)

// AvailabilityMirror is a best-effort write-behind copy of the product
// availability pair for cheap catalog polls. Postgres stays the only CAS
// authority; a stale or missing mirror entry only costs one SQL read.
type AvailabilityMirror struct {
	client *redis.Client
}

func NewAvailabilityMirror(client *redis.Client) *AvailabilityMirror {
	return &AvailabilityMirror{client: client}
}

func (m *AvailabilityMirror) SetHold(ctx context.Context, productID uuid.UUID, sessionID string, until, now time.Time) error {
	ttl := until.Sub(now)
	if ttl <= 0 {
		return nil
	}
	value := sessionID + "|" + strconv.FormatInt(until.Unix(), 10)
	return m.client.Set(ctx, holdKeyPrefix+productID.String(), value, ttl).Err()
}

func (m *AvailabilityMirror) ClearHold(ctx context.Context, productID uuid.UUID, sessionID string) error {
	return clearHoldScript.Run(ctx, m.client, []string{holdKeyPrefix + productID.String()}, sessionID).Err()
}

// Delete drops the mirror entry regardless of holder; used when a product is
// sold outright.
func (m *AvailabilityMirror) Delete(ctx context.Context, productID uuid.UUID) error {
	return m.client.Del(ctx, holdKeyPrefix+productID.String()).Err()
}

func (m *AvailabilityMirror) GetHold(ctx context.Context, productID uuid.UUID) (*queries.MirroredHold, error) {
	value, err := m.client.Get(ctx, holdKeyPrefix+productID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	sep := strings.IndexByte(value, '|')
	if sep < 0 {
		return nil, nil
	}
	until, err := strconv.ParseInt(value[sep+1:], 10, 64)
	if err != nil {
		return nil, nil
	}

	return &queries.MirroredHold{
		SessionID:     value[:sep],
		ReservedUntil: until,
	}, nil
}
