package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

const slotTTL = 30 * time.Second

// SlotCache guarda respostas de disponibilidade no Redis com uma versão por
// data: escrever um agendamento incrementa a versão e as chaves antigas
// simplesmente expiram. Qualquer erro de Redis cai para o recálculo.
type SlotCache struct {
	rdb *redis.Client
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	return &SlotCache{rdb: rdb}
}

func (c *SlotCache) key(ctx context.Context, date time.Time, serviceID uint) string {
	day := date.Format("2006-01-02")

	ver, err := c.rdb.Get(ctx, "availability:ver:"+day).Int64()
	if err != nil {
		ver = 0
	}

	return fmt.Sprintf("availability:%s:%d:v%d", day, serviceID, ver)
}

func (c *SlotCache) Get(
	ctx context.Context,
	date time.Time,
	serviceID uint,
) ([]schedule.SlotResponse, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(ctx, date, serviceID)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.SlotResponse
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	date time.Time,
	serviceID uint,
	slots []schedule.SlotResponse,
) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, c.key(ctx, date, serviceID), raw, slotTTL)
}

// Invalidate descarta todas as entradas da data (qualquer serviço)
func (c *SlotCache) Invalidate(ctx context.Context, date time.Time) {
	if c == nil || c.rdb == nil {
		return
	}

	day := date.Format("2006-01-02")
	c.rdb.Incr(ctx, "availability:ver:"+day)
	c.rdb.Expire(ctx, "availability:ver:"+day, 24*time.Hour)
}
