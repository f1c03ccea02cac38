package ticket

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ticketKeyPrefix       = "st"
	ticketRecordVersionV1 = 1

	maxTicketValueLen = 65535
)

var (
	// ErrTicketNotFound is returned when no unexpired ticket has been
	// pushed for the suite yet.
	ErrTicketNotFound = errors.New("suite ticket not found")
	// ErrStoreUnavailable wraps redis failures so callers can separate
	// a missing ticket from a down backend.
	ErrStoreUnavailable = errors.New("ticket store unavailable")
)

type ticketRecord struct {
	Value     string
	ExpiresAt int64
}

// RedisStore persists the most recent ticket rotation per suite key and
// serves it back as a Source. Keys expire with the ticket, so a stale
// read is impossible by construction.
type RedisStore struct {
	redis    *redis.Client
	prefix   string
	suiteKey string
}

// NewRedisStore describes the newredisstore operation and its observable behavior.
//
// NewRedisStore may return an error when input validation, dependency calls, or security checks fail.
// NewRedisStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewRedisStore(redisClient *redis.Client, suiteKey string) *RedisStore {
	return &RedisStore{
		redis:    redisClient,
		prefix:   ticketKeyPrefix,
		suiteKey: suiteKey,
	}
}

func (s *RedisStore) key() string {
	return s.prefix + ":" + s.suiteKey
}

// Save persists a pushed ticket rotation. The redis TTL is bound to the
// ticket's own expiry; an already-expired ticket is rejected rather
// than stored.
func (s *RedisStore) Save(ctx context.Context, t Ticket) error {
	ttl := time.Until(t.ExpiresAt)
	if ttl <= 0 {
		return errors.New("ticket already expired")
	}

	encoded, err := encodeTicketRecord(&ticketRecord{
		Value:     t.Value,
		ExpiresAt: t.ExpiresAt.Unix(),
	})
	if err != nil {
		return err
	}

	if err := s.redis.Set(ctx, s.key(), encoded, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// FetchTicket implements Source. It returns ErrTicketNotFound when no
// rotation has been pushed or the stored one has lapsed.
func (s *RedisStore) FetchTicket(ctx context.Context) (Ticket, error) {
	data, err := s.redis.Get(ctx, s.key()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Ticket{}, ErrTicketNotFound
		}
		return Ticket{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	record, err := decodeTicketRecord(data)
	if err != nil {
		return Ticket{}, err
	}

	t := Ticket{
		Value:     record.Value,
		ExpiresAt: time.Unix(record.ExpiresAt, 0),
	}
	if !t.Valid(time.Now()) {
		return Ticket{}, ErrTicketNotFound
	}

	return t, nil
}

func encodeTicketRecord(record *ticketRecord) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte(ticketRecordVersionV1)

	if err := binary.Write(&buf, binary.BigEndian, record.ExpiresAt); err != nil {
		return nil, err
	}

	if len(record.Value) > maxTicketValueLen {
		return nil, errors.New("ticket value too long")
	}
	if err := binary.Write(&buf, binary.BigEndian, uint16(len(record.Value))); err != nil {
		return nil, err
	}
	buf.WriteString(record.Value)

	return buf.Bytes(), nil
}

func decodeTicketRecord(data []byte) (*ticketRecord, error) {
	reader := bytes.NewReader(data)

	version, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != ticketRecordVersionV1 {
		return nil, errors.New("invalid ticket record version")
	}

	record := &ticketRecord{}

	if err := binary.Read(reader, binary.BigEndian, &record.ExpiresAt); err != nil {
		return nil, err
	}

	var valueLen uint16
	if err := binary.Read(reader, binary.BigEndian, &valueLen); err != nil {
		return nil, err
	}

	value := make([]byte, valueLen)
	if _, err := io.ReadFull(reader, value); err != nil {
		return nil, err
	}
	record.Value = string(value)

	return record, nil
}
