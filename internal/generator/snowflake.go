package generator

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

const (
	timestampBits = 41
	machineIDBits = 10
	sequenceBits  = 12

	MaxMachineID = (1 << machineIDBits) - 1 // 1023
	maxSequence  = (1 << sequenceBits) - 1  // 4095

	machineIDShift = sequenceBits
	timestampShift = sequenceBits + machineIDBits
)

// DefaultSnowflakeEpoch is 2024-01-01T00:00:00Z in unix milliseconds.
const DefaultSnowflakeEpoch int64 = 1704067200000

// SnowflakeGenerator generates 64-bit snowflake IDs rendered in decimal.
type SnowflakeGenerator struct {
	mu        sync.Mutex
	epoch     int64 // custom epoch in ms
	machineID int64 // 10-bit machine ID
	sequence  int64 // 12-bit sequence
	lastTime  int64 // last generation timestamp in ms
	now       func() time.Time
}

// NewSnowflakeGenerator creates a new SnowflakeGenerator.
// machineID must be in range [0, 1023].
// epoch is the custom epoch in unix milliseconds.
func NewSnowflakeGenerator(machineID int64, epoch int64) (*SnowflakeGenerator, error) {
	if machineID < 0 || machineID > MaxMachineID {
		return nil, fmt.Errorf("machine_id must be between 0 and %d, got %d", MaxMachineID, machineID)
	}
	if epoch < 0 {
		return nil, fmt.Errorf("epoch must not be negative, got %d", epoch)
	}
	return &SnowflakeGenerator{
		epoch:     epoch,
		machineID: machineID,
		now:       time.Now,
	}, nil
}

func (g *SnowflakeGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().UnixMilli()
	if now < g.epoch {
		return "", fmt.Errorf("current time is before custom epoch")
	}
	if now < g.lastTime {
		return "", fmt.Errorf("clock moved backwards: current=%d, last=%d", now, g.lastTime)
	}

	if now == g.lastTime {
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			// Sequence exhausted, wait for next millisecond
			for now <= g.lastTime {
				now = g.now().UnixMilli()
			}
		}
	} else {
		g.sequence = 0
	}
	g.lastTime = now

	id := ((now - g.epoch) << timestampShift) | (g.machineID << machineIDShift) | g.sequence
	return strconv.FormatInt(id, 10), nil
}

func (g *SnowflakeGenerator) Validate(id string) (bool, string) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return false, "invalid integer format"
	}
	if n < 0 {
		return false, "id must be a positive integer"
	}

	absoluteMs := g.timestamp(n)
	if absoluteMs > g.now().UnixMilli() {
		return false, "timestamp is in the future"
	}
	return true, ""
}

func (g *SnowflakeGenerator) Parse(id string) (*ParseResult, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer format: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("id must be a positive integer")
	}

	return &ParseResult{
		Time:      time.UnixMilli(g.timestamp(n)).UTC(),
		MachineID: (n >> machineIDShift) & MaxMachineID,
		Sequence:  n & maxSequence,
	}, nil
}

// timestamp returns the absolute unix milliseconds encoded in n.
func (g *SnowflakeGenerator) timestamp(n int64) int64 {
	return (n>>timestampShift)&((1<<timestampBits)-1) + g.epoch
}
