package id

import (
	"context"
	"encoding/hex"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/maniartech/idgen/internal/generator"
	pkglog "github.com/maniartech/idgen/pkg/log"
	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the batch size at which GenerateBatch fans out.
const DefaultParallelThreshold = 1024

// Options configures the generation primitives behind a Dispatcher.
type Options struct {
	NodeID             string // UUID v1 node, e.g. "01:02:03:04:05:06"
	NanoIDAlphabet     string
	CUID2Length        int
	SnowflakeMachineID int64
	SnowflakeEpoch     int64
	ParallelThreshold  int // batches of at least this size fan out
	Workers            int // 0 means GOMAXPROCS
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		NodeID:             generator.DefaultNodeID,
		NanoIDAlphabet:     generator.DefaultNanoIDAlphabet,
		CUID2Length:        generator.DefaultCUID2Length,
		SnowflakeMachineID: 1,
		SnowflakeEpoch:     generator.DefaultSnowflakeEpoch,
		ParallelThreshold:  DefaultParallelThreshold,
	}
}

// Dispatcher turns a Format and its Params into an identifier string.
// It is safe for concurrent use.
type Dispatcher struct {
	uuid   *generator.UUIDGenerator
	nanoid *generator.NanoIDGenerator
	cuid1  generator.Generator
	cuid2  generator.Generator

	// families without parameters
	generators map[Family]generator.Generator

	parallelThreshold int
	workers           int
}

// NewDispatcher creates the generation primitives described by opts.
func NewDispatcher(opts Options) (*Dispatcher, error) {
	uuidGen, err := generator.NewUUIDGenerator(opts.NodeID)
	if err != nil {
		return nil, err
	}
	nanoidGen, err := generator.NewNanoIDGenerator(generator.DefaultNanoIDSize, opts.NanoIDAlphabet)
	if err != nil {
		return nil, err
	}
	cuid2Gen, err := generator.NewCUID2Generator(opts.CUID2Length)
	if err != nil {
		return nil, err
	}
	snowflake, err := generator.NewSnowflakeGenerator(opts.SnowflakeMachineID, opts.SnowflakeEpoch)
	if err != nil {
		return nil, err
	}

	threshold := opts.ParallelThreshold
	if threshold < 1 {
		threshold = DefaultParallelThreshold
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Dispatcher{
		uuid:   uuidGen,
		nanoid: nanoidGen,
		cuid1:  generator.NewCUIDGenerator(nil),
		cuid2:  cuid2Gen,
		generators: map[Family]generator.Generator{
			FamilyObjectID:  generator.NewObjectIDGenerator(),
			FamilyULID:      generator.NewULIDGenerator(),
			FamilyKSUID:     generator.NewKSUIDGenerator(),
			FamilySnowflake: snowflake,
		},
		parallelThreshold: threshold,
		workers:           workers,
	}, nil
}

// Generate returns one identifier of format f. Usage errors are reported
// before any entropy is consumed; nothing is generated on failure.
func (d *Dispatcher) Generate(f Format, p Params) (string, error) {
	switch f.family {
	case FamilyUUID:
		u, err := d.newUUID(f.UUIDVersion(), p)
		if err != nil {
			return "", err
		}
		return Render(u, f.rendering), nil
	case FamilyNanoID:
		if p.Length == nil {
			return "", &Error{Kind: KindMissingLength, Msg: "NanoID requires a length"}
		}
		if *p.Length < 0 {
			return "", &Error{Kind: KindInvalidLength, Msg: fmt.Sprintf("NanoID length must not be negative, got %d", *p.Length)}
		}
		s, err := d.nanoid.GenerateSize(*p.Length)
		if err != nil {
			return "", systemError(KindEntropy, err)
		}
		return s, nil
	case FamilyCUID:
		if f.cuidVersion == CUIDv2 {
			return d.cuid2.Generate()
		}
		s, err := d.cuid1.Generate()
		if err != nil {
			return "", systemError(KindCuid, err)
		}
		return s, nil
	}

	gen, ok := d.generators[f.family]
	if !ok {
		return "", fmt.Errorf("unknown ID family: %v", f.family)
	}
	s, err := gen.Generate()
	if err != nil {
		return "", systemError(KindEntropy, err)
	}
	return s, nil
}

func (d *Dispatcher) newUUID(v UUIDVersion, p Params) (uuid.UUID, error) {
	switch v {
	case UUIDv1:
		u, err := d.uuid.NewV1()
		if err != nil {
			return uuid.Nil, systemError(KindEntropy, err)
		}
		return u, nil
	case UUIDv3, UUIDv5:
		if p.Namespace == nil {
			return uuid.Nil, missingNamespace(v)
		}
		if p.Name == nil {
			return uuid.Nil, missingName(v)
		}
		ns, err := uuid.Parse(*p.Namespace)
		if err != nil {
			return uuid.Nil, invalidNamespace(*p.Namespace)
		}
		if v == UUIDv3 {
			return d.uuid.NewV3(ns, *p.Name), nil
		}
		return d.uuid.NewV5(ns, *p.Name), nil
	case UUIDv4:
		u, err := d.uuid.NewV4()
		if err != nil {
			return uuid.Nil, systemError(KindEntropy, err)
		}
		return u, nil
	default:
		return uuid.Nil, fmt.Errorf("unsupported UUID version: %d", v)
	}
}

// Render formats u per r.
func Render(u uuid.UUID, r Rendering) string {
	switch r {
	case Simple:
		return hex.EncodeToString(u[:])
	case URN:
		return u.URN()
	default:
		return u.String()
	}
}

// GenerateBatch returns count identifiers of format f. The first one is
// generated before any fan-out so that usage errors return without drawing
// further entropy. Batches reaching the parallel threshold are spread over
// a bounded worker group.
func (d *Dispatcher) GenerateBatch(ctx context.Context, f Format, p Params, count int) ([]string, error) {
	if count < 1 {
		return nil, &Error{Kind: KindInvalidCount, Msg: fmt.Sprintf("Count must be at least 1, got %d", count)}
	}

	first, err := d.Generate(f, p)
	if err != nil {
		return nil, err
	}
	ids := make([]string, count)
	ids[0] = first

	parallel := count >= d.parallelThreshold
	logger := pkglog.Ctx(ctx)
	event := logger.Debug().
		Str(pkglog.FieldFormat, f.String()).
		Int(pkglog.FieldCount, count).
		Bool(pkglog.FieldParallel, parallel)
	if p.Length != nil {
		event = event.Int(pkglog.FieldLength, *p.Length)
	}
	event.Msg("generating batch")

	if !parallel {
		for i := 1; i < count; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if ids[i], err = d.Generate(f, p); err != nil {
				return nil, err
			}
		}
		return ids, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i := 1; i < count; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := d.Generate(f, p)
			if err != nil {
				return err
			}
			ids[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Validate reports whether candidate is a well-formed identifier of format f,
// and why not when it is not.
func (d *Dispatcher) Validate(f Format, p Params, candidate string) (bool, string) {
	switch f.family {
	case FamilyUUID:
		u, err := uuid.Parse(candidate)
		if err != nil {
			return false, fmt.Sprintf("invalid UUID format: %v", err)
		}
		if want := f.UUIDVersion(); u.Version() != uuid.Version(want) {
			return false, fmt.Sprintf("expected UUID v%d, got v%d", want, u.Version())
		}
		if !strings.EqualFold(Render(u, f.rendering), candidate) {
			return false, fmt.Sprintf("expected %s rendering", f.rendering)
		}
		return true, ""
	case FamilyNanoID:
		if p.Length == nil {
			return d.nanoid.Validate(candidate)
		}
		return d.nanoid.ValidateSize(candidate, *p.Length)
	case FamilyCUID:
		if f.cuidVersion == CUIDv2 {
			return d.cuid2.Validate(candidate)
		}
		return d.cuid1.Validate(candidate)
	}

	gen, ok := d.generators[f.family]
	if !ok {
		return false, fmt.Sprintf("unknown ID family: %v", f.family)
	}
	return gen.Validate(candidate)
}
