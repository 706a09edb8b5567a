package generator

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Generator = (*UUIDGenerator)(nil)
	_ Generator = (*NanoIDGenerator)(nil)
	_ Generator = (*CUIDGenerator)(nil)
	_ Generator = (*CUID2Generator)(nil)
	_ Generator = (*ULIDGenerator)(nil)
	_ Generator = (*KSUIDGenerator)(nil)
	_ Generator = (*ObjectIDGenerator)(nil)
	_ Generator = (*SnowflakeGenerator)(nil)
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func TestUUIDGenerator(t *testing.T) {
	g, err := NewUUIDGenerator(DefaultNodeID)
	require.NoError(t, err)

	v1, err := g.NewV1()
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(1), v1.Version())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, v1.NodeID())

	v4, err := g.NewV4()
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), v4.Version())
	assert.Equal(t, uuid.RFC4122, v4.Variant())

	assert.Equal(t, g.NewV3(uuid.NameSpaceDNS, "example.com"), g.NewV3(uuid.NameSpaceDNS, "example.com"))
	assert.Equal(t, g.NewV5(uuid.NameSpaceDNS, "example.com"), g.NewV5(uuid.NameSpaceDNS, "example.com"))
	assert.Equal(t, "9073926b-929f-31c2-abc9-fad77ae3e8eb", g.NewV3(uuid.NameSpaceDNS, "example.com").String())
	assert.Equal(t, "cfbff0d1-9375-5685-968c-48ce8b15ae17", g.NewV5(uuid.NameSpaceDNS, "example.com").String())
}

func TestNewUUIDGeneratorRejectsBadNode(t *testing.T) {
	_, err := NewUUIDGenerator("not-a-mac")
	assert.Error(t, err)

	_, err = NewUUIDGenerator("01:02:03:04:05:06:07:08")
	assert.Error(t, err)
}

func TestUUIDParse(t *testing.T) {
	g, err := NewUUIDGenerator(DefaultNodeID)
	require.NoError(t, err)

	res, err := g.Parse("550e8400-e29b-44d4-a716-446655440000")
	require.NoError(t, err)
	assert.Equal(t, "Random", res.Version)
	assert.Equal(t, "RFC4122", res.Variant)
	assert.False(t, res.HasTime())

	before := time.Now().Add(-time.Second)
	v1, err := g.NewV1()
	require.NoError(t, err)
	res, err = g.Parse(v1.String())
	require.NoError(t, err)
	assert.Equal(t, "Mac", res.Version)
	require.True(t, res.HasTime())
	assert.WithinDuration(t, time.Now(), res.Time, time.Minute)
	assert.True(t, res.Time.After(before))

	_, err = g.Parse("550e8400-e29b-44d4-a716")
	assert.Error(t, err)
}

func TestVersionName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"00000000-0000-0000-0000-000000000000", "Nil"},
		{"f47ac10b-58cc-11e4-8b58-0800200c9a66", "Mac"},
		{"9073926b-929f-31c2-abc9-fad77ae3e8eb", "Md5"},
		{"550e8400-e29b-44d4-a716-446655440000", "Random"},
		{"cfbff0d1-9375-5685-968c-48ce8b15ae17", "Sha1"},
		{"017f22e2-79b0-7cc3-98c4-dc0c0c07398f", "SortRand"},
		{"ffffffff-ffff-ffff-ffff-ffffffffffff", "Max"},
		{"550e8400-e29b-04d4-a716-446655440000", ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, VersionName(uuid.MustParse(tt.id)))
		})
	}
}

func TestVariantName(t *testing.T) {
	assert.Equal(t, "RFC4122", VariantName(uuid.RFC4122))
	assert.Equal(t, "NCS", VariantName(uuid.Reserved))
	assert.Equal(t, "Microsoft", VariantName(uuid.Microsoft))
	assert.Equal(t, "Future", VariantName(uuid.Future))
}

func TestNanoIDGenerator(t *testing.T) {
	g, err := NewNanoIDGenerator(DefaultNanoIDSize, DefaultNanoIDAlphabet)
	require.NoError(t, err)

	id, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, id, DefaultNanoIDSize)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), id)

	for _, size := range []int{0, 1, 10, 64, 300} {
		id, err := g.GenerateSize(size)
		require.NoError(t, err)
		assert.Len(t, id, size)
		valid, reason := g.ValidateSize(id, size)
		assert.True(t, valid, reason)
	}

	_, err = g.GenerateSize(-1)
	assert.Error(t, err)

	valid, _ := g.Validate("V1StGXR8_Z5jdHi6B-myT")
	assert.True(t, valid)
	valid, reason := g.Validate("V1StGXR8_Z5jdHi6B-my!")
	assert.False(t, valid)
	assert.Contains(t, reason, "not in alphabet")
	valid, _ = g.Validate("short")
	assert.False(t, valid)
}

func TestNewNanoIDGeneratorBounds(t *testing.T) {
	_, err := NewNanoIDGenerator(-1, DefaultNanoIDAlphabet)
	assert.Error(t, err)
	_, err = NewNanoIDGenerator(21, "a")
	assert.Error(t, err)
	_, err = NewNanoIDGenerator(21, "ab")
	assert.NoError(t, err)
}

func TestCUIDGenerator(t *testing.T) {
	g := NewCUIDGenerator(nil)
	a, err := g.Generate()
	require.NoError(t, err)
	b, err := g.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "c"))
	assert.GreaterOrEqual(t, len(a), MinCUIDLength)
	valid, reason := g.Validate(a)
	assert.True(t, valid, reason)

	res, err := g.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, "v1", res.Version)
}

func TestCUIDGeneratorEntropyFailure(t *testing.T) {
	g := NewCUIDGenerator(failingReader{})
	_, err := g.Generate()
	assert.Error(t, err)
}

func TestCUIDValidate(t *testing.T) {
	g := NewCUIDGenerator(nil)
	valid, _ := g.Validate("clh3am2f10000qwer1234abcde")
	assert.True(t, valid)
	valid, _ = g.Validate("xlh3am2f10000qwer1234abcde")
	assert.False(t, valid)
	valid, _ = g.Validate("cLH3AM2F10000QWER1234ABCDE")
	assert.False(t, valid)
	valid, _ = g.Validate("c123")
	assert.False(t, valid)
}

func TestCUID2Generator(t *testing.T) {
	g, err := NewCUID2Generator(DefaultCUID2Length)
	require.NoError(t, err)

	id, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, id, DefaultCUID2Length)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]+$`), id)

	valid, reason := g.Validate(id)
	assert.True(t, valid, reason)
	valid, _ = g.Validate("abc")
	assert.False(t, valid)

	_, err = NewCUID2Generator(1)
	assert.Error(t, err)
	_, err = NewCUID2Generator(33)
	assert.Error(t, err)
}

func TestULIDGenerator(t *testing.T) {
	g := NewULIDGenerator()
	id, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, id, 26)
	assert.Equal(t, strings.ToUpper(id), id)

	res, err := g.Parse(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), res.Time, time.Minute)
	assert.Len(t, res.RandomPayload, 20)

	valid, _ := g.Validate("01arz3ndektsv4rrffq69g5fav")
	assert.True(t, valid)
	valid, _ = g.Validate("01ARZ3NDEKTSV4RRFFQ69G5FAU")
	assert.False(t, valid)
	valid, _ = g.Validate("81ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.False(t, valid)
}

func TestKSUIDGenerator(t *testing.T) {
	g := NewKSUIDGenerator()
	id, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, id, KSUIDLength)

	res, err := g.Parse(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), res.Time, time.Minute)
	assert.Len(t, res.RandomPayload, 32)

	valid, _ := g.Validate("0ujtsYcgvSTl8PAuAdqWYSMnLOv")
	assert.True(t, valid)
	valid, _ = g.Validate("0ujtsYcgvSTl8PAuAdqWYSMnLO_")
	assert.False(t, valid)
	valid, _ = g.Validate("0ujtsYcgvSTl8PAuAdqWYSMnLO")
	assert.False(t, valid)
}

func TestObjectIDGenerator(t *testing.T) {
	g := NewObjectIDGenerator()
	id, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, id, ObjectIDLength)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{24}$`), id)

	res, err := g.Parse(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), res.Time, time.Minute)

	res, err = g.Parse("507F1F77BCF86CD799439011")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2012, 10, 17, 21, 13, 27, 0, time.UTC), res.Time)

	valid, _ := g.Validate("507f1f77bcf86cd79943901")
	assert.False(t, valid)
	valid, _ = g.Validate("507f1f77bcf86cd79943901z")
	assert.False(t, valid)
}

func TestSnowflakeGenerator(t *testing.T) {
	g, err := NewSnowflakeGenerator(7, DefaultSnowflakeEpoch)
	require.NoError(t, err)

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return clock }

	a, err := g.Generate()
	require.NoError(t, err)
	b, err := g.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	na, err := strconv.ParseInt(a, 10, 64)
	require.NoError(t, err)
	nb, err := strconv.ParseInt(b, 10, 64)
	require.NoError(t, err)
	assert.Greater(t, nb, na)

	res, err := g.Parse(b)
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.MachineID)
	assert.Equal(t, int64(1), res.Sequence)
	assert.Equal(t, clock, res.Time)

	valid, reason := g.Validate(a)
	assert.True(t, valid, reason)

	clock = clock.Add(-time.Second)
	_, err = g.Generate()
	assert.ErrorContains(t, err, "clock moved backwards")
}

func TestSnowflakeGeneratorBounds(t *testing.T) {
	_, err := NewSnowflakeGenerator(-1, DefaultSnowflakeEpoch)
	assert.Error(t, err)
	_, err = NewSnowflakeGenerator(MaxMachineID+1, DefaultSnowflakeEpoch)
	assert.Error(t, err)
	_, err = NewSnowflakeGenerator(1, -1)
	assert.Error(t, err)

	g, err := NewSnowflakeGenerator(1, DefaultSnowflakeEpoch)
	require.NoError(t, err)
	valid, _ := g.Validate("abc")
	assert.False(t, valid)
	valid, _ = g.Validate("-5")
	assert.False(t, valid)
}
