package signed

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/calebcase/radix"
	"github.com/calebcase/radix/integer"
)

var diffConfig = &pretty.Config{
	Diffable:       true,
	PrintStringers: true,
}

func TestEncode(t *testing.T) {
	type TC struct {
		name     string
		width    int
		unsigned string
		twos     string
		ones     string
	}

	tcs := []TC{
		{name: "0", width: 2, unsigned: "0", twos: "00", ones: "00"},
		{name: "1", width: 2, unsigned: "1", twos: "01", ones: "01"},
		{name: "5", width: 4, unsigned: "101", twos: "0101", ones: "0101"},
		{name: "255", width: 9, unsigned: "11111111", twos: "011111111", ones: "011111111"},
		{name: "-1", width: 1, twos: "1", ones: "10"},
		{name: "-2", width: 2, twos: "10", ones: "101"},
		{name: "-3", width: 3, twos: "101", ones: "100"},
		{name: "-4", width: 3, twos: "100", ones: "1011"},
		{name: "-5", width: 4, twos: "1011", ones: "1010"},
		{name: "-127", width: 8, twos: "10000001", ones: "10000000"},
		{name: "-128", width: 8, twos: "10000000", ones: "101111111"},
		{name: "-129", width: 9, twos: "101111111", ones: "101111110"},
		{
			name:     "170141183460469231731687303715884105727",
			width:    128,
			unsigned: strings.Repeat("1", 127),
			twos:     "0" + strings.Repeat("1", 127),
			ones:     "0" + strings.Repeat("1", 127),
		},
		{
			name:  "-170141183460469231731687303715884105727",
			width: 128,
			twos:  "1" + strings.Repeat("0", 126) + "1",
			ones:  "1" + strings.Repeat("0", 127),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v := integer.MustParse(tc.name)

			require.Equal(t, tc.width, MinimalWidth(v))

			unsigned, ok := EncodeUnsigned(v)
			require.Equal(t, tc.unsigned != "", ok)
			require.Equal(t, tc.unsigned, unsigned)

			twos := EncodeTwosComplement(v)
			require.Equal(t, tc.twos, twos)
			require.Len(t, twos, tc.width)

			ones, err := EncodeOnesComplement(v)
			require.NoError(t, err)
			require.Equal(t, tc.ones, ones)
		})
	}
}

func TestEncodeMin(t *testing.T) {
	require.Equal(t, 128, MinimalWidth(integer.Min))
	require.Equal(t, "1"+strings.Repeat("0", 127), EncodeTwosComplement(integer.Min))

	_, err := EncodeOnesComplement(integer.Min)
	require.Error(t, err)
	require.True(t, radix.Overflow.Has(err), "%+v", err)
}

func TestDecode(t *testing.T) {
	type TC struct {
		binary string
		want   Decoded
	}

	tcs := []TC{
		{
			binary: "0",
			want:   Decoded{Width: 1},
		},
		{
			binary: "00",
			want:   Decoded{Width: 2},
		},
		{
			binary: "1",
			want: Decoded{
				Width:          1,
				Unsigned:       uint128.From64(1),
				TwosComplement: integer.FromInt64(-1),
				OnesComplement: integer.Zero,
			},
		},
		{
			binary: "01",
			want: Decoded{
				Width:          2,
				Unsigned:       uint128.From64(1),
				TwosComplement: integer.FromInt64(1),
				OnesComplement: integer.FromInt64(1),
			},
		},
		{
			binary: "10",
			want: Decoded{
				Width:          2,
				Unsigned:       uint128.From64(2),
				TwosComplement: integer.FromInt64(-2),
				OnesComplement: integer.FromInt64(-1),
			},
		},
		{
			binary: "10000000",
			want: Decoded{
				Width:          8,
				Unsigned:       uint128.From64(128),
				TwosComplement: integer.FromInt64(-128),
				OnesComplement: integer.FromInt64(-127),
			},
		},
		{
			binary: "11111111",
			want: Decoded{
				Width:          8,
				Unsigned:       uint128.From64(255),
				TwosComplement: integer.FromInt64(-1),
				OnesComplement: integer.Zero,
			},
		},
		{
			binary: "011111111",
			want: Decoded{
				Width:          9,
				Unsigned:       uint128.From64(255),
				TwosComplement: integer.FromInt64(255),
				OnesComplement: integer.FromInt64(255),
			},
		},
		{
			binary: strings.Repeat("1", 128),
			want: Decoded{
				Width:          128,
				Unsigned:       uint128.Max,
				TwosComplement: integer.FromInt64(-1),
				OnesComplement: integer.Zero,
			},
		},
		{
			binary: "1" + strings.Repeat("0", 127),
			want: Decoded{
				Width:          128,
				Unsigned:       uint128.New(0, 1<<63),
				TwosComplement: integer.Min,
				OnesComplement: integer.Max.Neg(),
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.binary), func(t *testing.T) {
			got, err := Decode(tc.binary)
			require.NoError(t, err)

			if diff := diffConfig.Compare(tc.want, got); diff != "" {
				t.Logf("got: %s", spew.Sdump(got))
				t.Fatalf("Decode(%s): -want/+got:\n%s", tc.binary, diff)
			}

			require.Equal(t, tc.want.TwosComplement.Sign() < 0, got.Negative())
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	for i, in := range []string{
		"",
		"2",
		"0b1",
		"10 1",
		"1" + strings.Repeat("0", 128),
	} {
		t.Run(fmt.Sprintf("[%d]%q", i, in), func(t *testing.T) {
			_, err := Decode(in)
			require.Error(t, err)
			require.True(t, radix.MalformedDigits.Has(err), "%+v", err)
			require.True(t, Error.Has(err))
		})
	}
}

// values returns boundary values followed by n pseudo random ones.
func values(n int) []integer.Int128 {
	vs := []integer.Int128{
		integer.Zero,
		integer.FromInt64(1),
		integer.FromInt64(-1),
		integer.FromInt64(-128),
		integer.FromInt64(127),
		integer.Min,
		integer.Max,
		integer.Max.Neg(),
	}

	for w := 1; w < radix.MaxBits; w++ {
		vs = append(vs, lowest(w), lowest(w).Neg(), integer.FromBits(lowest(w).Bits().AddWrap64(1)))
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		u := uint128.New(rng.Uint64(), rng.Uint64()).Rsh(uint(rng.Intn(128)))
		v := integer.FromBits(u)
		if rng.Intn(2) == 0 {
			v = v.Neg()
		}

		vs = append(vs, v)
	}

	return vs
}

func TestTwosComplementRoundtrip(t *testing.T) {
	for _, v := range values(2000) {
		binary := EncodeTwosComplement(v)

		d, err := Decode(binary)
		require.NoError(t, err, "%s -> %s", v, binary)
		require.Equal(t, v, d.TwosComplement, "%s -> %s", v, binary)
		require.Equal(t, MinimalWidth(v), d.Width)
	}
}

func TestUnsignedRoundtrip(t *testing.T) {
	for _, v := range values(2000) {
		binary, ok := EncodeUnsigned(v)
		if v.Sign() < 0 {
			require.False(t, ok)
			continue
		}
		require.True(t, ok)

		d, err := Decode(binary)
		require.NoError(t, err, "%s -> %s", v, binary)
		require.Equal(t, v.Bits(), d.Unsigned, "%s -> %s", v, binary)
	}
}

func TestOnesComplementRoundtrip(t *testing.T) {
	for _, v := range values(2000) {
		binary, err := EncodeOnesComplement(v)
		if v == integer.Min {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err, "%s", v)

		d, err := Decode(binary)
		require.NoError(t, err, "%s -> %s", v, binary)
		require.Equal(t, v, d.OnesComplement, "%s -> %s", v, binary)
	}
}

func TestMinimality(t *testing.T) {
	for _, v := range values(2000) {
		w := MinimalWidth(v)
		require.True(t, Fits(v, w), "%s at %d", v, w)

		if v.Sign() < 0 && w > 1 {
			require.False(t, Fits(v, w-1), "%s at %d", v, w-1)
		}
	}
}

func TestFits(t *testing.T) {
	require.False(t, Fits(integer.Zero, 0))
	require.True(t, Fits(integer.Zero, 1))
	require.True(t, Fits(integer.FromInt64(-1), 1))
	require.False(t, Fits(integer.FromInt64(1), 1))
	require.True(t, Fits(integer.FromInt64(127), 8))
	require.False(t, Fits(integer.FromInt64(128), 8))
	require.True(t, Fits(integer.FromInt64(-128), 8))
	require.False(t, Fits(integer.FromInt64(-129), 8))
	require.True(t, Fits(integer.Min, 128))
}

func BenchmarkEncodeTwosComplement(b *testing.B) {
	v := integer.MustParse("-524287")

	for n := 0; n < b.N; n++ {
		_ = EncodeTwosComplement(v)
	}
}

func BenchmarkDecode(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, err := Decode("10000000000000000001")
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
