package enc

import (
	"errors"
	"github.com/stretchr/testify/require"
	"testing"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

var encoderTests = [][]byte{
	{},
	{0},
	{0, 0},
	{0, 0, 0, 0},
	[]byte("f"),
	[]byte("fo"),
	[]byte("foo"),
	[]byte("Hola á ë"),
	encoderTest,
	encoderTest[1:],
	encoderTest[2:],
}

func Test_Encoders(t *testing.T) {
	names := make(map[string]bool)
	codes := make(map[byte]bool)

	for _, e := range Encoders() {
		require.False(t, names[e.Name()], "Duplicate encoder name %v", e.Name())
		require.False(t, codes[e.Code()], "Duplicate encoder code %v", string(e.Code()))
		names[e.Name()] = true
		codes[e.Code()] = true

		require.Greater(t, e.BlocksizeRaw(), 0)
		require.GreaterOrEqual(t, Ratio(e), 1.0)

		for _, data := range encoderTests {
			decoded, err := e.Decode(e.Encode(data))
			require.NoError(t, err, "%v could not decode its own output", e.Name())
			require.Equal(t, data, decoded, "%v round trip failed", e.Name())
		}
	}

	require.Equal(t, "Base64", Encoders()[0].Name())
}

func Test_ByName(t *testing.T) {
	e, err := ByName("base64")
	require.NoError(t, err)
	require.Equal(t, "Base64", e.Name())

	e, err = ByName(" BASE91 ")
	require.NoError(t, err)
	require.Equal(t, byte('X'), e.Code())

	_, err = ByName("base64url")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownEncoder))
}

func Test_ByCode(t *testing.T) {
	e, err := ByCode('S')
	require.NoError(t, err)
	require.Equal(t, "Base64", e.Name())

	_, err = ByCode('?')
	require.True(t, errors.Is(err, ErrUnknownEncoder))
}

func Test_IsCorrupt(t *testing.T) {
	require.False(t, IsCorrupt(nil))
	require.False(t, IsCorrupt(errors.New("something else")))

	_, err := Decode("!!!!")
	require.True(t, IsCorrupt(err))

	_, err = (&Base64Encoder{Strict: true}).Decode("Zg")
	require.True(t, IsCorrupt(err))

	_, err = (&Base32Encoder{}).Decode("!!")
	require.True(t, IsCorrupt(err))

	_, err = (&Base85Encoder{}).Decode("{{{{{")
	require.True(t, IsCorrupt(err))

	_, err = (&Base91Encoder{}).Decode("ab\xff")
	require.Error(t, err)
	require.True(t, IsCorrupt(err))

	_, err = (&Base128Encoder{}).Decode("a")
	require.Error(t, err)
	require.True(t, IsCorrupt(err))
}

func Test_EncodersASCII(t *testing.T) {
	all := make([]byte, 256)
	for k := range all {
		all[k] = byte(k)
	}
	for _, e := range Encoders() {
		printable := true
		for _, c := range []byte(e.Encode(all)) {
			if c < 0x20 || c > 0x7E {
				printable = false
				break
			}
		}
		require.Equal(t, e.ASCII(), printable, "%v", e.Name())
	}
}
