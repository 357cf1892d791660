package upservice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icu4g/ucore/gennorm"
	"github.com/icu4g/ucore/trie"
	"github.com/icu4g/ucore/unorm"
	"github.com/icu4g/ucore/upservice"
	"github.com/icu4g/ucore/uprops"
)

func buildTestService(t *testing.T) *upservice.Service {
	t.Helper()
	records := []gennorm.SourceRecord{
		{CodePoint: 0x0041, Category: uprops.Lu, Bidi: uprops.BidiL,
			NFCQuickCheck: unorm.QCYes, NFKCQuickCheck: unorm.QCYes,
			HasLowercase: true, Lowercase: 0x0061},
		{CodePoint: 0x0300, Category: uprops.Mn, Bidi: uprops.BidiNSM, CombiningClass: 230,
			NFCQuickCheck: unorm.QCYes, NFKCQuickCheck: unorm.QCYes},
		{CodePoint: 0x00C0, Category: uprops.Lu, Bidi: uprops.BidiL,
			DecompType: gennorm.DecompCanonical, Decomposition: []rune{0x0041, 0x0300},
			NFCQuickCheck: unorm.QCNo, NFKCQuickCheck: unorm.QCNo},
	}

	result, err := gennorm.Build(records, nil)
	require.NoError(t, err)

	normStore, err := result.Normalization.BuiltStore()
	require.NoError(t, err)

	propsImage, err := result.Properties.Serialize(trie.Width32)
	require.NoError(t, err)

	propsStore, err := uprops.Load(propsImage)
	require.NoError(t, err)

	return upservice.New(propsStore, normStore)
}

func TestServiceCharReturnsExpectedRecord(t *testing.T) {
	svc := buildTestService(t)

	info, err := svc.Char(0x0041)
	require.NoError(t, err)
	assert.Equal(t, "Lu", info.Category)
	assert.Equal(t, "L", info.BidiClass)
	assert.Equal(t, rune(0x0061), info.Lowercase)
	assert.False(t, info.HasDigitValue)
}

func TestServiceNormalizeComposesToNFC(t *testing.T) {
	svc := buildTestService(t)

	decomposed := string([]rune{0x0041, 0x0300})
	out, err := svc.Normalize(unorm.NFC, decomposed)
	require.NoError(t, err)
	assert.Equal(t, string(rune(0x00C0)), out)
}

func TestServiceNormalizeDecomposesToNFD(t *testing.T) {
	svc := buildTestService(t)

	composed := string(rune(0x00C0))
	out, err := svc.Normalize(unorm.NFD, composed)
	require.NoError(t, err)
	assert.Equal(t, string([]rune{0x0041, 0x0300}), out)
}

func TestServiceQuickCheckReportsNo(t *testing.T) {
	svc := buildTestService(t)

	text := string(rune(0x00C0)) + string([]rune{0x0041, 0x0300})
	result, err := svc.QuickCheck(unorm.NFC, text)
	require.NoError(t, err)
	assert.Equal(t, "no", result)
}

func TestServiceParseFormRejectsUnknown(t *testing.T) {
	_, err := upservice.ParseForm("nfz")
	assert.Error(t, err)
}

func TestServiceCharWithoutPropertiesErrors(t *testing.T) {
	svc := upservice.New(nil, nil)
	_, err := svc.Char(0x0041)
	assert.Error(t, err)
}
