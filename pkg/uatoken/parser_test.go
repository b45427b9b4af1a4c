package uatoken_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uatoken/pkg/uatoken"
)

const (
	samsungDolfinUA = "Mozilla/5.0 (SAMSUNG; SAMSUNG-GT-S7250D/S7250DXXKK1; U; Bada/2.0; ru-ru) AppleWebKit/534.20 (KHTML, like Gecko) Dolfin/3.0 Mobile HVGA SMM-MMS/1.2.0 OPN-B"
	jucUA           = "JUC(Linux;U;Android2.3.5;Zh_cn;HTC Desire HD A9191;480*800;)UCWEB7.8.0.95/139/355"
	series60UCUA    = "Mozilla/5.0 (S60V5; U; Pt-br; Nokia5233)/UC Browser8.2.0.132/50/352/UCWEB Mobile"
	series40UA      = "Mozilla/5.0 (Series40; NokiaC3-00/03.35; Profile/MIDP-2.1 Configuration/CLDC-1.1) Gecko/20100401 S40OviBrowser/2.0.2.68.14"
	lgUA            = "Mozilla/5.0 (X11; Linux i686; U; en-US) Gecko/20081217  Vision-Browser/8.1 301x200 LG VN530"
	webOSUA         = "Mozilla/5.0 (webOS/1.4.5; U; en-US) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0"
	blackberryUA    = "BlackBerry9550/5.0.0.550 Profile/MIDP-2.1 Configuration/CLDC-1.1 VendorID/303"
	cricketUA       = "Cricket-A310/1.0 UP.Browser/6.3.0.7 (GUI) MMP/2.0"
	operaScreenUA   = "Opera/9.5 (Microsoft Windows; Windows CE; Opera Mobi/9.5; U; en) 480x800 SAMSUNG SCH-i920 PPC"
	androidUA       = "Mozilla/5.0 (Linux; U; Android 2.3.5; en-us) AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1"
	astroUA         = "ASTRO36_TD/v3 MAUI/10A1032MP_ASTRO_W1052 Release/31.12.2010 Browser/Opera Profile/MIDP-2.0 Configuration/CLDC-1.1 Sync/SyncClient1.1 Opera/9.80 (MTK; Nucleus; Opera Mobi/4000; U; en-US) Presto/2.5.28 Version/10.10"
)

var corpus = []string{
	samsungDolfinUA, jucUA, series60UCUA, series40UA, lgUA, webOSUA,
	blackberryUA, cricketUA, operaScreenUA, androidUA, astroUA,
	"sam375/1.0[TF268435460214674193000000014783318126] UP.Browser/6.2.3.8 (GUI) MMP/2.0 Profile/MIDP-2.0 Configuration/CLDC-1.1",
	"T24 WIFI Duo/MTKRelease/2011/07/01Browser/MAUIProfile/MIDP-2.0Configuration/CLDC-1.0",
	"TwitterAndroid/3.3.1 (169) HTC Sensation Z710e/15 (HTC;pyramid;vodafone_uk;htc_pyramid;1)",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 5_1 like Mac OS X) AppleWebKit/534.46 (KHTML, like Gecko) CriOS/19.0.1084.60 Mobile/9B206 Safari/7534.48.3",
}

// assertValues checks a subset of tokens; "" means present without a version.
func assertValues(t *testing.T, tokens *uatoken.Tokens, kv ...string) {
	t.Helper()
	for i := 0; i+1 < len(kv); i += 2 {
		v, ok := tokens.Lookup(kv[i])
		if assert.True(t, ok, "token %q missing", kv[i]) {
			assert.Equal(t, uatoken.Versioned(kv[i+1]), v, "token %q", kv[i])
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("samsung dolfin", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(samsungDolfinUA)

		assert.Equal(t, uatoken.SecurityStrong, tokens.Security())
		assert.Equal(t, "ru-ru", tokens.Localization())
		_, ok := tokens.Screen()
		assert.False(t, ok)

		assertValues(t, tokens,
			"mozilla", "5.0",
			"bada", "2.0",
			"apple", "534.20",
			"webkit", "534.20",
			"apple_webkit", "534.20",
			"khtml", "",
			"like_gecko", "",
			"gecko", "",
			"samsung", "s7250dxxkk1",
			"gt_s7250d", "s7250dxxkk1",
			"dolfin", "3.0",
			"smm_mms", "1.2.0",
		)
		assert.False(t, tokens.Has("like"))
		assert.False(t, tokens.Has("mobile"))
	})

	t.Run("juc", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(jucUA)

		assert.Equal(t, uatoken.SecurityStrong, tokens.Security())
		assert.Equal(t, "zh-cn", tokens.Localization())
		screen, ok := tokens.Screen()
		require.True(t, ok)
		assert.Equal(t, uatoken.Screen{Width: 480, Height: 800}, screen)

		assertValues(t, tokens,
			"android", "2.3.5",
			"ucweb", "7.8.0.95",
			"htc", "",
			"htc_desire", "",
			"desire", "",
			"hd_a9191", "",
			"linux", "",
		)
		assert.True(t, tokens.Has("android", ">=2.3.5"))
		assert.True(t, tokens.Has("ucweb", "7.8.0.95"))
	})

	t.Run("series 60 uc browser", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(series60UCUA)

		assert.Equal(t, "pt-br", tokens.Localization())
		assertValues(t, tokens,
			"mozilla", "5.0",
			"series_60", "v5",
			"uc_browser", "8.2.0.132",
			"nokia", "",
			"nokia_5233", "",
		)
	})

	t.Run("series 40 ovi browser", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(series40UA)

		assert.Empty(t, tokens.Security())
		assert.Empty(t, tokens.Localization())
		assertValues(t, tokens,
			"gecko", "2010.04.01",
			"nokia", "03.35",
			"nokia_c3", "03.35",
			"profile", "midp-2.1",
			"configuration", "cldc-1.1",
			"series_40", "2.0.2.68.14",
			"ovi_browser", "2.0.2.68.14",
		)
	})

	t.Run("lg with screen", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(lgUA)

		screen, ok := tokens.Screen()
		require.True(t, ok)
		assert.Equal(t, uatoken.Screen{Width: 301, Height: 200}, screen)
		assert.Equal(t, "en-us", tokens.Localization())
		assertValues(t, tokens,
			"lg", "",
			"lg_vn530", "",
			"gecko", "2008.12.17",
			"vision_browser", "8.1",
			"linux_i686", "",
		)
	})

	t.Run("webos", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(webOSUA)

		assertValues(t, tokens,
			"web_os", "1.4.5",
			"safari", "532.2",
			"pre", "1.0",
			"version", "1.0",
			"apple_webkit", "532.2",
		)
		assert.True(t, tokens.Has("Safari", ">=532"))
	})

	t.Run("blackberry", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(blackberryUA)

		assertValues(t, tokens,
			"blackberry", "5.0.0.550",
			"blackberry_9550", "5.0.0.550",
			"vendor_id", "303",
			"profile", "midp-2.1",
		)
		assert.False(t, tokens.Has("black"))
	})

	t.Run("cricket", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(cricketUA)

		assertValues(t, tokens,
			"cricket", "1.0",
			"cricket_a310", "1.0",
			"a310", "1.0",
			"up_browser", "6.3.0.7",
			"gui", "",
			"mmp", "2.0",
		)
	})

	t.Run("opera with screen", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(operaScreenUA)

		assert.Equal(t, uatoken.SecurityStrong, tokens.Security())
		assert.Equal(t, "en", tokens.Localization())
		screen, ok := tokens.Screen()
		require.True(t, ok)
		assert.Equal(t, uatoken.Screen{Width: 480, Height: 800}, screen)
		assertValues(t, tokens,
			"opera", "9.5",
			"opera_mobi", "9.5",
			"windows_ce", "",
		)
	})

	t.Run("astro", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse(astroUA)

		assert.Equal(t, "en-us", tokens.Localization())
		assertValues(t, tokens,
			"astro_36", "v3",
			"td", "v3",
			"maui", "10a1032mp_astro_w1052",
			"opera", "9.80",
			"opera_mobi", "4000",
			"presto", "2.5.28",
		)
	})
}

func TestParse_Precedence(t *testing.T) {
	t.Parallel()

	t.Run("first version wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.0", uatoken.Parse("Foo/1.0 Foo/2.0").Version("foo"))
	})

	t.Run("presence is upgraded to a version", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "3.0", uatoken.Parse("Foo (Bar) Bar/3.0").Version("bar"))
	})

	t.Run("last screen wins", func(t *testing.T) {
		t.Parallel()
		screen, ok := uatoken.Parse("Foo 240x320 Bar 480x800").Screen()
		require.True(t, ok)
		assert.Equal(t, uatoken.Screen{Width: 480, Height: 800}, screen)
	})

	t.Run("first security class wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uatoken.SecurityStrong, uatoken.Parse("Foo (U; I)").Security())
		assert.Equal(t, uatoken.SecurityNone, uatoken.Parse("Foo (N)").Security())
	})

	t.Run("most specific locale wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en-us", uatoken.Parse("Foo (en; en-us)").Localization())
		assert.Equal(t, "en-us", uatoken.Parse("Foo (en-us; en)").Localization())
		assert.Equal(t, "de-ch", uatoken.Parse("Foo (de_CHE; de-ch)").Localization())
		assert.Equal(t, "de-ch", uatoken.Parse("Foo (de-ch; de_CHE)").Localization())
		assert.Equal(t, "fr", uatoken.Parse("Foo (fr; de)").Localization())
	})

	t.Run("metadata parts are not tokens", func(t *testing.T) {
		t.Parallel()
		tokens := uatoken.Parse("Foo (U; en-us) 240x320")
		assert.Equal(t, []string{"foo"}, tokens.Keys())
	})
}

func TestParse_Degenerate(t *testing.T) {
	t.Parallel()

	for _, ua := range []string{"", " ", ";;;", "()[]", "////", "\x00\xff", "((((", "Mozilla/", "/5.0"} {
		assert.NotPanics(t, func() {
			tokens := uatoken.Parse(ua)
			require.NotNil(t, tokens)
			_, ok := tokens.Screen()
			assert.False(t, ok)
		}, "input %q", ua)
	}

	tokens := uatoken.Parse("")
	assert.Zero(t, tokens.Len())
	assert.Empty(t, tokens.Security())
	assert.Empty(t, tokens.Localization())
}

func TestParse_KeysAreNormalized(t *testing.T) {
	t.Parallel()

	for _, ua := range corpus {
		for _, k := range uatoken.Parse(ua).Keys() {
			assert.Equal(t, strings.ToLower(k), k, "ua %q", ua)
			assert.False(t, strings.ContainsFunc(k, unicode.IsSpace), "key %q of ua %q", k, ua)
			assert.NotEmpty(t, k)
		}
	}
}

func TestRules_Parse(t *testing.T) {
	t.Parallel()

	rules := uatoken.NewRules(uatoken.WithStopwords("linux", "khtml"))
	tokens := rules.Parse(androidUA)

	assert.False(t, tokens.Has("linux"))
	assert.False(t, tokens.Has("khtml"))
	assert.True(t, tokens.Has("android", ">=2.3"))
	assert.True(t, uatoken.Parse(androidUA).Has("linux"))
}
