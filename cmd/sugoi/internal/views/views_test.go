package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/i18n"
	"github.com/germanamz/sugoi/pkg/router"
	"github.com/germanamz/sugoi/pkg/config"
	"github.com/germanamz/sugoi/pkg/texttools/b64"
	"github.com/germanamz/sugoi/pkg/texttools/baseconv"
	"github.com/germanamz/sugoi/pkg/texttools/digest"
	"github.com/germanamz/sugoi/pkg/texttools/regexgen"
	"github.com/germanamz/sugoi/pkg/texttools/suddendeath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) Env {
	t.Helper()
	env := NewEnv(config.Default(), nil)
	seed := uint64(0)
	env.Seed = func() uint64 {
		seed++
		return seed
	}
	return env
}

func typeText(v View, s string) View {
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return v
}

func press(v View, kt tea.KeyType) View {
	v, _ = v.Update(tea.KeyMsg{Type: kt})
	return v
}

func mounted(t *testing.T, v View) View {
	t.Helper()
	v.SetSize(80, 24)
	v.Focus()
	return v
}

func TestMemoRecomputesOnlyOnKeyChange(t *testing.T) {
	var m memo[string, int]
	calls := 0
	fn := func(k string) (int, error) {
		calls++
		return len(k), nil
	}

	v, changed, err := m.get("abc", fn)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, v)

	v, changed, _ = m.get("abc", fn)
	assert.False(t, changed)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, calls)

	v, changed, _ = m.get("abcd", fn)
	assert.True(t, changed)
	assert.Equal(t, 4, v)
	assert.Equal(t, 2, calls)
}

func TestMemoCachesErrors(t *testing.T) {
	var m memo[int, string]
	boom := errors.New("boom")
	calls := 0
	fn := func(int) (string, error) {
		calls++
		return "", boom
	}

	_, _, err := m.get(1, fn)
	require.ErrorIs(t, err, boom)
	_, changed, err := m.get(1, fn)
	require.ErrorIs(t, err, boom)
	assert.False(t, changed)
	assert.Equal(t, 1, calls)
}

func TestRegistryDefault(t *testing.T) {
	reg := Default()

	routes := make([]router.Route, 0, len(reg.Entries()))
	for _, e := range reg.Entries() {
		routes = append(routes, e.Route)
	}
	assert.Equal(t, router.All(), routes)

	tools := reg.MenuEntries(GroupTools)
	require.Len(t, tools, 4)
	assert.Equal(t, router.Base64, tools[0].Route)

	gens := reg.MenuEntries(GroupGenerators)
	require.Len(t, gens, 2)
	assert.Equal(t, router.SuddenDeath, gens[1].Route)
}

func TestRegistryMount(t *testing.T) {
	reg := Default()
	env := testEnv(t)

	tests := []struct {
		route router.Route
		want  View
	}{
		{route: router.Index, want: &IndexView{}},
		{route: router.Base64, want: &Base64View{}},
		{route: router.Digest, want: &DigestView{}},
		{route: router.BaseConverter, want: &BaseConverterView{}},
		{route: router.CharCounter, want: &CharCounterView{}},
		{route: router.Regex, want: &RegexView{}},
		{route: router.SuddenDeath, want: &SuddenDeathView{}},
	}

	for _, tt := range tests {
		t.Run(tt.route.String(), func(t *testing.T) {
			assert.IsType(t, tt.want, reg.Mount(tt.route, env))
		})
	}
}

func TestRegistryMountFallsBackToIndex(t *testing.T) {
	reg := NewRegistry()
	assert.IsType(t, &IndexView{}, reg.Mount(router.Digest, testEnv(t)))
}

func TestRegistryRegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Entry{Route: router.Base64, Title: "one", Group: GroupTools, New: NewBase64})
	reg.Register(Entry{Route: router.Base64, Title: "two", Group: GroupTools, New: NewBase64})

	require.Len(t, reg.Entries(), 1)
	e, ok := reg.Get(router.Base64)
	require.True(t, ok)
	assert.Equal(t, "two", e.Title)
}

func TestErrorMessage(t *testing.T) {
	en := i18n.NewPrinter("en")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "base64",
			err:  &b64.DecodeError{Offset: 3, Variant: b64.StdVariant},
			want: "Invalid base64 input at byte 3",
		},
		{
			name: "digit",
			err:  &baseconv.ParseError{Input: "12", Base: 2, Pos: 1, Digit: '2'},
			want: "Invalid digit '2' at position 1 for base 2.",
		},
		{
			name: "empty number",
			err:  &baseconv.ParseError{Pos: -1, Base: 10},
			want: "Enter a number.",
		},
		{
			name: "base range",
			err:  &baseconv.BaseError{Base: 40},
			want: "Base 40 is out of range (2 to 36).",
		},
		{
			name: "pattern",
			err:  &regexgen.PatternError{Pattern: "(", Err: errors.New("missing )")},
			want: "Invalid regular expression: missing )",
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "Something went wrong: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, ErrorMessage(en, tt.err), tt.want)
		})
	}
}

func TestErrorMessageJapanese(t *testing.T) {
	ja := i18n.NewPrinter("ja")
	msg := ErrorMessage(ja, &baseconv.BaseError{Base: 1})
	assert.Equal(t, "基数 1 は範囲外です（2〜36）。", msg)
}

func TestBase64ViewEncodes(t *testing.T) {
	v := mounted(t, NewBase64(testEnv(t)))
	v = typeText(v, "hello")

	assert.Equal(t, "aGVsbG8=", v.Result())
	assert.Contains(t, v.View(), "aGVsbG8=")
}

func TestBase64ViewToggles(t *testing.T) {
	v := mounted(t, NewBase64(testEnv(t)))
	v = typeText(v, "??>>")
	assert.Equal(t, "Pz8+Pg==", v.Result())

	v = press(v, tea.KeyCtrlU)
	assert.Equal(t, "Pz8-Pg==", v.Result())

	v = press(v, tea.KeyCtrlP)
	assert.Equal(t, "Pz8-Pg", v.Result())
}

func TestBase64ViewDecodeError(t *testing.T) {
	v := mounted(t, NewBase64(testEnv(t)))
	v = press(v, tea.KeyCtrlT)
	v = typeText(v, "***")

	assert.Empty(t, v.Result())
	assert.Contains(t, v.View(), "Invalid base64 input")
}

func TestBase64ViewDecodes(t *testing.T) {
	v := mounted(t, NewBase64(testEnv(t)))
	v = press(v, tea.KeyCtrlT)
	v = typeText(v, "aGVsbG8=")

	assert.Equal(t, "hello", v.Result())
}

func TestBase64ViewDetectsVariant(t *testing.T) {
	v := mounted(t, NewBase64(testEnv(t)))
	v = press(v, tea.KeyCtrlT)
	v = typeText(v, "Pz8-Pg")
	assert.Empty(t, v.Result())

	v = press(v, tea.KeyCtrlD)
	assert.Equal(t, "??>>", v.Result())
	assert.Contains(t, v.View(), "Decoded as url-safe, unpadded.")
}

func TestBase64ViewDetectOnlyWhileDecoding(t *testing.T) {
	v := mounted(t, NewBase64(testEnv(t)))
	v = typeText(v, "Pz8-Pg")
	v = press(v, tea.KeyCtrlD)
	assert.False(t, v.(*Base64View).detect)
	assert.Equal(t, "UHo4LVBn", v.Result())

	// Decoding stays strict until detection is asked for.
	v = press(v, tea.KeyCtrlT)
	assert.Empty(t, v.Result())
	assert.Contains(t, v.View(), "Invalid base64 input")
}

func TestBase64ViewUsesConfig(t *testing.T) {
	env := testEnv(t)
	env.Config.Base64 = config.Base64Config{URLSafe: true, Padded: false}

	v := mounted(t, NewBase64(env))
	v = typeText(v, "??>>")
	assert.Equal(t, "Pz8-Pg", v.Result())
}

func TestDigestView(t *testing.T) {
	v := mounted(t, NewDigest(testEnv(t)))
	dv := v.(*DigestView)
	assert.Equal(t, digest.SHA256, dv.Chosen())
	// Empty text has a digest like any other input.
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", v.Result())

	v = typeText(v, "abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", v.Result())

	v = press(v, tea.KeyCtrlN)
	assert.Equal(t, digest.SHA512, dv.Chosen())
	assert.Len(t, v.Result(), 128)

	v = press(v, tea.KeyCtrlN)
	assert.Equal(t, digest.MD5, dv.Chosen())
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", v.Result())
}

func TestBaseConverterView(t *testing.T) {
	env := testEnv(t)
	env.Config.BaseConverter = config.BaseConverterConfig{From: 16, To: 10}

	v := mounted(t, NewBaseConverter(env))
	assert.Empty(t, v.Result())
	assert.NotContains(t, v.View(), "Enter a number.")

	v = typeText(v, "FF")
	assert.Equal(t, "255", v.Result())
	assert.Contains(t, v.View(), "11111111")
}

func TestBaseConverterViewInvalidDigit(t *testing.T) {
	env := testEnv(t)
	env.Config.BaseConverter = config.BaseConverterConfig{From: 2, To: 10}

	v := mounted(t, NewBaseConverter(env))
	v = typeText(v, "102")

	assert.Empty(t, v.Result())
	assert.Contains(t, v.View(), "Invalid digit '2' at position 2 for base 2.")
}

func TestBaseConverterViewRejectsNonDigitBase(t *testing.T) {
	env := testEnv(t)
	v := mounted(t, NewBaseConverter(env)).(*BaseConverterView)

	var view View = v
	view = press(view, tea.KeyTab)
	view = typeText(view, "x")

	assert.Equal(t, "10", v.fields[fieldFrom].Value())
}

func TestCharCounterView(t *testing.T) {
	v := mounted(t, NewCharCounter(testEnv(t)))
	v = typeText(v, "a b")
	v = press(v, tea.KeyEnter)
	v = typeText(v, "c")

	c := v.(*CharCounterView).Counts()
	assert.Equal(t, 5, c.Characters)
	assert.Equal(t, 2, c.Words)
	assert.Equal(t, 2, c.Lines)
	assert.Equal(t, "characters=5 words=2 lines=2 bytes=5", v.Result())
}

func TestRegexViewInfers(t *testing.T) {
	v := mounted(t, NewRegex(testEnv(t)))
	assert.Empty(t, v.Result())

	v = typeText(v, "abc123")
	v = press(v, tea.KeyEnter)
	v = typeText(v, "xyz789")

	assert.NotEmpty(t, v.Result())
	for _, s := range []string{"abc123", "xyz789"} {
		assert.Regexp(t, v.Result(), s)
	}
}

func TestRegexViewGenerates(t *testing.T) {
	v := mounted(t, NewRegex(testEnv(t)))
	v = press(v, tea.KeyCtrlT)
	v = typeText(v, "[a-c]{3}")

	lines := strings.Split(v.Result(), "\n")
	require.Len(t, lines, config.Default().Regex.Samples)
	for _, l := range lines {
		assert.Regexp(t, `^[a-c]{3}$`, l)
	}

	before := v.Result()
	v = typeText(v, "")
	assert.Equal(t, before, v.Result())
}

func TestRegexViewInvalidPattern(t *testing.T) {
	v := mounted(t, NewRegex(testEnv(t)))
	v = press(v, tea.KeyCtrlT)
	v = typeText(v, "(")

	assert.Empty(t, v.Result())
	assert.Contains(t, v.View(), "Invalid regular expression")
}

func TestSuddenDeathView(t *testing.T) {
	v := mounted(t, NewSuddenDeath(testEnv(t)))
	assert.Equal(t, suddendeath.Random(1), v.Result())

	v = press(v, tea.KeyCtrlR)
	assert.Equal(t, suddendeath.Random(2), v.Result())

	v = typeText(v, suddendeath.DefaultText)
	assert.Equal(t, suddendeath.Generate(suddendeath.DefaultText), v.Result())
}

func TestSuddenDeathViewConfiguredDefault(t *testing.T) {
	env := testEnv(t)
	env.Config.SuddenDeath.DefaultText = "無"

	v := mounted(t, NewSuddenDeath(env))
	assert.Equal(t, suddendeath.Generate("無"), v.Result())
}

func TestIndexViewListsTools(t *testing.T) {
	v := mounted(t, NewIndex(testEnv(t), Default())).(*IndexView)
	md := v.markdown()
	assert.Contains(t, md, "Select from here")
	assert.Contains(t, md, "- Base converter `#/base-conv`")
	assert.Contains(t, md, "- 突然の死ジェネレーター `#/sudden-death`")
	assert.NotEmpty(t, v.View())
	assert.Empty(t, v.Result())
}
