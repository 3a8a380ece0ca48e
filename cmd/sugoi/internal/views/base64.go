package views

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/i18n"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/styles"
	"github.com/germanamz/sugoi/pkg/texttools/b64"
)

var (
	keyB64URLSafe = key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "url-safe"))
	keyB64Padding = key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "padding"))
	keyB64Detect  = key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "detect variant"))
)

type b64Key struct {
	text    string
	decode  bool
	detect  bool
	variant b64.Variant
}

type b64Result struct {
	text     string
	quoted   bool
	detected *b64.Variant // set when detection picked the variant
}

// Base64View encodes or decodes its input.
type Base64View struct {
	env     Env
	input   textarea.Model
	decode  bool
	detect  bool
	variant b64.Variant
	memo    memo[b64Key, b64Result]
	out     b64Result
	err     error
	width   int
}

// NewBase64 creates an empty base64 view using the configured variant.
func NewBase64(env Env) View {
	v := &Base64View{
		env:   env,
		input: newTextarea("Text to encode, or base64 to decode"),
		variant: b64.Variant{
			Alphabet: b64.Standard,
			Padded:   env.Config.Base64.Padded,
		},
	}
	if env.Config.Base64.URLSafe {
		v.variant.Alphabet = b64.URLSafe
	}
	v.recompute()
	return v
}

func (v *Base64View) Init() tea.Cmd { return nil }

func (v *Base64View) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keyToggleMode):
			v.decode = !v.decode
			v.recompute()
			return v, nil
		case key.Matches(k, keyB64URLSafe):
			if v.variant.Alphabet == b64.URLSafe {
				v.variant.Alphabet = b64.Standard
			} else {
				v.variant.Alphabet = b64.URLSafe
			}
			v.recompute()
			return v, nil
		case key.Matches(k, keyB64Padding):
			v.variant.Padded = !v.variant.Padded
			v.recompute()
			return v, nil
		case v.decode && key.Matches(k, keyB64Detect):
			// In encode mode ctrl+d belongs to the textarea.
			v.detect = !v.detect
			v.recompute()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.recompute()
	return v, cmd
}

func (v *Base64View) recompute() {
	k := b64Key{text: v.input.Value(), decode: v.decode, detect: v.detect, variant: v.variant}
	out, changed, err := v.memo.get(k, func(k b64Key) (b64Result, error) {
		if !k.decode {
			return b64Result{text: b64.Encode(k.text, k.variant)}, nil
		}
		var (
			res     b64Result
			decoded string
			err     error
		)
		if k.detect {
			var used b64.Variant
			decoded, used, err = b64.DecodeAny(k.text)
			res.detected = &used
		} else {
			decoded, err = b64.Decode(k.text, k.variant)
		}
		if err != nil {
			return b64Result{}, err
		}
		res.text = decoded
		if !utf8.ValidString(decoded) {
			res.text, res.quoted = strconv.Quote(decoded), true
		}
		return res, nil
	})
	v.out, v.err = out, err
	if changed {
		logFailure(v.env.Logger, "base64", err)
	}
}

func (v *Base64View) Focus() tea.Cmd { return v.input.Focus() }
func (v *Base64View) Blur()          { v.input.Blur() }

func (v *Base64View) SetSize(width, _ int) {
	v.width = width
	v.input.SetWidth(textareaWidth(width))
}

func (v *Base64View) Result() string {
	if v.err != nil {
		return ""
	}
	return v.out.text
}

func (v *Base64View) ShortHelp() []key.Binding {
	if v.decode {
		return []key.Binding{keyToggleMode, keyB64URLSafe, keyB64Padding, keyB64Detect, KeyCopy}
	}
	return []key.Binding{keyToggleMode, keyB64URLSafe, keyB64Padding, KeyCopy}
}

func (v *Base64View) View() string {
	options := lipgloss.JoinHorizontal(lipgloss.Top,
		renderOption("decode", v.decode), "  ",
		renderOption("url-safe", v.variant.Alphabet == b64.URLSafe), "  ",
		renderOption("padding", v.variant.Padded),
	)
	if v.decode {
		options = lipgloss.JoinHorizontal(lipgloss.Top, options, "  ", renderOption("detect", v.detect))
	}

	var notes []string
	if v.err == nil && v.out.detected != nil && v.input.Value() != "" {
		notes = append(notes, v.env.Printer.Sprintf(i18n.MsgDecodedVariant, v.out.detected.String()))
	}
	if v.err == nil && v.out.quoted {
		notes = append(notes, v.env.Printer.Sprintf(i18n.MsgNotValidUTF8))
	}
	note := ""
	if len(notes) > 0 {
		note = styles.DimStyle.Render(strings.Join(notes, "\n"))
	}

	return joinNonEmpty(
		renderTitle("Base64"),
		options,
		v.input.View(),
		renderOutcome(v.env.Printer, v.out.text, v.err, v.width),
		note,
	)
}
