package md2mindmap

import (
	"strings"

	"github.com/alnah/go-md2mindmap/internal/config"
)

// emojiShortcuts maps :name: tokens to their emoji. Immutable table,
// initialized once at startup.
var emojiShortcuts = map[string]string{
	":smile:":    "😊",
	":heart:":    "❤️",
	":star:":     "⭐",
	":fire:":     "🔥",
	":check:":    "✅",
	":cross:":    "❌",
	":warning:":  "⚠️",
	":info:":     "ℹ️",
	":rocket:":   "🚀",
	":bulb:":     "💡",
	":gear:":     "⚙️",
	":book:":     "📚",
	":computer:": "💻",
	":mobile:":   "📱",
	":email:":    "📧",
	":calendar:": "📅",
}

// emojiReplacer performs all shortcut substitutions in one pass.
var emojiReplacer = newEmojiReplacer()

func newEmojiReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(emojiShortcuts)*2)
	for shortcut, emoji := range emojiShortcuts {
		pairs = append(pairs, shortcut, emoji)
	}
	return strings.NewReplacer(pairs...)
}

// emojiPlugin expands :name: shortcuts into emoji characters.
type emojiPlugin struct{}

func (emojiPlugin) Name() string { return config.PluginEmoji }

func (emojiPlugin) Transform(content string) (string, error) {
	return rewriteOutside(content, protectCodeAndMath, func(s string) string {
		return emojiReplacer.Replace(s)
	}), nil
}

// Assets returns nothing: emoji are plain characters.
func (emojiPlugin) Assets() AssetSet { return AssetSet{} }

var _ Plugin = emojiPlugin{}
