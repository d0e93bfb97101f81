package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Mark
	Link
	Search
	Favorite
	Watchlist
	Star
	Movie
	TV
	Person
	Episode
	Trailer
	Key
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Mark: {
		emoji:   "✅",
		nerd:    "",
		plain:   "*",
		kaomoji: "(*)",
		squares: "🟨",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "~",
		kaomoji: "(~)",
		squares: "🟪",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "🟧",
	},
	Favorite: {
		emoji:   "❤️",
		nerd:    "",
		plain:   "<3",
		kaomoji: "(♡ω♡)",
		squares: "🟥",
	},
	Watchlist: {
		emoji:   "📌",
		nerd:    "",
		plain:   "+",
		kaomoji: "(＋)",
		squares: "🟩",
	},
	Star: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "☆",
		squares: "🟨",
	},
	Movie: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "M",
		kaomoji: "[▶]",
		squares: "🟦",
	},
	TV: {
		emoji:   "📺",
		nerd:    "",
		plain:   "TV",
		kaomoji: "[□]",
		squares: "🟪",
	},
	Person: {
		emoji:   "🧑",
		nerd:    "",
		plain:   "@",
		kaomoji: "(・∀・)",
		squares: "🟧",
	},
	Episode: {
		emoji:   "🎞️",
		nerd:    "",
		plain:   "#",
		kaomoji: "[#]",
		squares: "🟫",
	},
	Trailer: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(▷)",
		squares: "🟥",
	},
	Key: {
		emoji:   "🔑",
		nerd:    "",
		plain:   "K",
		kaomoji: "(⌐■_■)",
		squares: "🟨",
	},
}
