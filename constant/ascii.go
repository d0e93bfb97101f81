package constant

import _ "embed"

// AsciiArtLogo is the banner shown above the root command help.
//
//go:embed ascii.txt
var AsciiArtLogo string

// Tagline is printed under the banner.
const Tagline = "Ask for movies and shows the way you would ask a friend"
