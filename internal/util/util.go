package util

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	IsDebug bool

	// Style definitions for help and errors
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E50914")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#45B7D1")).
			Italic(true)

	exampleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Italic(true)

	// Error styling
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)

	debugErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4757")).
			Padding(1, 2)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA726")).
			Bold(true)
)

// SetDebugMode sets the debug mode
func SetDebugMode(debug bool) {
	IsDebug = debug
}

// SearchTermFromArgs joins positional arguments into the initial search term.
// No arguments means the popular list is shown first.
func SearchTermFromArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// ErrorHandler returns a stylized error message
func ErrorHandler(err error) string {
	if IsDebug {
		errorMessage := "🚨 DEBUG ERROR 🔍"
		fullError := fmt.Sprintf("%+v", err)

		styledHeader := errorStyle.Render(errorMessage)
		styledError := debugErrorStyle.Render(fullError)

		return fmt.Sprintf("%s\n%s", styledHeader, styledError)
	}

	hint := "run the program with -debug to see details"

	styledError := errorStyle.Render(fmt.Sprintf("❌ %v", err))
	styledHint := warningStyle.Render(fmt.Sprintf("💡 %s", hint))

	return fmt.Sprintf("%s\n%s", styledError, styledHint)
}

// Helper prints the help message
func Helper() {
	fmt.Println(HelpText())
}

// HelpText renders the usage text shown by -help
func HelpText() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎬 CineFlux - Discover movies and their trailers"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("📖 Usage:"))
	b.WriteString("\n")
	for _, line := range []string{
		"  cineflux",
		"  cineflux " + optionStyle.Render("[options]"),
		"  cineflux " + optionStyle.Render("[options]") + " " + exampleStyle.Render("[search term]"),
	} {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("🔑 Environment:"))
	b.WriteString("\n")
	b.WriteString("  " + optionStyle.Render("TMDB_API_KEY") + "   TMDB v3 API key (required)\n")
	b.WriteString("  " + optionStyle.Render("CINEFLUX_LANG") + "  Result language, e.g. " + exampleStyle.Render("pt-BR") + "\n")

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("⚙️  Options:"))
	b.WriteString("\n")
	for _, line := range []string{
		"  " + optionStyle.Render("-debug") + "     🐛 Enable debug logging",
		"  " + optionStyle.Render("-lang") + "      🌐 Result language (overrides CINEFLUX_LANG)",
		"  " + optionStyle.Render("-log") + "       📝 Log file path",
		"  " + optionStyle.Render("-discord") + "   🎮 Show what you browse on Discord",
		"  " + optionStyle.Render("-help, -h") + "  📚 Show this help message",
		"  " + optionStyle.Render("-version") + "   ℹ️  Show version information",
	} {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("⌨️  Keys:"))
	b.WriteString("\n")
	b.WriteString("  type to search · ↑/↓ move · enter trailer · d details · esc close · ctrl+c quit\n")

	return b.String()
}
