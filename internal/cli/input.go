// Package cli runs the interactive phrase translator used for testing and debugging
package cli

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/dictserve/internal/logger"
	"github.com/bastiangx/dictserve/pkg/translator"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	resultStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("114"))
)

// InputHandler reads menu commands and phrases, asks the user to pick a
// correction for each unknown word and a translation for each known one.
type InputHandler struct {
	translator translator.ITranslator
	scanner    *bufio.Scanner
	out        *log.Logger
	maxWords   int
}

// NewInputHandler creates a handler reading from r and printing to w
func NewInputHandler(t translator.ITranslator, r io.Reader, w io.Writer, maxWords int) *InputHandler {
	out := logger.NewWithWriter(w, "")
	out.SetReportTimestamp(false)
	return &InputHandler{
		translator: t,
		scanner:    bufio.NewScanner(r),
		out:        out,
		maxWords:   maxWords,
	}
}

// Start runs the menu loop until the user quits or the input ends.
func (h *InputHandler) Start() error {
	h.out.Print("DictServe CLI")
	for {
		h.out.Print("")
		h.out.Print("0 : Quit")
		h.out.Print("1 : Translate a phrase")

		cmd, err := h.readLine()
		if err != nil {
			return ignoreEOF(err)
		}

		switch cmd {
		case "0":
			return nil
		case "1":
			h.out.Print("Enter a phrase to translate:")
			phrase, err := h.readLine()
			if err != nil {
				return ignoreEOF(err)
			}
			translated, err := h.translatePhrase(phrase)
			if err != nil {
				return ignoreEOF(err)
			}
			h.out.Print("Translated phrase:", "result", resultStyle.Render(strings.Join(translated, " ")))
		default:
			h.out.Print("Invalid command...")
		}
	}
}

func (h *InputHandler) translatePhrase(phrase string) ([]string, error) {
	start := time.Now()
	tokens := h.translator.TranslatePhrase(phrase, h.maxWords)
	log.Debugf("Phrase of %d words resolved in [ %v ]", len(tokens), time.Since(start))

	translated := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		word, err := h.resolveWord(tok)
		if err != nil {
			return nil, err
		}
		translated = append(translated, word)
	}
	return translated, nil
}

// resolveWord returns the chosen translation for tok. Unknown words without
// any correction are kept as typed.
func (h *InputHandler) resolveWord(tok translator.PhraseToken) (string, error) {
	word := tok.Word
	translations := tok.Translations

	if !tok.Known {
		h.out.Printf("Word not found: %s", wordStyle.Render(word))
		if len(tok.Corrections) == 0 {
			h.out.Warn("No corrections available, keeping the word as is")
			return word, nil
		}
		h.out.Printf("Choose among these %d words:", len(tok.Corrections))
		choice, err := h.choose(tok.Corrections)
		if err != nil {
			return "", err
		}
		word = tok.Corrections[choice]
		translations = h.translator.Translations(word)
	}

	if len(translations) == 0 {
		return word, nil
	}
	h.out.Printf("Possible translations for %s:", wordStyle.Render(word))
	choice, err := h.choose(translations)
	if err != nil {
		return "", err
	}
	return translations[choice], nil
}

// choose lists options with 0-based numbers and re-prompts until a valid
// index is entered.
func (h *InputHandler) choose(options []string) (int, error) {
	for i, opt := range options {
		h.out.Printf("%2d. %s", i, opt)
	}
	for {
		h.out.Print("Your choice:")
		line, err := h.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 0 && n < len(options) {
			return n, nil
		}
		h.out.Print("Invalid choice...")
	}
}

func (h *InputHandler) readLine() (string, error) {
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(h.scanner.Text()), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
