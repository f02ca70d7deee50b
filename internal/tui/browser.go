package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/officerfeedback/officer-feedback/internal/views"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"go.uber.org/zap"
)

const directoryHelp = `Commands:
  <n>            open officer n
  /<text>        search by name (a bare / clears)
  r              refresh
  q              quit`

const detailHelp = `Commands:
  rate <1-5>     pick a rating (0 clears)
  comment <text> set the comment
  anon yes|no    post anonymously
  submit         send the feedback
  r              reload feedback
  b              back to the directory`

// Browser is an interactive line-mode front end over a Navigator
type Browser struct {
	nav      *views.Navigator
	notifier *Notifier
	render   *Renderer
	in       *bufio.Scanner
	out      io.Writer
}

// NewBrowser wires a browser to nav; notifier must be the one nav reports to
func NewBrowser(nav *views.Navigator, notifier *Notifier, in io.Reader, out io.Writer) *Browser {
	return &Browser{
		nav:      nav,
		notifier: notifier,
		render:   NewRenderer(out),
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loads the directory and processes commands until quit or end of input
func (b *Browser) Run(ctx context.Context) error {
	//nolint:errcheck // failures are shown through the notifier
	_ = b.nav.Directory().Load(ctx)
	b.show()

	for {
		fmt.Fprint(b.out, "> ")
		if !b.in.Scan() {
			fmt.Fprintln(b.out)
			return b.in.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		raw := strings.TrimRight(b.in.Text(), "\r")
		line := strings.TrimSpace(raw)
		if b.notifier.Waiting() {
			b.notifier.Acknowledge()
			b.show()
			continue
		}

		var quit bool
		if b.nav.Screen() == views.ScreenDetail {
			quit = b.handleDetail(ctx, line)
		} else {
			quit = b.handleDirectory(ctx, line, raw)
		}
		if quit {
			return nil
		}
	}
}

func (b *Browser) show() {
	fmt.Fprintln(b.out)
	if detail := b.nav.Detail(); detail != nil && b.nav.Screen() == views.ScreenDetail {
		b.render.Detail(detail)
		return
	}
	b.render.Directory(b.nav.Directory())
}

// handleDirectory runs one directory command. raw is the untrimmed input,
// so a search term keeps its own spaces.
func (b *Browser) handleDirectory(ctx context.Context, line, raw string) bool {
	dir := b.nav.Directory()

	switch {
	case line == "":
		return false
	case line == "q" || line == "quit":
		return true
	case line == "?" || line == "help":
		fmt.Fprintln(b.out, directoryHelp)
		return false
	case line == "r" || line == "refresh":
		//nolint:errcheck // failures are shown through the notifier
		_ = dir.Refresh(ctx)
	case strings.HasPrefix(line, "/"):
		dir.SetSearch(strings.TrimPrefix(strings.TrimLeft(raw, " \t"), "/"))
	default:
		n, err := strconv.Atoi(line)
		filtered := dir.Filtered()
		if err != nil || n < 1 || n > len(filtered) {
			fmt.Fprintf(b.out, "Unknown command %q, type ? for help\n", line)
			return false
		}
		dir.Select(filtered[n-1])
		if detail := b.nav.Detail(); detail != nil {
			//nolint:errcheck // failures are shown through the notifier
			_ = detail.Load(ctx)
		}
	}

	b.show()
	return false
}

func (b *Browser) handleDetail(ctx context.Context, line string) bool {
	detail := b.nav.Detail()
	if detail == nil {
		return false
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
		return false
	case "q", "quit":
		return true
	case "?", "help":
		fmt.Fprintln(b.out, detailHelp)
		return false
	case "b", "back":
		detail.Back()
	case "r", "reload":
		//nolint:errcheck // failures are shown through the notifier
		_ = detail.Load(ctx)
	case "rate":
		rating, err := strconv.Atoi(arg)
		if err == nil {
			err = detail.SetRating(rating)
		}
		if err != nil {
			fmt.Fprintln(b.out, "Rating must be a number from 0 to 5")
			return false
		}
	case "comment":
		detail.SetComment(arg)
	case "anon":
		switch strings.ToLower(arg) {
		case "yes", "y", "on", "true":
			detail.SetAnonymous(true)
		case "no", "n", "off", "false":
			detail.SetAnonymous(false)
		default:
			fmt.Fprintln(b.out, "Use: anon yes|no")
			return false
		}
	case "submit", "s":
		if err := detail.Submit(ctx); err != nil {
			logger.Debug("Submit did not complete", zap.Error(err))
		}
		if b.notifier.Waiting() {
			return false
		}
	default:
		fmt.Fprintf(b.out, "Unknown command %q, type ? for help\n", line)
		return false
	}

	b.show()
	return false
}
